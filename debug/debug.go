// Package debug holds environment-driven debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Force bool
	Table bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Force = boolEnv("BOOLEQ_DEBUG_FORCE")
	d.Table = boolEnv("BOOLEQ_DEBUG_TABLE")
	d.Parse = boolEnv("BOOLEQ_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Force() bool {
	return d.Force
}
func Table() bool {
	return d.Table
}
func Parse() bool {
	return d.Parse
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
