package encode

import (
	"bytes"

	"github.com/booleq/booleq/ir"
)

// MustString renders node with the given options, panicking on encoding
// failure.  Encoding a well-formed node to a buffer cannot fail.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
