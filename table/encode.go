package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/booleq/booleq/encode"
)

type encState struct {
	colors  *encode.Colors
	verdict bool
}

type EncodeOption func(*encState)

func EncodeColors(c *encode.Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

// EncodeVerdict adds a trailing agreement line when the table holds more
// than one statement.
func EncodeVerdict(v bool) EncodeOption {
	return func(es *encState) { es.verdict = v }
}

// Encode writes t as a fixed-width text table: one column per variable,
// then one column per statement headed by its display form.
func (t *Table) Encode(w io.Writer, opts ...EncodeOption) error {
	es := &encState{verdict: true}
	for _, opt := range opts {
		opt(es)
	}

	headers := make([]string, 0, len(t.Names)+len(t.Statements))
	headers = append(headers, t.Names...)
	for _, stmt := range t.Statements {
		headers = append(headers, stmt.String())
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}

	if err := t.writeHeader(w, es, headers, widths); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := t.writeRow(w, es, row, widths); err != nil {
			return err
		}
	}
	if !es.verdict || len(t.Statements) < 2 {
		return nil
	}
	verdict := "statements disagree"
	class := encode.UnknownColor
	if t.Agree {
		verdict = "statements agree"
		class = encode.ConstColor
	}
	return writeString(w, color(es, class, verdict)+"\n")
}

func (t *Table) writeHeader(w io.Writer, es *encState, headers []string, widths []int) error {
	cells := make([]string, len(headers))
	for i, h := range headers {
		class := encode.VariableColor
		if i >= len(t.Names) {
			class = encode.OperatorColor
		}
		cells[i] = pad(color(es, class, h), widths[i]-utf8.RuneCountInString(h))
	}
	if err := writeString(w, strings.Join(cells, " | ")+"\n"); err != nil {
		return err
	}
	rules := make([]string, len(widths))
	for i, width := range widths {
		rules[i] = strings.Repeat("-", width)
	}
	return writeString(w, strings.Join(rules, "-+-")+"\n")
}

func (t *Table) writeRow(w io.Writer, es *encState, row Row, widths []int) error {
	cells := make([]string, 0, len(widths))
	for j, v := range row.Assignment {
		cells = append(cells, pad(color(es, encode.ConstColor, bit(v)), widths[j]-1))
	}
	for k, v := range row.Results {
		cells = append(cells, pad(color(es, encode.ConstColor, bit(v)),
			widths[len(row.Assignment)+k]-1))
	}
	return writeString(w, strings.Join(cells, " | ")+"\n")
}

func color(es *encState, class encode.ColorClass, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(class, s)
}

// pad appends fill spaces after s; color escapes make fmt's %-*s widths
// unusable here.
func pad(s string, fill int) string {
	if fill <= 0 {
		return s
	}
	return s + strings.Repeat(" ", fill)
}

func writeString(w io.Writer, s string) error {
	_, err := fmt.Fprint(w, s)
	return err
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
