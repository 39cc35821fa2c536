package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/booleq/booleq/ir"
)

// Encode writes node to w.  Without options the output equals
// node.String(); EncodeCanonical switches to the constructor form and
// EncodeColors colors each token class.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.canonical {
		return encodeCanonical(node, w, es)
	}
	return encodeDisplay(node, w, es)
}

func encodeDisplay(n *ir.Node, w io.Writer, es *encState) error {
	switch n.Type {
	case ir.VarType:
		if err := writeClass(w, es, VariableColor, n.Name); err != nil {
			return err
		}
		if err := writeClass(w, es, SepColor, "="); err != nil {
			return err
		}
		if !n.Known {
			return writeClass(w, es, UnknownColor, "?")
		}
		return writeClass(w, es, ConstColor, bit(n.Bool))
	case ir.ConstType:
		return writeClass(w, es, ConstColor, bit(n.Bool))
	case ir.NotType:
		op := n.Operands[0]
		grouped := !op.Type.IsLeaf() && !strings.HasPrefix(op.String(), "(") &&
			op.Type != ir.NotType
		if err := writeClass(w, es, OperatorColor, "~"); err != nil {
			return err
		}
		if grouped {
			if err := writeClass(w, es, SepColor, "("); err != nil {
				return err
			}
		}
		if err := encodeDisplay(op, w, es); err != nil {
			return err
		}
		if grouped {
			return writeClass(w, es, SepColor, ")")
		}
		return nil
	case ir.AndType, ir.OrType, ir.XorType, ir.ImplType, ir.EquivType:
		if err := writeClass(w, es, SepColor, "("); err != nil {
			return err
		}
		sep := map[ir.Type]string{
			ir.AndType:   " ^ ",
			ir.OrType:    " v ",
			ir.XorType:   " xor ",
			ir.ImplType:  " → ",
			ir.EquivType: " ↔ ",
		}[n.Type]
		for i, op := range n.Operands {
			if i > 0 {
				if err := writeClass(w, es, OperatorColor, sep); err != nil {
					return err
				}
			}
			if err := encodeDisplay(op, w, es); err != nil {
				return err
			}
		}
		return writeClass(w, es, SepColor, ")")
	default:
		return fmt.Errorf("%w: type %s", ErrEncoding, n.Type)
	}
}

func encodeCanonical(n *ir.Node, w io.Writer, es *encState) error {
	switch n.Type {
	case ir.VarType, ir.ConstType:
		class := VariableColor
		if n.Type == ir.ConstType {
			class = ConstColor
		}
		return writeClass(w, es, class, n.GoString())
	default:
		name := map[ir.Type]string{
			ir.NotType:   "Not",
			ir.AndType:   "And",
			ir.OrType:    "Or",
			ir.XorType:   "Xor",
			ir.ImplType:  "Implies",
			ir.EquivType: "Equiv",
		}[n.Type]
		if name == "" {
			return fmt.Errorf("%w: type %s", ErrEncoding, n.Type)
		}
		if err := writeClass(w, es, OperatorColor, name); err != nil {
			return err
		}
		if err := writeClass(w, es, SepColor, "("); err != nil {
			return err
		}
		for i, op := range n.Operands {
			if i > 0 {
				if err := writeClass(w, es, SepColor, ", "); err != nil {
					return err
				}
			}
			if err := encodeCanonical(op, w, es); err != nil {
				return err
			}
		}
		return writeClass(w, es, SepColor, ")")
	}
}

func writeClass(w io.Writer, es *encState, class ColorClass, s string) error {
	if es.colors != nil {
		s = es.colors.Color(class, s)
	}
	_, err := w.Write([]byte(s))
	return err
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
