package ir

import "fmt"

type Type int

const (
	VarType Type = iota
	ConstType
	NotType
	AndType
	OrType
	XorType
	ImplType
	EquivType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		VarType:   "Var",
		ConstType: "Const",
		NotType:   "Not",
		AndType:   "And",
		OrType:    "Or",
		XorType:   "Xor",
		ImplType:  "Impl",
		EquivType: "Equiv",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Var":   VarType,
		"Const": ConstType,
		"Not":   NotType,
		"And":   AndType,
		"Or":    OrType,
		"Xor":   XorType,
		"Impl":  ImplType,
		"Equiv": EquivType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		VarType,
		ConstType,
		NotType,
		AndType,
		OrType,
		XorType,
		ImplType,
		EquivType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case VarType, ConstType:
		return true
	default:
		return false
	}
}
