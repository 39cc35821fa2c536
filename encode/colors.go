package encode

import "github.com/fatih/color"

type ColorClass int

const (
	OperatorColor ColorClass = iota
	VariableColor
	ConstColor
	UnknownColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorClass]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorClass]func(string, ...any) string{
			OperatorColor: color.RGB(255, 0, 196).SprintfFunc(),
			VariableColor: color.RGB(196, 96, 16).SprintfFunc(),
			ConstColor:    color.CyanString,
			UnknownColor:  color.RGB(168, 0, 196).SprintfFunc(),
			SepColor:      color.RGB(128, 168, 196).SprintfFunc(),
		},
	}
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(class ColorClass, s string) string {
	f := c.Map[class]
	if f == nil {
		f = c.Default
	}
	if f == nil {
		return s
	}
	return f("%s", s)
}
