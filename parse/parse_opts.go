package parse

type parseOpts struct {
	bindings map[string]bool
}

type ParseOption func(*parseOpts)

// ParseVar pre-binds the named variable, as if every occurrence in the
// input carried name=0 or name=1.
func ParseVar(name string, v bool) ParseOption {
	return func(o *parseOpts) {
		if o.bindings == nil {
			o.bindings = map[string]bool{}
		}
		o.bindings[name] = v
	}
}
