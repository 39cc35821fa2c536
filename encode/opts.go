package encode

type encState struct {
	canonical bool
	colors    *Colors
}

type EncodeOption func(*encState)

// EncodeCanonical selects the fully-parenthesized constructor form
// instead of the display form.
func EncodeCanonical(v bool) EncodeOption {
	return func(es *encState) { es.canonical = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
