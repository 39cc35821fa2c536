// Package encode renders boolean equations as text, in the human display
// form or the canonical constructor form, with optional ANSI color.
package encode
