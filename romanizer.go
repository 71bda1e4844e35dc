package kashi

// Romanizer converts Japanese text to a Latin-alphabet rendering.
type Romanizer interface {
	// Romanize converts text line by line. Numeric line markers and
	// non-Japanese text are kept as they are.
	Romanize(text string) (string, error)
}
