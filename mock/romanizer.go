package mock

import "github.com/fwojciec/kashi"

var _ kashi.Romanizer = (*Romanizer)(nil)

// Romanizer is a mock implementation of kashi.Romanizer.
type Romanizer struct {
	RomanizeFn func(text string) (string, error)
}

func (r *Romanizer) Romanize(text string) (string, error) {
	return r.RomanizeFn(text)
}
