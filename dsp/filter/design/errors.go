package design

import "errors"

var (
	// ErrInvalidParams reports a sample rate, cutoff or slope outside its range.
	ErrInvalidParams = errors.New("design: invalid parameters")
	// ErrDomain reports a negative radicand in the alpha term, which happens
	// for slopes too steep for the given gain.
	ErrDomain = errors.New("design: alpha undefined for gain/slope")
)
