package design

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-synth/dsp/filter/biquad"
)

// Kind selects a response type.
type Kind int

const (
	KindLowpass Kind = iota
	KindHighpass
)

func (k Kind) String() string {
	switch k {
	case KindLowpass:
		return "lowpass"
	case KindHighpass:
		return "highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "lowpass"/"lp" and "highpass"/"hp", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass", "lp":
		return KindLowpass, nil
	case "highpass", "hp":
		return KindHighpass, nil
	default:
		return 0, fmt.Errorf("unknown filter kind %q: %w", s, ErrInvalidParams)
	}
}

// Design dispatches to the designer for kind.
func Design(kind Kind, p Params) (biquad.Coefficients, error) {
	switch kind {
	case KindLowpass:
		return Lowpass(p)
	case KindHighpass:
		return Highpass(p)
	default:
		return biquad.Coefficients{}, fmt.Errorf("unknown filter kind %v: %w", kind, ErrInvalidParams)
	}
}
