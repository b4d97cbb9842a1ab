package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/filter/biquad"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mag(c biquad.Coefficients, f, sr float64) float64 {
	return cmplx.Abs(c.Response(f, sr))
}

func assertFinite(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	if !c.IsFinite() {
		t.Fatalf("non-finite coefficients: %#v", c)
	}
}

func TestIntermediate_Butterworth(t *testing.T) {
	w, alpha, q, err := Intermediate(Butterworth(48000, 1000))
	if err != nil {
		t.Fatalf("Intermediate() error = %v", err)
	}
	wantW := 2 * math.Pi * 1000 / 48000
	if !almostEqual(w, wantW, 1e-15) {
		t.Fatalf("w = %v, want %v", w, wantW)
	}
	if !almostEqual(q, 1/math.Sqrt2, 1e-15) {
		t.Fatalf("q = %v, want 1/sqrt(2)", q)
	}
	if !almostEqual(alpha, math.Sin(wantW)/(2*q), 1e-15) {
		t.Fatalf("alpha = %v, want sin(w)/(2q)", alpha)
	}
}

func TestLowpass_HandComputed(t *testing.T) {
	p := Params{SampleRate: 44000, Cutoff: 2000, GainDB: 6, Slope: 0.5}

	a := math.Pow(10, 6.0/40)
	w := 2 * math.Pi * 2000 / 44000
	alpha := 0.5 * math.Sin(w) * math.Sqrt((a+1/a)*(1/0.5-0.5)+2)
	a0 := 1 + alpha

	got, err := Lowpass(p)
	if err != nil {
		t.Fatalf("Lowpass() error = %v", err)
	}
	want := [6]float64{
		(1 - math.Cos(w)) / 2 / a0,
		(1 - math.Cos(w)) / a0,
		(1 - math.Cos(w)) / 2 / a0,
		1,
		-2 * math.Cos(w) / a0,
		(1 - alpha) / a0,
	}
	v := got.Vector()
	for i := range want {
		if !almostEqual(v[i], want[i], 1e-15) {
			t.Fatalf("coef[%d] = %.17g, want %.17g", i, v[i], want[i])
		}
	}

	// Independently computed reference values.
	if !almostEqual(got.B0, 0.015336266838271882, tol) ||
		!almostEqual(got.A1, -1.4530852136868158, tol) ||
		!almostEqual(got.A2, 0.5144302810399034, tol) {
		t.Fatalf("unexpected coefficients %#v", got)
	}
	_, _, q, _ := Intermediate(p)
	if !almostEqual(q, 0.4393440309140443, tol) {
		t.Fatalf("q = %v", q)
	}
}

func TestHighpass_Formula(t *testing.T) {
	p := Butterworth(48000, 1000)
	got, err := Highpass(p)
	if err != nil {
		t.Fatalf("Highpass() error = %v", err)
	}
	if !almostEqual(got.B1, -2*got.B0, 1e-15) || got.B2 != got.B0 {
		t.Fatalf("numerator not (b0, -2b0, b0): %#v", got)
	}
	lp, _ := Lowpass(p)
	if got.A1 != lp.A1 || got.A2 != lp.A2 {
		t.Fatal("lowpass and highpass must share the denominator")
	}
}

func TestDesigners_EdgeResponses(t *testing.T) {
	sr := 48000.0
	for _, cutoff := range []float64{50, 440, 1000, 5000, 15000, 23000} {
		p := Butterworth(sr, cutoff)

		lp, err := Lowpass(p)
		if err != nil {
			t.Fatal(err)
		}
		hp, err := Highpass(p)
		if err != nil {
			t.Fatal(err)
		}
		assertFinite(t, lp)
		assertFinite(t, hp)

		// DC: z = 1, Nyquist: z = -1.
		lpDC := (lp.B0 + lp.B1 + lp.B2) / (1 + lp.A1 + lp.A2)
		lpNy := (lp.B0 - lp.B1 + lp.B2) / (1 - lp.A1 + lp.A2)
		hpDC := (hp.B0 + hp.B1 + hp.B2) / (1 + hp.A1 + hp.A2)
		hpNy := (hp.B0 - hp.B1 + hp.B2) / (1 - hp.A1 + hp.A2)

		if !almostEqual(lpDC, 1, 1e-9) || !almostEqual(lpNy, 0, 1e-12) {
			t.Fatalf("cutoff %v: lowpass DC=%v Nyquist=%v", cutoff, lpDC, lpNy)
		}
		if !almostEqual(hpDC, 0, 1e-12) || !almostEqual(hpNy, 1, 1e-9) {
			t.Fatalf("cutoff %v: highpass DC=%v Nyquist=%v", cutoff, hpDC, hpNy)
		}

		if db := lp.MagnitudeDB(cutoff, sr); !almostEqual(db, -3.0103, 1e-3) {
			t.Fatalf("cutoff %v: lowpass at cutoff = %v dB, want -3.01", cutoff, db)
		}
		if db := hp.MagnitudeDB(cutoff, sr); !almostEqual(db, -3.0103, 1e-3) {
			t.Fatalf("cutoff %v: highpass at cutoff = %v dB, want -3.01", cutoff, db)
		}
	}
}

func TestDesigners_ResponseShape(t *testing.T) {
	sr := 48000.0
	p := Params{SampleRate: sr, Cutoff: 1000, GainDB: 12, Slope: 0.8}

	lp, err := Lowpass(p)
	if err != nil {
		t.Fatal(err)
	}
	if !(mag(lp, 100, sr) > mag(lp, 10000, sr)) {
		t.Fatal("lowpass shape check failed")
	}

	hp, err := Highpass(p)
	if err != nil {
		t.Fatal(err)
	}
	if !(mag(hp, 10000, sr) > mag(hp, 100, sr)) {
		t.Fatal("highpass shape check failed")
	}
}

func TestHighpass_RemovesDC(t *testing.T) {
	hp, err := Highpass(Butterworth(48000, 1000))
	if err != nil {
		t.Fatal(err)
	}
	out, err := biquad.NewFilter(hp).ProcessSamples(testutil.DC(1, 4096))
	if err != nil {
		t.Fatal(err)
	}
	if tail := out[len(out)-1]; math.Abs(tail) > 1e-9 {
		t.Fatalf("highpass DC tail = %v, want ~0", tail)
	}

	lp, _ := Lowpass(Butterworth(48000, 1000))
	out, err = biquad.NewFilter(lp).ProcessSamples(testutil.DC(1, 4096))
	if err != nil {
		t.Fatal(err)
	}
	if tail := out[len(out)-1]; !almostEqual(tail, 1, 1e-9) {
		t.Fatalf("lowpass DC tail = %v, want ~1", tail)
	}
}

func TestIntermediate_Domain(t *testing.T) {
	_, _, _, err := Intermediate(Params{SampleRate: 48000, Cutoff: 1000, GainDB: 0, Slope: 4})
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("Intermediate() error = %v, want ErrDomain", err)
	}
	if _, err := Lowpass(Params{SampleRate: 48000, Cutoff: 1000, GainDB: 0, Slope: 4}); !errors.Is(err, ErrDomain) {
		t.Fatalf("Lowpass() error = %v, want ErrDomain", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero sample rate", Params{SampleRate: 0, Cutoff: 100, Slope: 1}},
		{"negative sample rate", Params{SampleRate: -1, Cutoff: 100, Slope: 1}},
		{"zero cutoff", Params{SampleRate: 48000, Cutoff: 0, Slope: 1}},
		{"cutoff at nyquist", Params{SampleRate: 48000, Cutoff: 24000, Slope: 1}},
		{"nan cutoff", Params{SampleRate: 48000, Cutoff: math.NaN(), Slope: 1}},
		{"zero slope", Params{SampleRate: 48000, Cutoff: 100, Slope: 0}},
		{"inf gain", Params{SampleRate: 48000, Cutoff: 100, Slope: 1, GainDB: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("Validate() = %v, want ErrInvalidParams", err)
			}
			if _, err := Highpass(tt.p); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("Highpass() = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestDesign_Dispatch(t *testing.T) {
	p := Butterworth(44000, 3000)
	lp, _ := Lowpass(p)
	hp, _ := Highpass(p)

	got, err := Design(KindLowpass, p)
	if err != nil || got != lp {
		t.Fatalf("Design(lowpass) = %#v, %v", got, err)
	}
	got, err = Design(KindHighpass, p)
	if err != nil || got != hp {
		t.Fatalf("Design(highpass) = %#v, %v", got, err)
	}
	if _, err := Design(Kind(7), p); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("Design(unknown) error = %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"lowpass": KindLowpass, "LP": KindLowpass, " highpass": KindHighpass, "hp": KindHighpass} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %v, %v", in, got, err)
		}
		if got.String() != map[Kind]string{KindLowpass: "lowpass", KindHighpass: "highpass"}[want] {
			t.Fatalf("String() = %q", got.String())
		}
	}
	if _, err := ParseKind("bandpass"); err == nil {
		t.Fatal("ParseKind(bandpass) must fail")
	}
}
