package envelope

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Epsilon is the distance in percentage points below which two volumes are
// treated as equal by [Envelope.ZeroPValues].
const Epsilon = 0.1

// Defaults of the standard envelope "0,5,35,0,100,100,0,%".
const (
	DefaultP1 = 0.0
	DefaultP2 = 5.0
	DefaultP3 = 35.0
	DefaultV1 = 0.0
	DefaultV2 = 100.0
	DefaultV3 = 100.0
	DefaultV4 = 0.0

	// DefaultP5 and DefaultV5 describe a freshly inserted fifth point.
	// Parsing and serialization never substitute them.
	DefaultP5 = 10.0
	DefaultV5 = 100.0
)

// NumParams is the number of parameters in the canonical view.
const NumParams = 10

var (
	// ErrMalformedInput reports an envelope with fewer than MinFields fields.
	ErrMalformedInput          = errors.New("envelope: malformed input")
	// ErrNumericParse reports a field that is not a decimal number.
	ErrNumericParse            = errors.New("envelope: invalid number")
	// ErrDegenerateNormalization reports that no volume is positive.
	ErrDegenerateNormalization = errors.New("envelope: cannot normalize silent envelope")
)

// Envelope is the volume envelope of a note.
//
// P1 is the blank before the sound, P2 the time from p1 to the second
// point, P3 the time before p4, and P4 the blank at the end, relative to
// the note length. P5 is the time after p2. All timings are milliseconds;
// V1..V5 are volumes in percent at the respective points.
type Envelope struct {
	P1, P2, P3     float64
	V1, V2, V3, V4 float64
	P4, P5, V5     Optional

	// PercentMark records whether the raw data had "%" as its eighth token.
	PercentMark bool
}

// New returns the default envelope.
func New() Envelope {
	return Envelope{
		P1:          DefaultP1,
		P2:          DefaultP2,
		P3:          DefaultP3,
		V1:          DefaultV1,
		V2:          DefaultV2,
		V3:          DefaultV3,
		V4:          DefaultV4,
		PercentMark: true,
	}
}

// Clone returns a copy of e obtained by serializing and re-parsing it, so
// the copy is exactly what a reader of e.String() would see.
func (e Envelope) Clone() Envelope {
	c, err := Parse(e.String())
	if err != nil {
		// unreachable: String writes at least MinFields plain decimal,
		// NaN, or Inf tokens, all of which Parse accepts.
		return e
	}
	return c
}

// HasP4 reports whether p4 is present.
func (e Envelope) HasP4() bool { return e.P4.Valid }

// HasP5 reports whether p5 is present.
func (e Envelope) HasP5() bool { return e.P5.Valid }

// HasV5 reports whether v5 is present.
func (e Envelope) HasV5() bool { return e.V5.Valid }

// SetP4 sets p4. NaN removes it.
func (e *Envelope) SetP4(v float64) { e.P4 = Some(v) }

// SetP5 sets p5. NaN removes it.
func (e *Envelope) SetP5(v float64) { e.P5 = Some(v) }

// SetV5 sets v5. NaN removes it.
func (e *Envelope) SetV5(v float64) { e.V5 = Some(v) }

// Params returns p1, p2, p3, v1, v2, v3, v4, p4, p5, v5 in that order.
// Absent fields are NaN.
func (e Envelope) Params() [NumParams]float64 {
	return [NumParams]float64{
		e.P1, e.P2, e.P3,
		e.V1, e.V2, e.V3, e.V4,
		e.P4.Float(), e.P5.Float(), e.V5.Float(),
	}
}

// Volumes returns the present volumes in order v1..v5.
func (e Envelope) Volumes() []float64 {
	vols := []float64{e.V1, e.V2, e.V3, e.V4}
	if e.V5.Valid {
		vols = append(vols, e.V5.Value)
	}
	return vols
}

// Length returns the total timing of the envelope in ms. Absent p4 and p5
// count as zero.
func (e Envelope) Length() float64 {
	return e.P1 + e.P2 + e.P3 + e.P4.Or(0) + e.P5.Or(0)
}

// IsValidWith reports whether the envelope fits in a note of the given
// length in ms. A note exactly as long as the envelope is not valid.
func (e Envelope) IsValidWith(length float64) bool {
	return length > e.Length()
}

// RemoveP5 removes p5 and v5. p4 is kept.
func (e *Envelope) RemoveP5() {
	e.P5 = None()
	e.V5 = None()
}

// ZeroPValues collapses timings between points whose volumes are equal
// within [Epsilon]. A p5 without v5 is removed. This repairs some
// malformed envelopes.
func (e *Envelope) ZeroPValues() {
	if e.P5.Valid {
		if !e.V5.Valid {
			e.RemoveP5()
		} else if math.Abs(e.V5.Value-e.V2) < Epsilon {
			e.P5 = Some(0)
		}
	}
	if math.Abs(e.V2-e.V1) < Epsilon {
		e.P2 = 0
	}
	if math.Abs(e.V3-e.V4) < Epsilon {
		e.P3 = 0
	}
}

// Normalize scales all present volumes so the highest becomes 100 and
// returns the factor applied. It fails with [ErrDegenerateNormalization]
// if no volume is positive, leaving e unchanged.
func (e *Envelope) Normalize() (float64, error) {
	vols := e.Volumes()

	maxV := math.Inf(-1)
	for _, v := range vols {
		if v > maxV {
			maxV = v
		}
	}
	if !(maxV > 0) || math.IsInf(maxV, 1) {
		return 0, fmt.Errorf("%w: max volume %g", ErrDegenerateNormalization, maxV)
	}

	scale := 100 / maxV
	vecmath.ScaleBlockInPlace(vols, scale)

	e.V1, e.V2, e.V3, e.V4 = vols[0], vols[1], vols[2], vols[3]
	if e.V5.Valid {
		e.V5.Value = vols[4]
	}
	return scale, nil
}
