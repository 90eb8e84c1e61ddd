package envelope

import "math"

// Optional is a float64 that may be absent.
type Optional struct {
	Value float64
	Valid bool
}

// Some returns a present Optional holding v. NaN yields an absent Optional.
func Some(v float64) Optional {
	if math.IsNaN(v) {
		return Optional{}
	}
	return Optional{Value: v, Valid: true}
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// Or returns the value if present and def otherwise.
func (o Optional) Or(def float64) float64 {
	if !o.Valid {
		return def
	}
	return o.Value
}

// Float returns the value, or NaN when absent.
func (o Optional) Float() float64 {
	return o.Or(math.NaN())
}
