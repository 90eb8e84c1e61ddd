package envelope

import (
	"fmt"
	"strconv"
	"strings"
)

// Default is the textual form of [New].
const Default = "0,5,35,0,100,100,0,%"

// MinFields is the number of required comma-separated fields.
const MinFields = 7

const (
	percentMark = "%"
	separator   = ","

	fieldPercent = 7
	fieldP4      = 8
	fieldP5      = 9
	fieldV5      = 10
)

var requiredNames = [MinFields]string{"p1", "p2", "p3", "v1", "v2", "v3", "v4"}

// Parse reads an envelope from its UST form. Each field is trimmed of
// surrounding whitespace. Empty optional fields are absent, as are
// optional fields holding NaN, and tokens after v5 are ignored.
//
// Numbers are decimal, optionally in exponent form; "NaN" and "Inf" are
// accepted. Hexadecimal floats are rejected.
func Parse(s string) (Envelope, error) {
	fields := strings.Split(s, separator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) < MinFields {
		return Envelope{}, fmt.Errorf("%w: have %d fields, requires %d or more",
			ErrMalformedInput, len(fields), MinFields)
	}

	var req [MinFields]float64
	for i := range req {
		v, err := parseNumber(requiredNames[i], fields[i])
		if err != nil {
			return Envelope{}, err
		}
		req[i] = v
	}

	e := Envelope{
		P1: req[0], P2: req[1], P3: req[2],
		V1: req[3], V2: req[4], V3: req[5], V4: req[6],
	}

	if len(fields) > fieldPercent {
		e.PercentMark = fields[fieldPercent] == percentMark
	}

	optionals := []struct {
		name  string
		index int
		dst   *Optional
	}{
		{"p4", fieldP4, &e.P4},
		{"p5", fieldP5, &e.P5},
		{"v5", fieldV5, &e.V5},
	}
	for _, opt := range optionals {
		if len(fields) <= opt.index || fields[opt.index] == "" {
			continue
		}
		v, err := parseNumber(opt.name, fields[opt.index])
		if err != nil {
			return Envelope{}, err
		}
		*opt.dst = Some(v)
	}

	return e, nil
}

func parseNumber(name, field string) (float64, error) {
	if isHex(field) {
		return 0, fmt.Errorf("%w: field %s %q: %w", ErrNumericParse, name, field,
			&strconv.NumError{Func: "ParseFloat", Num: field, Err: strconv.ErrSyntax})
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s %q: %w", ErrNumericParse, name, field, err)
	}
	return v, nil
}

func isHex(field string) bool {
	field = strings.TrimLeft(field, "+-")
	return len(field) >= 2 && field[0] == '0' && (field[1] == 'x' || field[1] == 'X')
}

// String returns the UST form of e. Trailing optionals are written up to
// the last present one; absent p4 or p5 before it are written as 0.
func (e Envelope) String() string {
	fields := make([]string, 0, fieldV5+1)
	for _, v := range [MinFields]float64{e.P1, e.P2, e.P3, e.V1, e.V2, e.V3, e.V4} {
		fields = append(fields, formatNumber(v))
	}

	if e.PercentMark {
		fields = append(fields, percentMark)
	} else {
		fields = append(fields, "")
	}

	switch {
	case e.V5.Valid:
		fields = append(fields,
			formatNumber(e.P4.Or(0)),
			formatNumber(e.P5.Or(0)),
			formatNumber(e.V5.Value))
	case e.P5.Valid:
		fields = append(fields,
			formatNumber(e.P4.Or(0)),
			formatNumber(e.P5.Value))
	case e.P4.Valid:
		fields = append(fields, formatNumber(e.P4.Value))
	}

	return strings.Join(fields, separator)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MarshalText implements encoding.TextMarshaler.
func (e Envelope) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error e is left
// unchanged.
func (e *Envelope) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
