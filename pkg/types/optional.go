package types

import "encoding/json"

// Float is an optional float64. Derived series carry one per bar so
// "not enough history" is a first-class state instead of a NaN
// sentinel leaking into comparisons.
type Float struct {
	Value float64
	Valid bool
}

// F wraps a defined value.
func F(v float64) Float {
	return Float{Value: v, Valid: true}
}

// Undefined returns the zero Float.
func Undefined() Float {
	return Float{}
}

// Or returns the value, or alt when undefined.
func (f Float) Or(alt float64) float64 {
	if !f.Valid {
		return alt
	}
	return f.Value
}

// LTE reports defined-and-at-most. Comparisons against an undefined
// value are false, matching how the classifier treats missing history.
func (f Float) LTE(x float64) bool { return f.Valid && f.Value <= x }

// GTE reports defined-and-at-least.
func (f Float) GTE(x float64) bool { return f.Valid && f.Value >= x }

// Between reports defined-and-within the closed interval [lo, hi].
func (f Float) Between(lo, hi float64) bool {
	return f.Valid && f.Value >= lo && f.Value <= hi
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = F(v)
	return nil
}

// Bool is an optional boolean, used for win flags whose underlying
// return is undefined near the end of a partition.
type Bool struct {
	Value bool
	Valid bool
}

// B wraps a defined boolean.
func B(v bool) Bool {
	return Bool{Value: v, Valid: true}
}

// True reports defined-and-true.
func (b Bool) True() bool { return b.Valid && b.Value }

func (b Bool) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = Bool{}
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = B(v)
	return nil
}
