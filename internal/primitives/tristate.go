// Tristate provides three-valued logic: True, False and an explicit third
// state, Else.
//
// Else is a value, not an absence marker. It converts to the nil optional
// bool, and to false when collapsed to a plain bool.
//
// # Zero Value
//
// The zero Tristate is Else, so a field missing from decoded JSON or YAML
// reads as Else.
//
// Example:
//
//	t := FromOptional(nil) // Else
//	t.Bool()               // false
//	t.Optional()           // nil
package primitives

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTristate is returned when text cannot be parsed as a Tristate.
var ErrInvalidTristate = errors.New("invalid tristate")

// Tristate is a three-valued logic type.
//
// The numeric values are Else=0, True=1, False=2 so the zero value is Else.
// Code exchanging raw bytes with a layout of False=0, True=1, Else=2 must map
// values explicitly rather than convert with uint8.
type Tristate uint8

const (
	Else Tristate = iota
	True
	False
)

var tristateNames = [...]string{"else", "true", "false"}

// FromBool converts a bool: true is True, false is False.
func FromBool(b bool) Tristate {
	if b {
		return True
	}
	return False
}

// FromOptional converts an optional bool. A nil pointer is Else.
func FromOptional(b *bool) Tristate {
	if b == nil {
		return Else
	}
	return FromBool(*b)
}

// FromOK converts a comma-ok pair. When ok is false the result is Else
// regardless of v.
func FromOK(v, ok bool) Tristate {
	if !ok {
		return Else
	}
	return FromBool(v)
}

// IsTrue reports whether t is True.
func (t Tristate) IsTrue() bool { return t == True }

// IsFalse reports whether t is False.
func (t Tristate) IsFalse() bool { return t == False }

// IsOther reports whether t is Else.
func (t Tristate) IsOther() bool { return t == Else }

// Is reports whether t equals other.
func (t Tristate) Is(other Tristate) bool { return t == other }

// Valid reports whether t is one of the three members.
func (t Tristate) Valid() bool { return t <= False }

// Bool collapses t to a bool. Only True maps to true; False and Else both
// map to false, so Bool is not the inverse of FromOptional.
func (t Tristate) Bool() bool { return t == True }

// Value returns t as a comma-ok pair. Else yields (false, false).
func (t Tristate) Value() (v bool, ok bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// Optional returns t as an optional bool. Each call returns a fresh pointer;
// Else returns nil.
func (t Tristate) Optional() *bool {
	v, ok := t.Value()
	if !ok {
		return nil
	}
	return &v
}

// Not negates t. Else stays Else.
func (t Tristate) Not() Tristate {
	switch t {
	case True:
		return False
	case False:
		return True
	default:
		return Else
	}
}

// And is the Kleene conjunction: False dominates, then Else.
func (t Tristate) And(o Tristate) Tristate {
	switch {
	case t == False || o == False:
		return False
	case t == True && o == True:
		return True
	default:
		return Else
	}
}

// Or is the Kleene disjunction: True dominates, then Else.
func (t Tristate) Or(o Tristate) Tristate {
	switch {
	case t == True || o == True:
		return True
	case t == False && o == False:
		return False
	default:
		return Else
	}
}

// String returns "true", "false" or "else".
func (t Tristate) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tristate(%d)", uint8(t))
	}
	return tristateNames[t]
}

// ParseTristate parses s case-insensitively. "else", "unknown", "null" and
// the empty string are Else; anything strconv.ParseBool accepts is True or
// False.
func ParseTristate(s string) (Tristate, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "", "else", "unknown", "null":
		return Else, nil
	}
	b, err := strconv.ParseBool(norm)
	if err != nil {
		return Else, fmt.Errorf("%w: %q", ErrInvalidTristate, s)
	}
	return FromBool(b), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tristate) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTristate, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tristate) UnmarshalText(text []byte) error {
	v, err := ParseTristate(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes True and False as JSON booleans and Else as null.
func (t Tristate) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTristate, uint8(t))
	}
	return json.Marshal(t.Optional())
}

// UnmarshalJSON accepts a JSON boolean, null, or a string ParseTristate
// accepts.
func (t *Tristate) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = FromOptional(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTristate, data)
	}
	return t.UnmarshalText([]byte(s))
}

// MarshalYAML encodes True and False as YAML booleans and Else as the
// string "else". YAML null is never emitted: the decoder skips null
// sequence items and leaves fields set by null untouched.
func (t Tristate) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTristate, uint8(t))
	}
	if v, ok := t.Value(); ok {
		return v, nil
	}
	return tristateNames[Else], nil
}

// UnmarshalYAML accepts a YAML boolean or a string ParseTristate accepts.
// YAML null never reaches this method, so a null value leaves t unchanged.
func (t *Tristate) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = Else
		return nil
	case bool:
		*t = FromBool(v)
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: %v", ErrInvalidTristate, raw)
	}
}
