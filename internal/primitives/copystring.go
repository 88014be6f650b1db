// CopyString provides a fixed-capacity string stored inline as an array of
// runes.
//
// The capacity N is the length of the backing array type, so
// CopyString[[11]rune] always holds exactly 11 slots. Assignment copies the
// whole array; there is no heap allocation and no sharing between copies.
//
// # Padding
//
// Text shorter than N is padded with NUL (U+0000). String returns all N
// slots, padding included. Trimmed drops the trailing NUL run.
//
// # Capacity
//
// Construction from text with more than N runes fails with a *CapacityError
// that matches ErrCapacityExceeded. Nothing is truncated.
package primitives

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrCapacityExceeded is matched by every *CapacityError.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityError reports text that does not fit a CopyString.
type CapacityError struct {
	Capacity int
	Length   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("copystring: %d runes do not fit capacity %d", e.Length, e.Capacity)
}

// Is makes errors.Is(err, ErrCapacityExceeded) true.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// CopyString is a fixed-capacity rune buffer. The zero value is N NUL slots.
type CopyString[A RuneArray] struct {
	slots A
}

// NewCopyString copies the runes of text into the first slots of a new
// CopyString and NUL-fills the rest. Invalid UTF-8 bytes become
// utf8.RuneError, as with range over a string.
func NewCopyString[A RuneArray](text string) (CopyString[A], error) {
	var s CopyString[A]
	if n := utf8.RuneCountInString(text); n > len(s.slots) {
		return s, &CapacityError{Capacity: len(s.slots), Length: n}
	}
	i := 0
	for _, r := range text {
		s.slots[i] = r
		i++
	}
	return s, nil
}

// CopyStringFromBytes is NewCopyString over an owned UTF-8 buffer. b is
// not retained.
func CopyStringFromBytes[A RuneArray](b []byte) (CopyString[A], error) {
	var s CopyString[A]
	if n := utf8.RuneCount(b); n > len(s.slots) {
		return s, &CapacityError{Capacity: len(s.slots), Length: n}
	}
	for i := 0; len(b) > 0; i++ {
		r, size := utf8.DecodeRune(b)
		s.slots[i] = r
		b = b[size:]
	}
	return s, nil
}

// CopyStringFromRunes copies r slot by slot. r is not retained.
func CopyStringFromRunes[A RuneArray](r []rune) (CopyString[A], error) {
	var s CopyString[A]
	if len(r) > len(s.slots) {
		return s, &CapacityError{Capacity: len(s.slots), Length: len(r)}
	}
	for i, c := range r {
		s.slots[i] = c
	}
	return s, nil
}

// MustCopyString is like NewCopyString but panics if text does not fit.
// Intended for literals.
func MustCopyString[A RuneArray](text string) CopyString[A] {
	s, err := NewCopyString[A](text)
	if err != nil {
		panic(err)
	}
	return s
}

// Cap returns N.
func (s CopyString[A]) Cap() int { return len(s.slots) }

// Len returns the number of slots before the trailing NUL run.
func (s CopyString[A]) Len() int {
	n := len(s.slots)
	for n > 0 && s.slots[n-1] == 0 {
		n--
	}
	return n
}

// Runes returns a copy of the backing array.
func (s CopyString[A]) Runes() A { return s.slots }

// At returns slot i. It panics if i is out of range.
func (s CopyString[A]) At(i int) rune { return s.slots[i] }

// Set overwrites slot i. It panics if i is out of range.
func (s *CopyString[A]) Set(i int, r rune) { s.slots[i] = r }

// Equal reports whether both buffers hold the same slots.
func (s CopyString[A]) Equal(o CopyString[A]) bool { return s == o }

// String concatenates all N slots, trailing NUL padding included.
func (s CopyString[A]) String() string {
	return s.join(len(s.slots))
}

// Trimmed concatenates the slots before the trailing NUL run.
func (s CopyString[A]) Trimmed() string {
	return s.join(s.Len())
}

func (s CopyString[A]) join(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(s.slots[i])
	}
	return b.String()
}

// MarshalText encodes the trimmed text. Padding is implied by the capacity,
// so the encoding is lossless.
func (s CopyString[A]) MarshalText() ([]byte, error) {
	return []byte(s.Trimmed()), nil
}

// UnmarshalText decodes with NewCopyString semantics.
func (s *CopyString[A]) UnmarshalText(text []byte) error {
	v, err := CopyStringFromBytes[A](text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
