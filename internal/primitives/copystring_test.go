package primitives

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewCopyStringExactFit(t *testing.T) {
	s, err := NewCopyString[[11]rune]("Hello World")
	if err != nil {
		t.Fatalf("NewCopyString: %v", err)
	}
	if got := s.String(); got != "Hello World" {
		t.Errorf("String() = %q want %q", got, "Hello World")
	}
	if s.Cap() != 11 || s.Len() != 11 {
		t.Errorf("Cap=%d Len=%d want 11/11", s.Cap(), s.Len())
	}
}

func TestNewCopyStringPadsWithNUL(t *testing.T) {
	s, err := NewCopyString[[5]rune]("Hi")
	if err != nil {
		t.Fatalf("NewCopyString: %v", err)
	}
	if got := s.String(); got != "Hi\x00\x00\x00" {
		t.Errorf("String() = %q want %q", got, "Hi\x00\x00\x00")
	}
	if got := s.Trimmed(); got != "Hi" {
		t.Errorf("Trimmed() = %q want Hi", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d want 2", s.Len())
	}
	want := [5]rune{'H', 'i', 0, 0, 0}
	if s.Runes() != want {
		t.Errorf("Runes() = %v want %v", s.Runes(), want)
	}
}

func TestNewCopyStringCapacityExceeded(t *testing.T) {
	s, err := NewCopyString[[3]rune]("Hello")
	if err == nil {
		t.Fatal("expected capacity error")
	}
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("err = %v want ErrCapacityExceeded", err)
	}
	var ce *CapacityError
	if !errors.As(err, &ce) || ce.Capacity != 3 || ce.Length != 5 {
		t.Errorf("CapacityError = %+v want {3 5}", ce)
	}
	if s != (CopyString[[3]rune]{}) {
		t.Errorf("failed construction wrote slots: %q", s.String())
	}
}

func TestNewCopyStringCountsRunesNotBytes(t *testing.T) {
	s, err := NewCopyString[[4]rune]("héé!")
	if err != nil {
		t.Fatalf("NewCopyString: %v", err)
	}
	if s.At(1) != 'é' || s.At(3) != '!' {
		t.Errorf("slots = %q", s.Runes())
	}
	if _, err := NewCopyString[[3]rune]("héé!"); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("err = %v want ErrCapacityExceeded", err)
	}
}

func TestCopyStringEmptyAndZero(t *testing.T) {
	s, err := NewCopyString[[4]rune]("")
	if err != nil {
		t.Fatalf("NewCopyString: %v", err)
	}
	var zero CopyString[[4]rune]
	if !s.Equal(zero) {
		t.Error("empty text differs from zero value")
	}
	if s.Len() != 0 || s.Trimmed() != "" || s.String() != strings.Repeat("\x00", 4) {
		t.Errorf("Len=%d Trimmed=%q String=%q", s.Len(), s.Trimmed(), s.String())
	}
}

func TestCopyStringFromBytesAndRunes(t *testing.T) {
	buf := []byte("abc")
	fromBytes, err := CopyStringFromBytes[[8]rune](buf)
	if err != nil {
		t.Fatalf("CopyStringFromBytes: %v", err)
	}
	buf[0] = 'X'
	if fromBytes.Trimmed() != "abc" {
		t.Errorf("source mutation leaked: %q", fromBytes.Trimmed())
	}

	rs := []rune("abc")
	fromRunes, err := CopyStringFromRunes[[8]rune](rs)
	if err != nil {
		t.Fatalf("CopyStringFromRunes: %v", err)
	}
	rs[0] = 'X'
	if !fromRunes.Equal(fromBytes) {
		t.Errorf("FromRunes=%q FromBytes=%q", fromRunes.Trimmed(), fromBytes.Trimmed())
	}

	want := MustCopyString[[8]rune]("abc")
	if fromBytes != want {
		t.Error("FromBytes differs from NewCopyString")
	}

	if _, err := CopyStringFromBytes[[2]rune]([]byte("abc")); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("bytes err = %v", err)
	}
	if _, err := CopyStringFromRunes[[2]rune]([]rune("abc")); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("runes err = %v", err)
	}
}

func TestMustCopyStringPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCapacityExceeded) {
			t.Errorf("recovered %v want capacity error", r)
		}
	}()
	MustCopyString[[1]rune]("ab")
}

func TestCopyStringCopyIsIndependent(t *testing.T) {
	orig := MustCopyString[[5]rune]("hello")
	dup := orig
	dup.Set(0, 'j')
	if orig.Trimmed() != "hello" {
		t.Errorf("original mutated: %q", orig.Trimmed())
	}
	if dup.Trimmed() != "jello" {
		t.Errorf("copy = %q want jello", dup.Trimmed())
	}
	if orig.Equal(dup) {
		t.Error("Equal after divergent mutation")
	}

	view := orig.Runes()
	view[1] = 'a'
	if orig.At(1) != 'e' {
		t.Error("Runes() exposed the backing array")
	}
}

func TestCopyStringSetTrailingNULShrinksLen(t *testing.T) {
	s := MustCopyString[[4]rune]("abcd")
	s.Set(3, 0)
	if s.Len() != 3 || s.Trimmed() != "abc" {
		t.Errorf("Len=%d Trimmed=%q", s.Len(), s.Trimmed())
	}
	s.Set(1, 0)
	if s.Len() != 3 {
		t.Errorf("interior NUL changed Len to %d", s.Len())
	}
}

func TestCopyStringAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s := MustCopyString[[2]rune]("ab")
	i := 2
	_ = s.At(i)
}

func TestCopyStringJSON(t *testing.T) {
	type doc struct {
		Name CopyString[[8]rune] `json:"name"`
	}
	in := doc{Name: MustCopyString[[8]rune]("gopher")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"name":"gopher"}` {
		t.Errorf("got %s", data)
	}
	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %q want %q", out.Name.Trimmed(), in.Name.Trimmed())
	}

	var small struct {
		Name CopyString[[2]rune] `json:"name"`
	}
	if err := json.Unmarshal(data, &small); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("over-capacity decode err = %v", err)
	}
}
