// CopyFn, CopyFnMut and CopyFnOnce wrap a zero-argument function reference
// in a plain struct that copies by assignment.
//
// The three types differ only in the calling discipline they document:
//
//   - CopyFn may be called any number of times and must not mutate state.
//   - CopyFnMut may be called any number of times and may mutate state the
//     function reaches by itself (package-level variables, not captures).
//   - CopyFnOnce must be called at most once. Copies share nothing, so this
//     is a caller obligation the type cannot enforce.
//
// # Capture
//
// Go func values can always carry a closure environment. The plain
// constructors accept any func and leave "no captured state" to the caller.
// The Strict constructors reject function literals and method values by
// symbol name, which is conservative: a literal that captures nothing is
// rejected too.
package primitives

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"runtime"
)

// ErrCapturingFunc is returned by the Strict constructors for function
// literals and method values.
var ErrCapturingFunc = errors.New("function may capture state")

// Function literals are named pkg.Outer.funcN, method values pkg.T.M-fm.
var capturingName = regexp.MustCompile(`\.func\d+|-fm$`)

// CopyFn is a repeatable, non-mutating function handle.
type CopyFn struct {
	fn func()
}

// CopyFnMut is a repeatable function handle that may mutate state it reaches
// on its own.
type CopyFnMut struct {
	fn func()
}

// CopyFnOnce is a function handle intended to be called at most once.
type CopyFnOnce struct {
	fn func()
}

// NewCopyFn wraps fn.
func NewCopyFn(fn func()) CopyFn { return CopyFn{fn: fn} }

// NewCopyFnMut wraps fn.
func NewCopyFnMut(fn func()) CopyFnMut { return CopyFnMut{fn: fn} }

// NewCopyFnOnce wraps fn.
func NewCopyFnOnce(fn func()) CopyFnOnce { return CopyFnOnce{fn: fn} }

// NewCopyFnStrict wraps fn if it is a top-level function.
func NewCopyFnStrict(fn func()) (CopyFn, error) {
	if err := checkNonCapturing(fn); err != nil {
		return CopyFn{}, err
	}
	return CopyFn{fn: fn}, nil
}

// NewCopyFnMutStrict wraps fn if it is a top-level function.
func NewCopyFnMutStrict(fn func()) (CopyFnMut, error) {
	if err := checkNonCapturing(fn); err != nil {
		return CopyFnMut{}, err
	}
	return CopyFnMut{fn: fn}, nil
}

// NewCopyFnOnceStrict wraps fn if it is a top-level function.
func NewCopyFnOnceStrict(fn func()) (CopyFnOnce, error) {
	if err := checkNonCapturing(fn); err != nil {
		return CopyFnOnce{}, err
	}
	return CopyFnOnce{fn: fn}, nil
}

// Call invokes the wrapped function. Calling a zero CopyFn does nothing.
func (c CopyFn) Call() {
	if c.fn != nil {
		c.fn()
	}
}

// IsZero reports whether c wraps no function.
func (c CopyFn) IsZero() bool { return c.fn == nil }

// Name returns the symbol name of the wrapped function, or "" if zero.
func (c CopyFn) Name() string { return funcName(c.fn) }

// Call invokes the wrapped function. Calling a zero CopyFnMut does nothing.
func (c CopyFnMut) Call() {
	if c.fn != nil {
		c.fn()
	}
}

// IsZero reports whether c wraps no function.
func (c CopyFnMut) IsZero() bool { return c.fn == nil }

// Name returns the symbol name of the wrapped function, or "" if zero.
func (c CopyFnMut) Name() string { return funcName(c.fn) }

// Call invokes the wrapped function. Calling it more than once on the same
// handle or its copies breaks the type's contract but is not detected.
// Calling a zero CopyFnOnce does nothing.
func (c CopyFnOnce) Call() {
	if c.fn != nil {
		c.fn()
	}
}

// IsZero reports whether c wraps no function.
func (c CopyFnOnce) IsZero() bool { return c.fn == nil }

// Name returns the symbol name of the wrapped function, or "" if zero.
func (c CopyFnOnce) Name() string { return funcName(c.fn) }

func funcName(fn func()) string {
	if fn == nil {
		return ""
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}

func checkNonCapturing(fn func()) error {
	if fn == nil {
		return nil
	}
	if name := funcName(fn); capturingName.MatchString(name) {
		return fmt.Errorf("%w: %s", ErrCapturingFunc, name)
	}
	return nil
}
