package production

import (
	"time"

	"go.uber.org/zap"
)

// Callable is satisfied by primitives.CopyFn, CopyFnMut and CopyFnOnce.
type Callable interface {
	Call()
	Name() string
}

// Invoker runs function handles.
type Invoker interface {
	Invoke(fn Callable)
}

// DefaultInvoker calls the handle directly.
type DefaultInvoker struct{}

// Invoke calls fn.
func (DefaultInvoker) Invoke(fn Callable) {
	fn.Call()
}

// LoggingInvoker wraps an Invoker and adds logging around execution.
type LoggingInvoker struct {
	inner Invoker
	log   *zap.Logger
}

// NewLoggingInvoker creates a new LoggingInvoker wrapping the given inner
// invoker. A nil logger disables output.
func NewLoggingInvoker(inner Invoker, log *zap.Logger) *LoggingInvoker {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingInvoker{inner: inner, log: log}
}

// Invoke logs before and after delegating to the inner invoker. A panic in
// fn is logged and re-raised with the same value. A handle that exits its
// goroutine with runtime.Goexit is logged as not returning.
func (i *LoggingInvoker) Invoke(fn Callable) {
	name := fn.Name()
	i.log.Debug("invoking handle", zap.String("fn", name))
	start := time.Now()
	completed := false
	defer func() {
		if completed {
			return
		}
		if r := recover(); r != nil {
			i.log.Error("handle panicked", zap.String("fn", name), zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)))
			panic(r)
		}
		i.log.Warn("handle did not return", zap.String("fn", name), zap.Duration("elapsed", time.Since(start)))
	}()
	i.inner.Invoke(fn)
	completed = true
	i.log.Debug("handle completed", zap.String("fn", name), zap.Duration("elapsed", time.Since(start)))
}
