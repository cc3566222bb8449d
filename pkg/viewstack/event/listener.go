package event

// Callback receives the positional arguments passed to Notify.
type Callback func(args ...any)

// Listener is the comparable handle for a registered callback.
type Listener struct {
	fn Callback
}

// Listen wraps fn into a Listener. It returns nil when fn is nil so that
// registration fails the same way a missing callback would.
func Listen(fn Callback) *Listener {
	if fn == nil {
		return nil
	}
	return &Listener{fn: fn}
}

// Listen1 adapts a one-argument callback. Missing or mistyped arguments
// decode to the zero value of T.
func Listen1[T any](fn func(T)) *Listener {
	if fn == nil {
		return nil
	}
	return Listen(func(args ...any) {
		fn(Arg[T](args, 0))
	})
}

// Listen2 adapts a two-argument callback.
func Listen2[T1, T2 any](fn func(T1, T2)) *Listener {
	if fn == nil {
		return nil
	}
	return Listen(func(args ...any) {
		fn(Arg[T1](args, 0), Arg[T2](args, 1))
	})
}

// Listen3 adapts a three-argument callback.
func Listen3[T1, T2, T3 any](fn func(T1, T2, T3)) *Listener {
	if fn == nil {
		return nil
	}
	return Listen(func(args ...any) {
		fn(Arg[T1](args, 0), Arg[T2](args, 1), Arg[T3](args, 2))
	})
}

// Arg returns args[i] as T, or the zero value of T when the index is out of
// range or the value has another type.
func Arg[T any](args []any, i int) T {
	var zero T
	if i < 0 || i >= len(args) {
		return zero
	}
	v, ok := args[i].(T)
	if !ok {
		return zero
	}
	return v
}

func (l *Listener) invoke(args []any) {
	l.fn(args...)
}
