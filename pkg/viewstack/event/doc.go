// Package event provides the integer-keyed publish/subscribe primitive used
// by modules, scenes and views, and the Proxy that lets a view register
// callbacks on buses it does not own while keeping enough bookkeeping to
// tear every registration down at once.
//
// # Listener identity
//
// Go function values are not comparable, so a callback is registered through
// a *Listener created once by Listen or one of the typed adapters. The
// pointer is the registration key for both Reg and Unreg:
//
//	onLogin := event.Listen1(func(user string) { ... })
//	proxy.Reg(EventLogin, onLogin, accounts.Events(), false)
//	...
//	proxy.Unreg(EventLogin, onLogin)
//
// Typed adapters wrap the callback once at construction time, so the wrapper
// and the key are the same object and typed and untyped unregistration agree.
package event
