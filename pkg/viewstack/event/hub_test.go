package event

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHubRegRejectsNilListener(t *testing.T) {
	h := NewHub(quietLogger())
	assert.False(t, h.Reg(1, nil, false))
	assert.False(t, h.Reg(1, Listen(nil), false))
	assert.Equal(t, 0, h.Len(1))
}

func TestHubNotifyPassesArguments(t *testing.T) {
	h := NewHub(quietLogger())
	var got []any
	require.True(t, h.Reg(3, Listen(func(args ...any) { got = args }), false))

	h.Notify(3, "a", 2)
	assert.Equal(t, []any{"a", 2}, got)
}

func TestHubOnceFiresExactlyOnce(t *testing.T) {
	h := NewHub(quietLogger())
	calls := 0
	require.True(t, h.Reg(7, Listen(func(...any) { calls++ }), true))

	h.Notify(7)
	h.Notify(7)
	h.Notify(7)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, h.Len(7))
}

func TestHubOnceSurvivesReentrantNotify(t *testing.T) {
	h := NewHub(quietLogger())
	calls := 0
	var l *Listener
	l = Listen(func(...any) {
		calls++
		h.Notify(9)
	})
	require.True(t, h.Reg(9, l, true))

	h.Notify(9)
	assert.Equal(t, 1, calls)
}

func TestHubDuplicateRegistrationsAreIndependent(t *testing.T) {
	h := NewHub(quietLogger())
	calls := 0
	l := Listen(func(...any) { calls++ })
	require.True(t, h.Reg(1, l, false))
	require.True(t, h.Reg(1, l, false))

	h.Notify(1)
	assert.Equal(t, 2, calls)

	assert.True(t, h.Unreg(1, l))
	h.Notify(1)
	assert.Equal(t, 3, calls)

	assert.True(t, h.Unreg(1, l))
	assert.False(t, h.Unreg(1, l))
	h.Notify(1)
	assert.Equal(t, 3, calls)
}

func TestHubUnregAllForID(t *testing.T) {
	h := NewHub(quietLogger())
	calls := 0
	h.Reg(1, Listen(func(...any) { calls++ }), false)
	h.Reg(1, Listen(func(...any) { calls++ }), false)
	h.Reg(2, Listen(func(...any) { calls += 10 }), false)

	assert.True(t, h.Unreg(1, nil))
	assert.False(t, h.Unreg(1, nil))

	h.Notify(1)
	h.Notify(2)
	assert.Equal(t, 10, calls)
}

func TestHubListenerRemovedDuringNotifyIsSkipped(t *testing.T) {
	h := NewHub(quietLogger())
	second := 0
	l2 := Listen(func(...any) { second++ })
	h.Reg(1, Listen(func(...any) { h.Unreg(1, l2) }), false)
	h.Reg(1, l2, false)

	h.Notify(1)
	assert.Equal(t, 0, second)
}

func TestHubPanickingListenerDoesNotStopOthers(t *testing.T) {
	h := NewHub(quietLogger())
	ran := false
	h.Reg(1, Listen(func(...any) { panic("boom") }), false)
	h.Reg(1, Listen(func(...any) { ran = true }), false)

	assert.NotPanics(t, func() { h.Notify(1) })
	assert.True(t, ran)
}

func TestHubClear(t *testing.T) {
	h := NewHub(quietLogger())
	calls := 0
	h.Reg(1, Listen(func(...any) { calls++ }), false)
	h.Reg(2, Listen(func(...any) { calls++ }), true)

	h.Clear()
	h.Clear()
	h.Notify(1)
	h.Notify(2)
	assert.Equal(t, 0, calls)
}

func TestTypedListenersDecodeWithDefaults(t *testing.T) {
	h := NewHub(quietLogger())

	var s string
	var n int
	var b bool
	h.Reg(1, Listen3(func(a string, c int, d bool) { s, n, b = a, c, d }), false)

	h.Notify(1, "x", 4, true)
	assert.Equal(t, "x", s)
	assert.Equal(t, 4, n)
	assert.True(t, b)

	h.Notify(1, "y")
	assert.Equal(t, "y", s)
	assert.Equal(t, 0, n)
	assert.False(t, b)

	h.Notify(1, 42, "wrong", nil)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, n)
}

func TestTypedListenerNilCallback(t *testing.T) {
	var fn func(int)
	assert.Nil(t, Listen1(fn))
	var fn2 func(int, int)
	assert.Nil(t, Listen2(fn2))
	var fn3 func(int, int, int)
	assert.Nil(t, Listen3(fn3))
}

func TestListen2(t *testing.T) {
	h := NewHub(quietLogger())
	var a string
	var b float64
	h.Reg(5, Listen2(func(x string, y float64) { a, b = x, y }), false)
	h.Notify(5, "k", 1.5)
	assert.Equal(t, "k", a)
	assert.Equal(t, 1.5, b)
}
