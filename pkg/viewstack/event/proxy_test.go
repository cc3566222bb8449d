package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyRegDefaultsToOwnContext(t *testing.T) {
	p := NewProxy(nil, quietLogger())
	calls := 0
	require.True(t, p.Reg(1, Listen(func(...any) { calls++ }), nil, false))

	p.Notify(1, nil)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, p.Len())
}

func TestProxyRegNilListener(t *testing.T) {
	p := NewProxy(nil, quietLogger())
	assert.False(t, p.Reg(1, nil, nil, false))
	assert.Equal(t, 0, p.Len())
}

func TestProxyRegistersOnForeignContext(t *testing.T) {
	module := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	var got string
	require.True(t, p.Reg(2, Listen1(func(s string) { got = s }), module, false))

	// the proxy's own bus has nothing under 2
	p.Notify(2, nil, "own")
	assert.Equal(t, "", got)

	module.Notify(2, "module")
	assert.Equal(t, "module", got)

	p.Notify(2, module, "via proxy")
	assert.Equal(t, "via proxy", got)
}

func TestProxyWithExternalDefaultContext(t *testing.T) {
	module := NewHub(quietLogger())
	p := NewProxy(module, quietLogger())
	calls := 0
	p.Reg(4, Listen(func(...any) { calls++ }), nil, false)

	module.Notify(4)
	assert.Equal(t, 1, calls)
	assert.Same(t, module, p.Context())
}

func TestProxyUnregSelective(t *testing.T) {
	a := NewHub(quietLogger())
	b := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())

	var aCalls, bCalls, otherCalls int
	onA := Listen(func(...any) { aCalls++ })
	other := Listen(func(...any) { otherCalls++ })
	p.Reg(1, onA, a, false)
	p.Reg(1, Listen(func(...any) { bCalls++ }), b, false)
	p.Reg(1, other, a, false)

	assert.True(t, p.Unreg(1, onA))
	a.Notify(1)
	b.Notify(1)
	assert.Equal(t, 0, aCalls)
	assert.Equal(t, 1, bCalls)
	assert.Equal(t, 1, otherCalls)
	assert.Equal(t, 2, p.Len())
}

func TestProxyUnregAllAcrossContexts(t *testing.T) {
	a := NewHub(quietLogger())
	b := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	calls := 0
	p.Reg(1, Listen(func(...any) { calls++ }), a, false)
	p.Reg(1, Listen(func(...any) { calls++ }), b, false)
	p.Reg(2, Listen(func(...any) { calls += 100 }), a, false)

	assert.True(t, p.Unreg(1, nil))
	a.Notify(1)
	b.Notify(1)
	a.Notify(2)
	assert.Equal(t, 100, calls)
	assert.False(t, p.Unreg(1, nil))
}

func TestProxyUnregDropsRecordWhenBusAlreadyForgot(t *testing.T) {
	bus := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	l := Listen(func(...any) {})
	p.Reg(1, l, bus, false)

	bus.Clear()
	assert.Equal(t, 1, p.Len())

	assert.False(t, p.Unreg(1, l))
	assert.Equal(t, 0, p.Len())
}

func TestProxyOnceForgetsRecordWhenFired(t *testing.T) {
	bus := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	l := Listen(func(...any) {})
	p.Reg(1, l, bus, true)
	p.Reg(2, l, bus, false)

	bus.Notify(1)
	assert.Equal(t, 0, bus.Len(1))
	assert.Equal(t, 1, p.Len())
	assert.False(t, p.Unreg(1, l))
}

func TestProxyClearSparesSharedListenerOfOtherProxy(t *testing.T) {
	bus := NewHub(quietLogger())
	first := NewProxy(nil, quietLogger())
	second := NewProxy(nil, quietLogger())
	calls := 0
	l := Listen(func(...any) { calls++ })

	require.True(t, first.Reg(7, l, bus, true))
	bus.Notify(7)
	assert.Equal(t, 0, first.Len())

	require.True(t, second.Reg(7, l, bus, false))
	first.Clear()
	bus.Notify(7)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, bus.Len(7))
	assert.Equal(t, 1, second.Len())
}

func TestProxyUnregSparesSharedListenerOfOtherProxy(t *testing.T) {
	bus := NewHub(quietLogger())
	first := NewProxy(nil, quietLogger())
	second := NewProxy(nil, quietLogger())
	calls := 0
	l := Listen(func(...any) { calls++ })
	second.Reg(3, l, bus, false)
	first.Reg(3, l, bus, false)

	assert.True(t, first.Unreg(3, l))
	bus.Notify(3)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, second.Len())
}

func TestProxyDuplicateNetsToZero(t *testing.T) {
	bus := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	calls := 0
	l := Listen(func(...any) { calls++ })
	p.Reg(1, l, bus, false)
	p.Reg(1, l, bus, false)
	assert.Equal(t, 2, bus.Len(1))

	assert.True(t, p.Unreg(1, l))
	assert.Equal(t, 0, bus.Len(1))
	bus.Notify(1)
	assert.Equal(t, 0, calls)
}

func TestProxyClearSilencesEveryContext(t *testing.T) {
	a := NewHub(quietLogger())
	b := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	calls := 0
	p.Reg(1, Listen(func(...any) { calls++ }), a, false)
	p.Reg(2, Listen(func(...any) { calls++ }), b, false)
	p.Reg(3, Listen(func(...any) { calls++ }), nil, false)

	p.Clear()
	a.Notify(1)
	b.Notify(2)
	p.Notify(3, nil)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, p.Len())

	assert.NotPanics(t, p.Clear)
}

func TestProxyClearLeavesForeignRegistrations(t *testing.T) {
	bus := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	foreign := 0
	bus.Reg(1, Listen(func(...any) { foreign++ }), false)
	p.Reg(1, Listen(func(...any) {}), bus, false)

	p.Clear()
	bus.Notify(1)
	assert.Equal(t, 1, foreign)
}

func TestProxyOnceOnForeignBus(t *testing.T) {
	bus := NewHub(quietLogger())
	p := NewProxy(nil, quietLogger())
	calls := 0
	require.True(t, p.Reg(7, Listen(func(...any) { calls++ }), bus, true))

	bus.Notify(7)
	bus.Notify(7)
	assert.Equal(t, 1, calls)
}
