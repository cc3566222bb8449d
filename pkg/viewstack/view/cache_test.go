package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubView struct {
	Base
}

func cachedStub(path string, policy CachePolicy) *stubView {
	v := &stubView{}
	v.SetDescriptor(NewDescriptor(path, WithCache(policy)))
	return v
}

func TestPoolEvictsOldestWhenFull(t *testing.T) {
	c := newPool(2)
	a, b, d := cachedStub("a", CacheScene), cachedStub("b", CacheScene), cachedStub("d", CacheScene)

	assert.Nil(t, c.add(a))
	assert.Nil(t, c.add(b))
	assert.Same(t, a, c.add(d))
	assert.Equal(t, []View{b, d}, c.snapshot())
}

func TestPoolUnboundedWhenZero(t *testing.T) {
	c := newPool(0)
	for _, p := range []string{"a", "b", "c", "d"} {
		assert.Nil(t, c.add(cachedStub(p, CacheShared)))
	}
	assert.Equal(t, 4, c.size())
}

func TestPoolAddIgnoresDuplicates(t *testing.T) {
	c := newPool(0)
	a := cachedStub("a", CacheScene)
	c.add(a)
	c.add(a)
	assert.Equal(t, 1, c.size())
}

func TestPoolTakeReturnsOldestMatch(t *testing.T) {
	c := newPool(0)
	first, second := cachedStub("menu", CacheScene), cachedStub("menu", CacheScene)
	c.add(first)
	c.add(second)

	assert.Same(t, first, c.take("menu"))
	assert.Same(t, second, c.take("menu"))
	assert.Nil(t, c.take("menu"))
}

func TestPoolPurgeKeepsOtherPolicies(t *testing.T) {
	c := newPool(0)
	scene := cachedStub("hud", CacheScene)
	shared := cachedStub("toast", CacheShared)
	c.add(scene)
	c.add(shared)

	assert.Equal(t, []View{scene}, c.purge(CacheScene))
	assert.Equal(t, []View{shared}, c.snapshot())
	assert.True(t, c.remove(shared))
	assert.False(t, c.remove(shared))
}
