package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamMulticast(t *testing.T) {
	s := NewStream()
	var a, b int
	s.Subscribe(func() { a++ }, nil)
	s.Subscribe(func() { b++ }, nil)

	s.Next()
	s.Next()

	assert.Equal(t, 2, a)
	assert.Equal(t, 2, b)
}

func TestStreamUnsubscribe(t *testing.T) {
	s := NewStream()
	var calls int
	unsubscribe := s.Subscribe(func() { calls++ }, nil)

	s.Next()
	unsubscribe()
	s.Next()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Len())
}

func TestStreamUnsubscribeDuringNext(t *testing.T) {
	s := NewStream()
	var first, second int
	var unsubscribe func()
	unsubscribe = s.Subscribe(func() {
		first++
		unsubscribe()
	}, nil)
	s.Subscribe(func() { second++ }, nil)

	s.Next()
	s.Next()

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestStreamCompleteOnce(t *testing.T) {
	s := NewStream()
	var nexts, completes int
	s.Subscribe(func() { nexts++ }, func() { completes++ })

	s.Complete()
	s.Complete()
	s.Next()

	require.True(t, s.Closed())
	assert.Equal(t, 0, nexts, "no emission after completion")
	assert.Equal(t, 1, completes)
}

func TestStreamSubscribeAfterComplete(t *testing.T) {
	s := NewStream()
	s.Complete()

	var completed bool
	unsubscribe := s.Subscribe(func() { t.Fatal("next on completed stream") }, func() { completed = true })
	unsubscribe()
	s.Next()

	assert.True(t, completed)
}
