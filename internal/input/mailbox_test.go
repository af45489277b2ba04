package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkcurrie/digit-matrix-golang/internal/types"
)

func TestMailboxEmpty(t *testing.T) {
	var mb Mailbox
	assert.False(t, mb.Pending())
	a, ok := mb.Take()
	assert.False(t, ok)
	assert.Equal(t, types.ActionNone, a)
}

func TestMailboxTakeClears(t *testing.T) {
	var mb Mailbox
	mb.Post(types.ActionDecrement)
	require.True(t, mb.Pending())

	a, ok := mb.Take()
	require.True(t, ok)
	assert.Equal(t, types.ActionDecrement, a)

	assert.False(t, mb.Pending())
	_, ok = mb.Take()
	assert.False(t, ok, "second take must find the slot empty")
}

func TestMailboxLastWins(t *testing.T) {
	var mb Mailbox
	mb.Post(types.ActionIncrement)
	mb.Post(types.ActionDecrement)

	a, ok := mb.Take()
	require.True(t, ok)
	assert.Equal(t, types.ActionDecrement, a)
}

func TestMailboxConcurrentHandoff(t *testing.T) {
	var mb Mailbox
	const posts = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < posts; i++ {
			mb.Post(types.ActionIncrement)
		}
	}()

	taken := 0
	for i := 0; i < posts; i++ {
		if a, ok := mb.Take(); ok {
			require.Equal(t, types.ActionIncrement, a)
			taken++
		}
	}
	wg.Wait()
	if _, ok := mb.Take(); ok {
		taken++
	}

	assert.GreaterOrEqual(t, taken, 1)
	assert.LessOrEqual(t, taken, posts)
}
