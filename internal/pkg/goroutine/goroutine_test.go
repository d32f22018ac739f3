package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_CollectsErrors(t *testing.T) {
	m := NewManager(4)
	errBoom := errors.New("boom")

	var ran atomic.Int32
	for i := range 3 {
		started := m.Go(context.Background(), func(context.Context) error {
			ran.Add(1)
			if i == 1 {
				return errBoom
			}
			return nil
		})
		assert.True(t, started)
	}

	err := m.Wait()
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, int32(3), ran.Load())
}

func TestManager_LimitReached(t *testing.T) {
	m := NewManager(1)
	release := make(chan struct{})

	assert.True(t, m.Go(context.Background(), func(context.Context) error {
		<-release
		return nil
	}))
	assert.False(t, m.Go(context.Background(), func(context.Context) error { return nil }))

	close(release)
	assert.NoError(t, m.Wait())
}

func TestManager_RecoversPanic(t *testing.T) {
	m := NewManager(1)

	assert.True(t, m.Go(context.Background(), func(context.Context) error {
		panic("handler exploded")
	}))
	assert.NoError(t, m.Wait())

	// the slot is released after a panic
	assert.Len(t, m.sema, 0)
}

func TestManager_RejectsAfterWaitAndCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(0)
	assert.False(t, m.Go(ctx, func(context.Context) error { return nil }))

	assert.NoError(t, m.Wait())
	assert.False(t, m.Go(context.Background(), func(context.Context) error { return nil }))

	var nilManager *Manager
	assert.False(t, nilManager.Go(context.Background(), func(context.Context) error { return nil }))
	assert.NoError(t, nilManager.Wait())
}
