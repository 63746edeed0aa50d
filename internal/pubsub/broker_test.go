package pubsub

import (
	"context"
	"testing"

	"github.com/leg100/tabstrip/internal/resource"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestBroker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroker[int](nopLogger{})
	sub := b.Subscribe(ctx)

	b.Publish(resource.CreatedEvent, 1)
	b.Publish(resource.UpdatedEvent, 2)

	assert.Equal(t, resource.NewEvent(resource.CreatedEvent, 1), <-sub)
	assert.Equal(t, resource.NewEvent(resource.UpdatedEvent, 2), <-sub)
}

func TestBroker_Shutdown(t *testing.T) {
	b := NewBroker[int](nopLogger{})
	sub := b.Subscribe(context.Background())

	b.Shutdown()

	_, ok := <-sub
	assert.False(t, ok, "subscription should be closed")

	late := b.Subscribe(context.Background())
	_, ok = <-late
	assert.False(t, ok, "subscribing after shutdown should return a closed channel")

	// publishing after shutdown is a no-op
	b.Publish(resource.CreatedEvent, 1)
}
