package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

type testEvent struct {
	kind string
	id   string
}

func (e testEvent) EventType() string   { return e.kind }
func (e testEvent) Timestamp() int64    { return 0 }
func (e testEvent) AggregateID() string { return e.id }

func TestInMemoryEventBus_DeliversToSubscribers(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoop())
	var received []string

	failing := &events.HandlerFunc{Type: "video.media_created", Fn: func(ctx context.Context, event interfaces.Event) error {
		return errors.New("boom")
	}}
	recording := &events.HandlerFunc{Type: "video.media_created", Fn: func(ctx context.Context, event interfaces.Event) error {
		received = append(received, event.AggregateID())
		return nil
	}}
	require.NoError(t, bus.Subscribe("video.media_created", failing))
	require.NoError(t, bus.Subscribe("video.media_created", recording))

	require.NoError(t, bus.Publish(context.Background(), testEvent{kind: "video.media_created", id: "v1"}))
	require.NoError(t, bus.Publish(context.Background(), testEvent{kind: "other", id: "v2"}))

	assert.Equal(t, []string{"v1"}, received)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoop())
	calls := 0
	handler := &events.HandlerFunc{Type: "t", Fn: func(ctx context.Context, event interfaces.Event) error {
		calls++
		return nil
	}}

	require.NoError(t, bus.Subscribe("t", handler))
	require.NoError(t, bus.Unsubscribe("t", handler))
	require.NoError(t, bus.Publish(context.Background(), testEvent{kind: "t"}))

	assert.Zero(t, calls)
}

func TestInMemoryEventBus_StopWaitsForAsync(t *testing.T) {
	bus := events.NewInMemoryEventBus(logger.NewNoop())
	done := make(chan struct{}, 1)
	require.NoError(t, bus.Subscribe("t", &events.HandlerFunc{Type: "t", Fn: func(ctx context.Context, event interfaces.Event) error {
		done <- struct{}{}
		return nil
	}}))

	bus.PublishAsync(context.Background(), testEvent{kind: "t"})
	require.NoError(t, bus.Stop())

	assert.Len(t, done, 1)
}
