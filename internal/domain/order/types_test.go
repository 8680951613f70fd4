package order_test

import (
	"testing"

	"puntoenvio-gateway/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	forward := []order.Status{
		order.StatusPending,
		order.StatusCollected,
		order.StatusInTransit,
		order.StatusAtDestination,
		order.StatusDelivered,
	}

	for i := 0; i < len(forward)-1; i++ {
		assert.True(t, forward[i].CanTransitionTo(forward[i+1]),
			"%s -> %s must be allowed", forward[i], forward[i+1])
	}

	// No skipping ahead, no going back.
	assert.False(t, order.StatusPending.CanTransitionTo(order.StatusInTransit))
	assert.False(t, order.StatusInTransit.CanTransitionTo(order.StatusPending))

	// Cancel from any non-terminal status.
	for _, s := range forward[:len(forward)-1] {
		assert.True(t, s.CanTransitionTo(order.StatusCancelled), "%s must be cancellable", s)
	}

	// Terminal statuses go nowhere.
	for _, terminal := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range append(forward, order.StatusCancelled) {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	valid := []order.Status{
		order.StatusPending, order.StatusCollected, order.StatusInTransit,
		order.StatusAtDestination, order.StatusDelivered, order.StatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "%s", s)
	}
	assert.False(t, order.Status("lost").IsValid())
	assert.False(t, order.Status("").IsValid())
}
