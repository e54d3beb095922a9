package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisher_UnreachableBroker(t *testing.T) {
	_, err := NewPublisher("nats://127.0.0.1:1")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var p Nop
	assert.NoError(t, p.Publish(context.Background(), SubjectBookingCreated, BookingEvent{BookingID: "b1"}))
	assert.NotPanics(t, p.Close)
}
