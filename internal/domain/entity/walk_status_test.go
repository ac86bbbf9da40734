package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkStatus_CanTransitionTo(t *testing.T) {
	allowed := map[WalkStatus][]WalkStatus{
		StatusRequested:       {StatusAwaitingPayment, StatusRejected, StatusCancelled},
		StatusAwaitingPayment: {StatusScheduled, StatusCancelled},
		StatusScheduled:       {StatusActive, StatusCancelled},
		StatusActive:          {StatusFinished},
		StatusFinished:        {},
		StatusRejected:        {},
		StatusCancelled:       {},
	}

	all := []WalkStatus{
		StatusRequested, StatusAwaitingPayment, StatusScheduled,
		StatusActive, StatusFinished, StatusRejected, StatusCancelled,
	}

	for from, targets := range allowed {
		expected := make(map[WalkStatus]bool, len(targets))
		for _, target := range targets {
			expected[target] = true
		}

		for _, to := range all {
			assert.Equal(t, expected[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestWalkStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusFinished.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	assert.False(t, StatusRequested.IsTerminal())
	assert.False(t, StatusAwaitingPayment.IsTerminal())
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusActive.IsTerminal())
}

func TestWalkStatus_IsValid(t *testing.T) {
	assert.True(t, StatusAwaitingPayment.IsValid())
	assert.False(t, WalkStatus("in_progress").IsValid())
	assert.False(t, WalkStatus("").IsValid())
}

func TestParseWalkStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want WalkStatus
	}{
		{raw: "requested", want: StatusRequested},
		{raw: "awaiting_payment", want: StatusAwaitingPayment},
		{raw: "Awaiting payment", want: StatusAwaitingPayment},
		{raw: "ACTIVE", want: StatusActive},
		{raw: " scheduled ", want: StatusScheduled},
		{raw: "Cancelled", want: StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseWalkStatus(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWalkStatus_Unknown(t *testing.T) {
	_, err := ParseWalkStatus("in_progress")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownWalkStatus)
}

func TestWalkStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Awaiting payment", StatusAwaitingPayment.DisplayName())
	assert.Equal(t, "Active", StatusActive.DisplayName())
	// Unknown values fall back to the raw string.
	assert.Equal(t, "limbo", WalkStatus("limbo").DisplayName())
}
