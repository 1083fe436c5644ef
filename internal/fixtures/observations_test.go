package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestObservations_Deterministic(t *testing.T) {
	first := Observations(0, nil)
	second := Observations(0, nil)

	require.Equal(t, 10, first.Total)
	require.Len(t, first.Observations, 10)
	assert.Equal(t, first, second)

	// Two platform observations share each seed prompt.
	assert.Equal(t, first.Observations[0].SeedPrompt.ID, first.Observations[1].SeedPrompt.ID)
	assert.NotEqual(t, first.Observations[0].Platform, first.Observations[1].Platform)
}

func TestObservations_Slicing(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		limit   *int
		wantLen int
	}{
		{name: "all", offset: 0, limit: nil, wantLen: 10},
		{name: "offset only", offset: 8, limit: nil, wantLen: 2},
		{name: "limit only", offset: 0, limit: intPtr(3), wantLen: 3},
		{name: "offset and limit", offset: 9, limit: intPtr(5), wantLen: 1},
		{name: "offset past end", offset: 50, limit: nil, wantLen: 0},
		{name: "zero limit", offset: 0, limit: intPtr(0), wantLen: 0},
		{name: "negative offset clamps", offset: -3, limit: intPtr(2), wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Observations(tt.offset, tt.limit)
			assert.Len(t, page.Observations, tt.wantLen)
			assert.Equal(t, 10, page.Total)
		})
	}
}
