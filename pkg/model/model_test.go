package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/splice/pkg/domain"
	"github.com/aretw0/splice/pkg/model"
)

func TestDefault(t *testing.T) {
	m := model.Default()

	assert.Equal(t, []domain.State{"S0", "S1", "S2", "S3"}, m.States())

	tr, ok := m.Lookup("S0", "01")
	require.True(t, ok)
	assert.Equal(t, domain.State("S1"), tr.To)
	assert.Equal(t, "1", tr.Output)

	_, ok = m.Lookup("S1", "11")
	assert.False(t, ok)

	_, ok = m.Lookup("missing", "01")
	assert.False(t, ok)

	assert.Len(t, m.Transitions(), 8)
}

func TestNew_RejectsDuplicatePairs(t *testing.T) {
	_, err := model.New([]domain.Transition{
		{From: "A", Input: "00", Output: "0", To: "B"},
		{From: "A", Input: "00", Output: "1", To: "A"},
	})
	assert.ErrorContains(t, err, "duplicate transition")
}

func TestNew_StatePoolIncludesDestinations(t *testing.T) {
	// B never appears as a source but is still part of the state pool.
	m, err := model.New([]domain.Transition{
		{From: "A", Input: "00", Output: "0", To: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.State{"A", "B"}, m.States())
}

func TestStates_ReturnsACopy(t *testing.T) {
	m := model.Default()
	states := m.States()
	states[0] = "mutated"
	assert.Equal(t, []domain.State{"S0", "S1", "S2", "S3"}, m.States())
}
