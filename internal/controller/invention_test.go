package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvention_HundredIdeasKept(t *testing.T) {
	v := NewInvention()
	ideas := make([]domain.InventionIdea, 100)
	for i := range ideas {
		ideas[i] = domain.InventionIdea{Title: fmt.Sprintf("idea %d", i), TechStack: []string{"Go"}}
	}

	tk, ok := v.Begin()
	require.True(t, ok)
	require.True(t, v.Complete(tk, generation.Outcome[domain.InventionIdea]{Records: ideas}))

	require.Len(t, v.Records(), 100)
	assert.Equal(t, "idea 99", v.Records()[99].Title)
}

func TestInvention_FailureIsEmptyWithLoadingCleared(t *testing.T) {
	v := NewInvention()
	tk, _ := v.Begin()

	v.Complete(tk, generation.Outcome[domain.InventionIdea]{Err: errors.New("network")})

	assert.False(t, v.Loading())
	assert.NotNil(t, v.Records())
	assert.Empty(t, v.Records())
}

func TestInvention_BeginRefusedWhileLoading(t *testing.T) {
	v := NewInvention()
	v.Begin()
	_, ok := v.Begin()
	assert.False(t, ok)
}

func TestInvention_ContextKeptVerbatim(t *testing.T) {
	v := NewInvention()
	v.SetContext("  스마트 농업 ")
	assert.Equal(t, "  스마트 농업 ", v.Context())
}

func TestInvention_AbandonDropsLateOutcome(t *testing.T) {
	v := NewInvention()
	stale, _ := v.Begin()
	v.Abandon()
	assert.False(t, v.Loading())

	late := generation.Outcome[domain.InventionIdea]{Records: []domain.InventionIdea{{Title: "late"}}}
	assert.False(t, v.Complete(stale, late))
	assert.Nil(t, v.Records())

	fresh, ok := v.Begin()
	require.True(t, ok)
	assert.NotEqual(t, stale, fresh)
	assert.False(t, v.Complete(stale, late))
	assert.True(t, v.Loading())
}
