package controller

import (
	"testing"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudy_DefaultsToBeginner(t *testing.T) {
	assert.Equal(t, domain.DifficultyBeginner, NewStudy().Level())
}

func TestStudy_LevelSwitchLeavesResourcesUntouched(t *testing.T) {
	s := NewStudy()
	tk, _ := s.Begin()
	loaded := []domain.StudyResource{{Topic: "Python", Difficulty: domain.DifficultyBeginner}}
	s.Complete(tk, generation.Outcome[domain.StudyResource]{Records: loaded})

	require.True(t, s.SetLevel(domain.DifficultyAdvanced))

	assert.Equal(t, loaded, s.Records())
	assert.False(t, s.Loading())
	assert.Equal(t, domain.DifficultyAdvanced, s.Level())
}

func TestStudy_InvalidLevelIgnored(t *testing.T) {
	s := NewStudy()
	assert.False(t, s.SetLevel("Expert"))
	assert.Equal(t, domain.DifficultyBeginner, s.Level())
}

func TestStudy_BeginRefusedWhileLoading(t *testing.T) {
	s := NewStudy()
	s.Begin()
	_, ok := s.Begin()
	assert.False(t, ok)
}

func TestStudy_ControllersAreIndependent(t *testing.T) {
	s := NewStudy()
	v := NewInvention()
	s.Begin()

	_, ok := v.Begin()
	assert.True(t, ok)
}
