package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty_Valid(t *testing.T) {
	for _, s := range []string{"Beginner", "Intermediate", "Advanced"} {
		d, err := ParseDifficulty(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(d))
	}
}

func TestParseDifficulty_RejectsUnknownAndCaseMismatch(t *testing.T) {
	for _, s := range []string{"", "beginner", "Expert"} {
		_, err := ParseDifficulty(s)
		assert.Error(t, err, "should reject %q", s)
	}
}

func TestDifficultyValues_Order(t *testing.T) {
	assert.Equal(t, []string{"Beginner", "Intermediate", "Advanced"}, DifficultyValues())
}

func TestParseViewKind(t *testing.T) {
	k, err := ParseViewKind("ideas")
	require.NoError(t, err)
	assert.Equal(t, ViewInvention, k)

	k, err = ParseViewKind("roadmap")
	require.NoError(t, err)
	assert.Equal(t, ViewRoadmap, k)

	_, err = ParseViewKind("dashboard")
	assert.Error(t, err)
}
