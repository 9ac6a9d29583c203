package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwigmo/todotxt/internal/domain/service/search"
)

func TestSuggest_FirstContainingMatch(t *testing.T) {
	got, ok := search.Suggest("or", []string{"Home", "Work", "Sport"}, nil)
	require.True(t, ok)
	assert.Equal(t, "Work", got)
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	got, ok := search.Suggest("WORK", []string{"Home", "Work"}, nil)
	require.True(t, ok)
	assert.Equal(t, "Work", got)
}

func TestSuggest_SkipsExcluded(t *testing.T) {
	got, ok := search.Suggest("o", []string{"Work", "Home"}, []string{"Work"})
	require.True(t, ok)
	assert.Equal(t, "Home", got)
}

func TestSuggest_NoMatch(t *testing.T) {
	got, ok := search.Suggest("xyz", []string{"Work", "Home"}, nil)
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestSuggest_EmptyTermIgnoresExclusions(t *testing.T) {
	// Historical behavior: a blank term yields the first option even
	// when it is excluded.
	got, ok := search.Suggest("", []string{"Work", "Home"}, []string{"Work"})
	require.True(t, ok)
	assert.Equal(t, "Work", got)
}

func TestSuggest_EmptyTermNoOptions(t *testing.T) {
	_, ok := search.Suggest("", nil, nil)
	assert.False(t, ok)
}

func TestCompletionText_PrefixMatch(t *testing.T) {
	assert.Equal(t, "rk", search.CompletionText("Wo", "Work"))
	assert.Equal(t, "rk", search.CompletionText("wo", "Work"))
}

func TestCompletionText_SubstringOnlyYieldsNothing(t *testing.T) {
	assert.Equal(t, "", search.CompletionText("or", "Work"))
}

func TestCompletionText_FullMatch(t *testing.T) {
	assert.Equal(t, "", search.CompletionText("Work", "Work"))
}

func TestCompletionText_EmptyTyped(t *testing.T) {
	assert.Equal(t, "Work", search.CompletionText("", "Work"))
}
