package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoIndex_Add(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		ix := NewRepoIndex()
		ix.Add(&StarredRepo{FullName: "a/one"})
		ix.Add(&StarredRepo{FullName: "b/two"})
		ix.Add(&StarredRepo{FullName: "c/three"})

		assert.Equal(t, []string{"a/one", "b/two", "c/three"}, ix.Order)
		assert.Equal(t, 3, ix.Len())
	})

	t.Run("duplicate key overwrites record but keeps position", func(t *testing.T) {
		ix := NewRepoIndex()
		ix.Add(&StarredRepo{FullName: "a/one", Stars: 1})
		ix.Add(&StarredRepo{FullName: "b/two"})
		ix.Add(&StarredRepo{FullName: "a/one", Stars: 9})

		assert.Equal(t, []string{"a/one", "b/two"}, ix.Order)
		require.NotNil(t, ix.Get("a/one"))
		assert.Equal(t, 9, ix.Get("a/one").Stars)
	})

	t.Run("ignores nil and unnamed records", func(t *testing.T) {
		ix := NewRepoIndex()
		ix.Add(nil)
		ix.Add(&StarredRepo{})

		assert.Equal(t, 0, ix.Len())
		assert.Empty(t, ix.Order)
	})
}

func TestRepoIndex_Get(t *testing.T) {
	t.Run("returns nil for missing key", func(t *testing.T) {
		ix := NewRepoIndex()
		assert.Nil(t, ix.Get("no/such"))
	})
}

func TestRepoRef_FullName(t *testing.T) {
	ref := RepoRef{Owner: "torvalds", Name: "linux"}
	assert.Equal(t, "torvalds/linux", ref.FullName())
}

func TestSortMode_ByStars(t *testing.T) {
	assert.True(t, SortStars.ByStars())
	assert.False(t, SortScrapeOrder.ByStars())
	assert.False(t, SortMode("anything-else").ByStars())
}
