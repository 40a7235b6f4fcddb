package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdash/internal/model"
)

func TestMemoSkipsRecomputationOnSameInputs(t *testing.T) {
	users := []model.User{
		{ID: 1, Name: "Leanne Graham"},
		{ID: 2, Name: "Ervin Howell"},
	}

	var m Memo
	filtered, total := m.Derive(users, 1, "ervin")
	require.Len(t, filtered, 1)
	require.Equal(t, 12, total)

	// Mutate the underlying data without bumping the version. A second
	// call with identical inputs must come from the cache, so the stale
	// result proves nothing was recomputed.
	users[1].Name = "Somebody Else"
	again, total2 := m.Derive(users, 1, "ervin")
	assert.Equal(t, "Ervin Howell", again[0].Name)
	assert.Equal(t, 12, total2)
}

func TestMemoRecomputesOnVersionBump(t *testing.T) {
	users := []model.User{{ID: 1, Name: "Leanne Graham"}}

	var m Memo
	filtered, _ := m.Derive(users, 1, "")
	require.Len(t, filtered, 1)

	users = append(users, model.User{ID: 2, Name: "Ervin Howell"})
	filtered, total := m.Derive(users, 2, "")
	assert.Len(t, filtered, 2)
	assert.Equal(t, 25, total)
}

func TestMemoRecomputesOnQueryChange(t *testing.T) {
	users := []model.User{
		{ID: 1, Name: "Leanne Graham"},
		{ID: 2, Name: "Ervin Howell"},
	}

	var m Memo
	filtered, _ := m.Derive(users, 1, "")
	require.Len(t, filtered, 2)

	filtered, total := m.Derive(users, 1, "leanne")
	require.Len(t, filtered, 1)
	assert.Equal(t, 13, total)

	// Back to the empty query: full collection again.
	filtered, _ = m.Derive(users, 1, "")
	assert.Len(t, filtered, 2)
}

func TestMemoInvalidate(t *testing.T) {
	users := []model.User{{ID: 1, Name: "Leanne Graham"}}

	var m Memo
	m.Derive(users, 1, "")

	users[0].Name = "Renamed"
	m.Invalidate()
	filtered, _ := m.Derive(users, 1, "")
	assert.Equal(t, "Renamed", filtered[0].Name)
}
