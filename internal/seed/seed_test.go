package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feelspace/feelsync/internal/entities"
)

func TestGenerator_Content_EmptyCatalog(t *testing.T) {
	rooms, vents := NewGenerator().Content("device-1", nil)

	// with no catalog the default rooms come into existence too
	require.Len(t, rooms, 4)
	require.NotEmpty(t, vents)

	byRoom := map[string]int{}
	for _, v := range vents {
		byRoom[v.RoomID]++

		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Text)
		assert.NotEmpty(t, v.RoomName)
		assert.Equal(t, "device-1", v.DeviceID)
		assert.Equal(t, entities.DefaultHandle, v.Handle)
		assert.False(t, v.CreatedAt.IsZero())
		assert.False(t, v.Draft)

		assert.GreaterOrEqual(t, v.MoodBefore, 1)
		assert.LessOrEqual(t, v.MoodBefore, 10)
		assert.GreaterOrEqual(t, v.MoodAfter, 1)
		assert.LessOrEqual(t, v.MoodAfter, 10)
	}

	for _, r := range rooms {
		assert.NotZero(t, byRoom[r.ID], "room %s has no sample vents", r.ID)
	}
}

func TestGenerator_Content_ExistingCatalog(t *testing.T) {
	catalog := []*entities.Room{{ID: "r-gen", Name: "General"}}

	rooms, vents := NewGenerator().Content("device-1", catalog)

	// known rooms are reused, not recreated
	assert.Empty(t, rooms)
	require.NotEmpty(t, vents)

	for _, v := range vents {
		assert.Equal(t, "r-gen", v.RoomID)
		assert.Equal(t, "General", v.RoomName)
	}
}

func TestGenerator_Content_Deterministic(t *testing.T) {
	catalog := []*entities.Room{{ID: "general", Name: "General"}, {ID: "work", Name: "Work"}}

	_, a := NewGenerator().Content("device-1", catalog)
	_, b := NewGenerator().Content("device-1", catalog)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Text, b[i].Text)
		assert.Equal(t, a[i].MoodBefore, b[i].MoodBefore)
		assert.Equal(t, a[i].MoodAfter, b[i].MoodAfter)
	}
}
