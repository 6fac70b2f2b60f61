package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/storage"
)

var ctx = context.Background()

func setup(t *testing.T) storage.Storage {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// every sqlite connection gets its own :memory: database
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })

	_, currFile, _, ok := runtime.Caller(0)
	require.True(t, ok)

	schema, err := os.ReadFile(filepath.Join(filepath.Dir(currFile), "..", "..", "..", "migrations", "sqlite", "1_initial.up.sql"))
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return New(db)
}

func newVent(id string, createdAt time.Time, draft bool) *entities.Vent {
	return &entities.Vent{
		ID:         id,
		RoomID:     "general",
		Text:       "text " + id,
		Handle:     "Anon",
		DeviceID:   "device-1",
		MoodBefore: 3,
		MoodAfter:  7,
		CreatedAt:  createdAt,
		Draft:      draft,
	}
}

func TestLite_CreateGetVent(t *testing.T) {
	s := setup(t)

	reflection := "you did well"
	v := newVent("v1", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), false)
	v.Reflection = &reflection

	require.NoError(t, s.CreateVent(ctx, v))

	got, err := s.GetVent(ctx, "v1")
	require.NoError(t, err)

	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, v.RoomID, got.RoomID)
	assert.Equal(t, v.Text, got.Text)
	assert.Equal(t, v.Handle, got.Handle)
	assert.Equal(t, v.DeviceID, got.DeviceID)
	assert.Equal(t, v.MoodBefore, got.MoodBefore)
	assert.Equal(t, v.MoodAfter, got.MoodAfter)
	assert.True(t, v.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.Draft)
	require.NotNil(t, got.Reflection)
	assert.Equal(t, reflection, *got.Reflection)

	_, err = s.GetVent(ctx, "missing")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestLite_ListVents(t *testing.T) {
	s := setup(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateVent(ctx, newVent("old", base, false)))
	require.NoError(t, s.CreateVent(ctx, newVent("new", base.Add(time.Hour), false)))
	require.NoError(t, s.CreateVent(ctx, newVent("draft", base.Add(2*time.Hour), true)))

	all, err := s.ListVents(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, "draft", all[0].ID)
	assert.Equal(t, "new", all[1].ID)
	assert.Equal(t, "old", all[2].ID)

	published := false
	public, err := s.ListVents(ctx, &storage.ListVentsParams{Drafts: &published})
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "new", public[0].ID)

	drafts := true
	onlyDrafts, err := s.ListVents(ctx, &storage.ListVentsParams{Drafts: &drafts})
	require.NoError(t, err)
	require.Len(t, onlyDrafts, 1)
	assert.Equal(t, "draft", onlyDrafts[0].ID)

	limited, err := s.ListVents(ctx, &storage.ListVentsParams{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestLite_PublishDraft(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.CreateVent(ctx, newVent("d1", time.Now().UTC(), true)))

	require.NoError(t, s.PublishDraft(ctx, "d1"))

	got, err := s.GetVent(ctx, "d1")
	require.NoError(t, err)
	assert.False(t, got.Draft)

	// the transition never reverts and a repeat is distinguishable
	require.True(t, errors.Is(s.PublishDraft(ctx, "d1"), storage.ErrNotDraft))
	require.True(t, errors.Is(s.PublishDraft(ctx, "missing"), storage.ErrNotFound))
}

func TestLite_DeleteVent(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.CreateVent(ctx, newVent("v1", time.Now().UTC(), false)))
	require.NoError(t, s.DeleteVent(ctx, "v1"))

	_, err := s.GetVent(ctx, "v1")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.True(t, errors.Is(s.DeleteVent(ctx, "v1"), storage.ErrNotFound))
}

func TestLite_Reflections(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.SetReflection(ctx, "v1", "first"))
	require.NoError(t, s.SetReflection(ctx, "v1", "second"))
	require.NoError(t, s.SetReflection(ctx, "v2", "other"))

	m, err := s.ListReflections(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"v1": "second", "v2": "other"}, m)
}

func TestLite_MoodLogs(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.CreateMoodLog(ctx, &entities.MoodLog{ID: "m1", Date: "2024-03-02", Level: 4}))
	require.NoError(t, s.CreateMoodLog(ctx, &entities.MoodLog{ID: "m2", Date: "2024-03-01", Level: 6, Note: "ok"}))

	// one log per calendar date
	require.Error(t, s.CreateMoodLog(ctx, &entities.MoodLog{ID: "m3", Date: "2024-03-02", Level: 9}))

	got, err := s.GetMoodLogByDate(ctx, "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	_, err = s.GetMoodLogByDate(ctx, "2024-03-05")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	got.Level = 8
	got.Note = "updated"
	require.NoError(t, s.UpdateMoodLog(ctx, got))

	got, err = s.GetMoodLogByDate(ctx, "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Level)
	assert.Equal(t, "updated", got.Note)

	require.True(t, errors.Is(
		s.UpdateMoodLog(ctx, &entities.MoodLog{ID: "missing", Level: 1}),
		storage.ErrNotFound,
	))

	// inclusive bounds, ascending
	logs, err := s.ListMoodLogs(ctx, "2024-03-01", "2024-03-02")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-03-01", logs[0].Date)
	assert.Equal(t, "2024-03-02", logs[1].Date)

	logs, err = s.ListMoodLogs(ctx, "2024-03-02", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestLite_Rooms(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.CreateRoom(ctx, &entities.Room{ID: "general", Name: "General"}))
	require.NoError(t, s.CreateRoom(ctx, &entities.Room{ID: "work", Name: "Work"}))
	// same id upserts the name
	require.NoError(t, s.CreateRoom(ctx, &entities.Room{ID: "work", Name: "Office"}))

	rooms, err := s.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
}

func TestLite_Moderation(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.HideVent(ctx, "v1"))
	require.NoError(t, s.HideVent(ctx, "v1")) // repeat hide is fine
	require.NoError(t, s.HideVent(ctx, "v2"))

	hidden, err := s.ListHiddenVents(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1", "v2"}, hidden)

	require.NoError(t, s.BlockHandle(ctx, "Troll"))
	require.NoError(t, s.BlockHandle(ctx, "Troll"))

	blocked, err := s.ListBlockedHandles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Troll"}, blocked)
}

func TestLite_ActionQueue(t *testing.T) {
	s := setup(t)

	enqueue := func(id string) {
		payload, err := json.Marshal(map[string]string{"text": id})
		require.NoError(t, err)

		require.NoError(t, s.EnqueueAction(ctx, &entities.Action{
			ID:         id,
			Entity:     entities.ActionEntityVent,
			Op:         entities.ActionOpCreate,
			Payload:    payload,
			EnqueuedAt: time.Now().UTC(),
		}))
	}

	enqueue("a")
	enqueue("b")
	enqueue("c")

	actions, err := s.ListActions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 3)

	// strict enqueue order
	assert.Equal(t, "a", actions[0].ID)
	assert.Equal(t, "b", actions[1].ID)
	assert.Equal(t, "c", actions[2].ID)
	assert.Less(t, actions[0].Seq, actions[1].Seq)
	assert.Less(t, actions[1].Seq, actions[2].Seq)

	require.NoError(t, s.DeleteAction(ctx, "a"))

	actions, err = s.ListActions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "b", actions[0].ID)

	require.True(t, errors.Is(s.DeleteAction(ctx, "a"), storage.ErrNotFound))
}

func TestLite_Meta(t *testing.T) {
	s := setup(t)

	_, err := s.GetMeta(ctx, storage.DeviceIDKey)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.SetMeta(ctx, storage.DeviceIDKey, "device-1"))
	require.NoError(t, s.SetMeta(ctx, storage.SeededKey, "1"))

	v, err := s.GetMeta(ctx, storage.DeviceIDKey)
	require.NoError(t, err)
	assert.Equal(t, "device-1", v)

	// upsert
	require.NoError(t, s.SetMeta(ctx, storage.SeededKey, "2"))
	v, err = s.GetMeta(ctx, storage.SeededKey)
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestLite_ClearAll(t *testing.T) {
	s := setup(t)

	require.NoError(t, s.SetMeta(ctx, storage.DeviceIDKey, "device-1"))
	require.NoError(t, s.SetMeta(ctx, storage.HandleKey, "NightOwl"))
	require.NoError(t, s.SetMeta(ctx, storage.SeededKey, "1"))
	require.NoError(t, s.CreateVent(ctx, newVent("v1", time.Now().UTC(), false)))
	require.NoError(t, s.CreateMoodLog(ctx, &entities.MoodLog{ID: "m1", Date: "2024-03-01", Level: 5}))
	require.NoError(t, s.HideVent(ctx, "x"))

	require.NoError(t, s.ClearAll(ctx))

	vents, err := s.ListVents(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, vents)

	logs, err := s.ListMoodLogs(ctx, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, logs)

	hidden, err := s.ListHiddenVents(ctx)
	require.NoError(t, err)
	assert.Empty(t, hidden)

	// identity survives a wipe, the seeded marker does not
	v, err := s.GetMeta(ctx, storage.DeviceIDKey)
	require.NoError(t, err)
	assert.Equal(t, "device-1", v)

	v, err = s.GetMeta(ctx, storage.HandleKey)
	require.NoError(t, err)
	assert.Equal(t, "NightOwl", v)

	_, err = s.GetMeta(ctx, storage.SeededKey)
	require.True(t, errors.Is(err, storage.ErrNotFound))
}
