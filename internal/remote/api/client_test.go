package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/remote"
)

var ctx = context.Background()

func TestClient_ListVents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/vents", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Write([]byte(`{
			"total": 2,
			"vents": [
				{
					"id": "v1",
					"room": {"id": "r-gen", "name": "General"},
					"text": "long day",
					"anonymousHandle": "NightOwl",
					"deviceId": "dev-1",
					"moodBefore": 2,
					"moodAfter": 6,
					"createdAt": "2024-03-01T12:00:00Z",
					"reflection": "rest helps"
				},
				{
					"id": "v2",
					"room": "Work",
					"text": "deadline",
					"createdAt": 1709294400
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	page, err := c.ListVents(ctx, remote.VentsFilter{Limit: 25})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	require.Len(t, page.Vents, 2)

	v := page.Vents[0]
	assert.Equal(t, "v1", v.ID)
	assert.Equal(t, "r-gen", v.RoomID)
	assert.Equal(t, "General", v.RoomName)
	assert.Equal(t, "NightOwl", v.Handle)
	assert.Equal(t, "dev-1", v.DeviceID)
	assert.Equal(t, 2, v.MoodBefore)
	assert.Equal(t, 6, v.MoodAfter)
	assert.True(t, v.CreatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.NotNil(t, v.Reflection)
	assert.Equal(t, "rest helps", *v.Reflection)

	// bare-string room and unix-seconds timestamp
	v = page.Vents[1]
	assert.Empty(t, v.RoomID)
	assert.Equal(t, "Work", v.RoomName)
	assert.Equal(t, entities.DefaultHandle, v.Handle)
	assert.True(t, v.CreatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Nil(t, v.Reflection)
}

func TestClient_ListVents_MissingTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"total": 3,
			"vents": [
				{"id": "v1", "room": "General", "text": "dated", "createdAt": "2024-03-01T12:00:00Z"},
				{"id": "v2", "room": "General", "text": "null stamp", "createdAt": null},
				{"id": "v3", "room": "General", "text": "empty stamp", "createdAt": ""}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	// one record without a usable timestamp must not discard the page
	page, err := c.ListVents(ctx, remote.VentsFilter{})
	require.NoError(t, err)
	require.Len(t, page.Vents, 3)

	assert.False(t, page.Vents[0].CreatedAt.IsZero())
	assert.True(t, page.Vents[1].CreatedAt.IsZero())
	assert.True(t, page.Vents[2].CreatedAt.IsZero())
}

func TestClient_CreateVent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/vents", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "r-gen", body["roomId"])
		assert.Equal(t, "long day", body["text"])
		assert.Equal(t, "NightOwl", body["anonymousHandle"])
		assert.Equal(t, "dev-1", body["deviceId"])
		assert.Equal(t, true, body["generateReflection"])

		w.Write([]byte(`{
			"id": "v1",
			"roomId": "r-gen",
			"text": "long day",
			"anonymousHandle": "NightOwl",
			"deviceId": "dev-1",
			"createdAt": "2024-03-01T12:00:00Z",
			"reflection": "one step at a time"
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	v, err := c.CreateVent(ctx, remote.CreateVentParams{
		RoomID:             "r-gen",
		Text:               "long day",
		Handle:             "NightOwl",
		DeviceID:           "dev-1",
		MoodBefore:         2,
		MoodAfter:          6,
		GenerateReflection: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID)
	require.NotNil(t, v.Reflection)
	assert.Equal(t, "one step at a time", *v.Reflection)
}

func TestClient_ListMoodLogs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/moodlogs", r.URL.Path)
		assert.Equal(t, "dev-1", r.URL.Query().Get("deviceId"))
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-03-07", r.URL.Query().Get("endDate"))

		w.Write([]byte(`{"moodLogs": [{"id": "m1", "date": "2024-03-02", "moodLevel": 7, "note": "better"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	logs, err := c.ListMoodLogs(ctx, remote.MoodLogsFilter{DeviceID: "dev-1", From: "2024-03-01", To: "2024-03-07"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, &entities.MoodLog{ID: "m1", Date: "2024-03-02", Level: 7, Note: "better"}, logs[0])
}

func TestClient_ListRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/rooms", r.URL.Path)
		w.Write([]byte(`{"rooms": [{"id": "r-gen", "name": "General"}, {"id": "r-work", "name": "Work"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)

	rooms, err := c.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, &entities.Room{ID: "r-gen", Name: "General"}, rooms[0])
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, time.Second).Ping(ctx))
}

func TestClient_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second).ListRooms(ctx)
		require.True(t, errors.Is(err, remote.ErrUnavailable))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		err := New(srv.URL, time.Second).Ping(ctx)
		require.True(t, errors.Is(err, remote.ErrUnavailable))
	})

	t.Run("garbage body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second).ListVents(ctx, remote.VentsFilter{})
		require.True(t, errors.Is(err, remote.ErrUnavailable))
	})
}
