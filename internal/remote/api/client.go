// Package api is the HTTP implementation of the remote gateway.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/remote"
)

var log = logrus.WithField("layer", "remote").WithField("package", "api")

type client struct {
	base string
	http *http.Client
}

// roomRef accepts both forms the backend emits for a vent's room: an
// embedded {id, name} object or a bare name string.
type roomRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *roomRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		r.Name = name
		return nil
	}

	type plain roomRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	*r = roomRef(p)
	return nil
}

// apiTime accepts RFC3339 strings and unix-seconds numbers so local and
// remote timestamps normalize to one representation before sorting.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	// a missing timestamp degrades one record to sort-last instead of
	// failing the whole page
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.Unix(v, 0).UTC()
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}

	t.Time = parsed.UTC()
	return nil
}

type ventDTO struct {
	ID         string   `json:"id"`
	Room       *roomRef `json:"room"`
	RoomID     string   `json:"roomId"`
	Text       string   `json:"text"`
	Handle     string   `json:"anonymousHandle"`
	DeviceID   string   `json:"deviceId"`
	MoodBefore int      `json:"moodBefore"`
	MoodAfter  int      `json:"moodAfter"`
	CreatedAt  apiTime  `json:"createdAt"`
	Reflection *string  `json:"reflection"`
}

type listVentsResponse struct {
	Vents []*ventDTO `json:"vents"`
	Total uint32     `json:"total"`
}

type moodLogDTO struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Level int    `json:"moodLevel"`
	Note  string `json:"note"`
}

type roomDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *client) ListVents(ctx context.Context, f remote.VentsFilter) (*remote.VentsPage, error) {
	q := url.Values{}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(int(f.Limit)))
	}

	var resp listVentsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/vents", q, nil, &resp); err != nil {
		return nil, err
	}

	out := &remote.VentsPage{
		Vents: make([]*entities.Vent, len(resp.Vents)),
		Total: resp.Total,
	}
	for i, v := range resp.Vents {
		out.Vents[i] = toVent(v)
	}

	return out, nil
}

func (c *client) CreateVent(ctx context.Context, p remote.CreateVentParams) (*entities.Vent, error) {
	var v ventDTO
	if err := c.do(ctx, http.MethodPost, "/v1/vents", nil, p, &v); err != nil {
		return nil, err
	}

	return toVent(&v), nil
}

func (c *client) ListMoodLogs(ctx context.Context, f remote.MoodLogsFilter) ([]*entities.MoodLog, error) {
	q := url.Values{}
	q.Set("deviceId", f.DeviceID)
	q.Set("startDate", f.From)
	q.Set("endDate", f.To)

	var resp struct {
		Logs []*moodLogDTO `json:"moodLogs"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/moodlogs", q, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]*entities.MoodLog, len(resp.Logs))
	for i, l := range resp.Logs {
		out[i] = &entities.MoodLog{ID: l.ID, Date: l.Date, Level: l.Level, Note: l.Note}
	}

	return out, nil
}

func (c *client) ListRooms(ctx context.Context) ([]*entities.Room, error) {
	var resp struct {
		Rooms []*roomDTO `json:"rooms"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/rooms", nil, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]*entities.Room, len(resp.Rooms))
	for i, r := range resp.Rooms {
		out[i] = &entities.Room{ID: r.ID, Name: r.Name}
	}

	return out, nil
}

func (c *client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *client) do(ctx context.Context, method, path string, q url.Values, body, out interface{}) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("request failed")
		return fmt.Errorf("%w: %s", remote.ErrUnavailable, err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithField("path", path).WithField("status", resp.StatusCode).Debug("unexpected status")
		return fmt.Errorf("%w: unexpected status %d", remote.ErrUnavailable, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %s", remote.ErrUnavailable, err)
	}

	return nil
}

func toVent(v *ventDTO) *entities.Vent {
	out := &entities.Vent{
		ID:         v.ID,
		RoomID:     v.RoomID,
		Text:       v.Text,
		Handle:     v.Handle,
		DeviceID:   v.DeviceID,
		MoodBefore: v.MoodBefore,
		MoodAfter:  v.MoodAfter,
		CreatedAt:  v.CreatedAt.Time,
		Reflection: v.Reflection,
	}

	if v.Room != nil {
		if v.Room.ID != "" {
			out.RoomID = v.Room.ID
		}
		out.RoomName = v.Room.Name
	}

	if out.Handle == "" {
		out.Handle = entities.DefaultHandle
	}

	return out
}

// New creates a gateway talking to the backend at base. The timeout bounds
// every call; a slow backend is indistinguishable from an unreachable one.
func New(base string, timeout time.Duration) remote.Gateway {
	return &client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}
