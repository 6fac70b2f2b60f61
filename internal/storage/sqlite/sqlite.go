// Package sqlite is implementation of storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/sirupsen/logrus"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "sqlite")

type lite struct {
	ext sqlx.ExtContext
}

type ventDTO struct {
	ID         string         `db:"id"`
	RoomID     string         `db:"room_id"`
	RoomName   string         `db:"room_name"`
	Text       string         `db:"text"`
	Handle     string         `db:"handle"`
	DeviceID   string         `db:"device_id"`
	MoodBefore int            `db:"mood_before"`
	MoodAfter  int            `db:"mood_after"`
	CreatedAt  time.Time      `db:"created_at"`
	Draft      bool           `db:"is_draft"`
	Reflection sql.NullString `db:"reflection"`
}

type moodLogDTO struct {
	ID    string `db:"id"`
	Date  string `db:"date"`
	Level int    `db:"level"`
	Note  string `db:"note"`
}

type actionDTO struct {
	ID         string    `db:"id"`
	Seq        int64     `db:"seq"`
	Entity     string    `db:"entity"`
	Op         string    `db:"op"`
	Payload    []byte    `db:"payload"`
	EnqueuedAt time.Time `db:"enqueued_at"`
}

const ventColumns = `
	v.id, v.room_id, v.room_name, v.text, v.handle, v.device_id,
	v.mood_before, v.mood_after, v.created_at, v.is_draft,
	r.text AS reflection
`

func (s lite) ListVents(ctx context.Context, p *storage.ListVentsParams) ([]*entities.Vent, error) {
	q := fmt.Sprintf(`
			SELECT %s FROM vent v
			LEFT JOIN reflection r ON r.vent_id = v.id
		`, ventColumns)

	var args []interface{}

	if p != nil && p.Drafts != nil {
		q += ` WHERE v.is_draft = ?`
		args = append(args, *p.Drafts)
	}

	q += ` ORDER BY v.created_at DESC`

	if p != nil && p.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	var vents []*ventDTO
	if err := sqlx.SelectContext(ctx, s.ext, &vents, q, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Vent, len(vents))
	for i, v := range vents {
		out[i] = toVent(v)
	}

	return out, nil
}

func (s lite) GetVent(ctx context.Context, id string) (*entities.Vent, error) {
	var v ventDTO

	if err := sqlx.GetContext(ctx, s.ext, &v, fmt.Sprintf(`
			SELECT %s FROM vent v
			LEFT JOIN reflection r ON r.vent_id = v.id
			WHERE v.id = ?
		`, ventColumns),
		id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toVent(&v), nil
}

func (s lite) CreateVent(ctx context.Context, v *entities.Vent) error {
	vent := ventDTO{
		ID:         v.ID,
		RoomID:     v.RoomID,
		RoomName:   v.RoomName,
		Text:       v.Text,
		Handle:     v.Handle,
		DeviceID:   v.DeviceID,
		MoodBefore: v.MoodBefore,
		MoodAfter:  v.MoodAfter,
		CreatedAt:  v.CreatedAt.UTC(),
		Draft:      v.Draft,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO vent(id, room_id, room_name, text, handle, device_id, mood_before, mood_after, created_at, is_draft)
			VALUES(:id, :room_id, :room_name, :text, :handle, :device_id, :mood_before, :mood_after, :created_at, :is_draft)
		`, vent,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if v.Reflection != nil {
		if err := s.SetReflection(ctx, v.ID, *v.Reflection); err != nil {
			return fmt.Errorf("failed to save reflection: %w", err)
		}
	}

	return nil
}

func (s lite) PublishDraft(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE vent SET is_draft=0 WHERE id=? AND is_draft=1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 1 {
		return nil
	}

	var draft bool
	if err := sqlx.GetContext(ctx, s.ext, &draft, `SELECT is_draft FROM vent WHERE id=?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to query: %w", err)
	}

	// the row exists but was already published
	return storage.ErrNotDraft
}

func (s lite) DeleteVent(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM vent WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s lite) SetReflection(ctx context.Context, ventID, text string) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO reflection(vent_id, text) VALUES(?, ?)
			ON CONFLICT(vent_id) DO UPDATE SET text=excluded.text
		`, ventID, text,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s lite) ListReflections(ctx context.Context) (map[string]string, error) {
	var rows []struct {
		VentID string `db:"vent_id"`
		Text   string `db:"text"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `SELECT vent_id, text FROM reflection`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.VentID] = r.Text
	}

	return out, nil
}

func (s lite) CreateMoodLog(ctx context.Context, l *entities.MoodLog) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`INSERT INTO mood_log(id, date, level, note) VALUES(:id, :date, :level, :note)`,
		moodLogDTO{ID: l.ID, Date: l.Date, Level: l.Level, Note: l.Note},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s lite) GetMoodLogByDate(ctx context.Context, date string) (*entities.MoodLog, error) {
	var l moodLogDTO

	if err := sqlx.GetContext(ctx, s.ext, &l,
		`SELECT id, date, level, note FROM mood_log WHERE date(date) = date(?)`, date,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.MoodLog{ID: l.ID, Date: l.Date, Level: l.Level, Note: l.Note}, nil
}

func (s lite) UpdateMoodLog(ctx context.Context, l *entities.MoodLog) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE mood_log SET level=?, note=? WHERE id=?`,
		l.Level, l.Note, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s lite) ListMoodLogs(ctx context.Context, from, to string) ([]*entities.MoodLog, error) {
	var logs []*moodLogDTO

	// both bounds are inclusive, ascending for history rendering
	if err := sqlx.SelectContext(ctx, s.ext, &logs, `
			SELECT id, date, level, note FROM mood_log
			WHERE date(date) BETWEEN date(?) AND date(?)
			ORDER BY date(date) ASC
		`, from, to,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.MoodLog, len(logs))
	for i, l := range logs {
		out[i] = &entities.MoodLog{ID: l.ID, Date: l.Date, Level: l.Level, Note: l.Note}
	}

	return out, nil
}

func (s lite) ListRooms(ctx context.Context) ([]*entities.Room, error) {
	var rooms []*entities.Room

	if err := sqlx.SelectContext(ctx, s.ext, &rooms, `SELECT id, name FROM room ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return rooms, nil
}

func (s lite) CreateRoom(ctx context.Context, r *entities.Room) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO room(id, name) VALUES(?, ?) ON CONFLICT(id) DO UPDATE SET name=excluded.name`,
		r.ID, r.Name,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s lite) ListHiddenVents(ctx context.Context) ([]string, error) {
	ids := []string{}

	if err := sqlx.SelectContext(ctx, s.ext, &ids, `SELECT vent_id FROM hidden_vent`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s lite) HideVent(ctx context.Context, id string) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO hidden_vent(vent_id) VALUES(?) ON CONFLICT DO NOTHING`, id,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s lite) ListBlockedHandles(ctx context.Context) ([]string, error) {
	handles := []string{}

	if err := sqlx.SelectContext(ctx, s.ext, &handles, `SELECT handle FROM blocked_handle`); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return handles, nil
}

func (s lite) BlockHandle(ctx context.Context, handle string) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO blocked_handle(handle) VALUES(?) ON CONFLICT DO NOTHING`, handle,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s lite) EnqueueAction(ctx context.Context, a *entities.Action) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO action_queue(id, entity, op, payload, enqueued_at)
			VALUES(:id, :entity, :op, :payload, :enqueued_at)
		`, actionDTO{
			ID:         a.ID,
			Entity:     a.Entity,
			Op:         a.Op,
			Payload:    a.Payload,
			EnqueuedAt: a.EnqueuedAt.UTC(),
		},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s lite) ListActions(ctx context.Context) ([]*entities.Action, error) {
	var actions []*actionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &actions, `
			SELECT seq, id, entity, op, payload, enqueued_at FROM action_queue ORDER BY seq ASC
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Action, len(actions))
	for i, a := range actions {
		out[i] = &entities.Action{
			ID:         a.ID,
			Seq:        a.Seq,
			Entity:     a.Entity,
			Op:         a.Op,
			Payload:    a.Payload,
			EnqueuedAt: a.EnqueuedAt,
		}
	}

	return out, nil
}

func (s lite) DeleteAction(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM action_queue WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s lite) GetMeta(ctx context.Context, key string) (string, error) {
	var v string

	if err := sqlx.GetContext(ctx, s.ext, &v, `SELECT value FROM meta WHERE key=?`, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("failed to query: %w", err)
	}

	return v, nil
}

func (s lite) SetMeta(ctx context.Context, key, value string) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// ClearAll wipes user content. The device identity and handle survive a
// wipe, everything else (including the seeded marker) goes.
func (s lite) ClearAll(ctx context.Context) error {
	for _, q := range []string{
		`DELETE FROM reflection`,
		`DELETE FROM hidden_vent`,
		`DELETE FROM blocked_handle`,
		`DELETE FROM action_queue`,
		`DELETE FROM mood_log`,
		`DELETE FROM vent`,
		`DELETE FROM room`,
		`DELETE FROM meta WHERE key NOT IN (?, ?)`,
	} {
		var args []interface{}
		if q == `DELETE FROM meta WHERE key NOT IN (?, ?)` {
			args = []interface{}{storage.DeviceIDKey, storage.HandleKey}
		}

		if _, err := s.ext.ExecContext(ctx, q, args...); err != nil {
			log.WithError(err).WithField("query", q).Error("failed to clear table")
			return fmt.Errorf("failed to exec: %w", err)
		}
	}

	return nil
}

func toVent(v *ventDTO) *entities.Vent {
	out := &entities.Vent{
		ID:         v.ID,
		RoomID:     v.RoomID,
		RoomName:   v.RoomName,
		Text:       v.Text,
		Handle:     v.Handle,
		DeviceID:   v.DeviceID,
		MoodBefore: v.MoodBefore,
		MoodAfter:  v.MoodAfter,
		CreatedAt:  v.CreatedAt,
		Draft:      v.Draft,
	}

	if v.Reflection.Valid {
		r := v.Reflection.String
		out.Reflection = &r
	}

	return out
}

// New creates new instance of lite.
func New(db *sql.DB) storage.Storage {
	return lite{
		ext: sqlx.NewDb(db, "sqlite3"),
	}
}
