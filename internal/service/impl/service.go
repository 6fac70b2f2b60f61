// Package impl is implementation of service interface.
package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/feelspace/feelsync/internal/entities"
	"github.com/feelspace/feelsync/internal/identity"
	"github.com/feelspace/feelsync/internal/remote"
	"github.com/feelspace/feelsync/internal/rooms"
	"github.com/feelspace/feelsync/internal/seed"
	"github.com/feelspace/feelsync/internal/service"
	"github.com/feelspace/feelsync/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

const dateLayout = "2006-01-02"

// feedLimit caps how many vents one feed load requests from the backend.
const feedLimit = 50

type srv struct {
	s      storage.Storage
	g      remote.Gateway
	id     *identity.Provider
	dir    *rooms.Directory
	conn   service.Connectivity
	seeder seed.Provider

	// mu serializes the compound mutating paths. The REST surface and the
	// syncer run on separate goroutines, so queue replay and first-run
	// seeding must not interleave with themselves.
	mu *sync.Mutex
}

// New creates new instance of service.
func New(
	s storage.Storage,
	g remote.Gateway,
	id *identity.Provider,
	dir *rooms.Directory,
	conn service.Connectivity,
	seeder seed.Provider,
) service.Service {
	return srv{
		s:      s,
		g:      g,
		id:     id,
		dir:    dir,
		conn:   conn,
		seeder: seeder,
		mu:     &sync.Mutex{},
	}
}

type moderation struct {
	hidden  map[string]struct{}
	blocked map[string]struct{}
}

func (m moderation) allows(v *entities.Vent) bool {
	if _, ok := m.hidden[v.ID]; ok {
		return false
	}
	if _, ok := m.blocked[v.Handle]; ok {
		return false
	}

	return true
}

func (s srv) LoadFeed(ctx context.Context) ([]service.FeedVent, error) {
	// identity and moderation sets are required before any filtering
	deviceID, err := s.id.DeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	mod, err := s.moderation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load moderation sets: %w", err)
	}

	dir, err := s.dir.Merged(ctx)
	if err != nil {
		log.WithError(err).Warn("room directory unavailable, labels fall back to default")
		dir = rooms.Map{}
	}

	page, remoteErr := s.g.ListVents(ctx, remote.VentsFilter{Limit: feedLimit})
	if remoteErr == nil {
		feed := s.assemble(ctx, page.Vents, mod, dir)
		if len(feed) > 0 {
			return feed, nil
		}
		log.Debug("remote feed empty after filtering, falling back to local store")
	} else {
		log.WithError(remoteErr).Warn("remote feed unavailable, falling back to local store")
	}

	feed, localErr := s.localFeed(ctx, mod, dir)
	if localErr != nil {
		if remoteErr != nil {
			return nil, fmt.Errorf("failed to load feed: %w", localErr)
		}

		log.WithError(localErr).Error("local feed load failed, presenting empty state")
		return []service.FeedVent{}, nil
	}

	if len(feed) > 0 {
		return feed, nil
	}

	if s.seedOnce(ctx, deviceID) {
		if feed, err := s.localFeed(ctx, mod, dir); err == nil {
			return feed, nil
		} else {
			log.WithError(err).Error("failed to reload feed after seeding")
		}
	}

	// nothing anywhere is an empty state, not an error
	return []service.FeedVent{}, nil
}

func (s srv) moderation(ctx context.Context) (moderation, error) {
	hidden, err := s.s.ListHiddenVents(ctx)
	if err != nil {
		return moderation{}, fmt.Errorf("failed to list hidden vents: %w", err)
	}

	blocked, err := s.s.ListBlockedHandles(ctx)
	if err != nil {
		return moderation{}, fmt.Errorf("failed to list blocked handles: %w", err)
	}

	mod := moderation{
		hidden:  make(map[string]struct{}, len(hidden)),
		blocked: make(map[string]struct{}, len(blocked)),
	}
	for _, id := range hidden {
		mod.hidden[id] = struct{}{}
	}
	for _, h := range blocked {
		mod.blocked[h] = struct{}{}
	}

	return mod, nil
}

// assemble turns raw vents into display rows: moderation filter, room
// label resolution, reflection enrichment and numeric-time ordering.
func (s srv) assemble(ctx context.Context, vents []*entities.Vent, mod moderation, dir rooms.Map) []service.FeedVent {
	reflections, err := s.s.ListReflections(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to load local reflections, skipping enrichment")
		reflections = nil
	}

	out := make([]service.FeedVent, 0, len(vents))
	for _, v := range vents {
		if !mod.allows(v) {
			continue
		}

		row := service.FeedVent{
			ID:         v.ID,
			Handle:     v.Handle,
			Text:       v.Text,
			RoomName:   dir.Resolve(v.RoomRef()),
			MoodBefore: v.MoodBefore,
			MoodAfter:  v.MoodAfter,
			CreatedAt:  v.CreatedAt,
			Reflection: v.Reflection,
		}

		if row.Handle == "" {
			row.Handle = entities.DefaultHandle
		}

		if row.Reflection == nil {
			if text, ok := reflections[v.ID]; ok {
				row.Reflection = &text
			}
		}

		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

func (s srv) localFeed(ctx context.Context, mod moderation, dir rooms.Map) ([]service.FeedVent, error) {
	published := false
	vents, err := s.s.ListVents(ctx, &storage.ListVentsParams{Drafts: &published})
	if err != nil {
		return nil, fmt.Errorf("failed to list local vents: %w", err)
	}

	return s.assemble(ctx, vents, mod, dir), nil
}

// seedOnce generates placeholder content for a fresh install. The marker is
// persisted before the caller reloads, so repeated empty loads never seed
// twice. Returns whether anything was seeded.
func (s srv) seedOnce(ctx context.Context, deviceID string) bool {
	// the marker check and the seeding writes must be one atomic step, or
	// two concurrent first loads both seed
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.s.GetMeta(ctx, storage.SeededKey); err == nil {
		return false
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.WithError(err).Error("failed to read seeded marker")
		return false
	}

	catalog, err := s.s.ListRooms(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list rooms for seeding")
		return false
	}

	newRooms, vents := s.seeder.Content(deviceID, catalog)

	for _, r := range newRooms {
		if err := s.s.CreateRoom(ctx, r); err != nil {
			log.WithError(err).WithField("room", r.ID).Error("failed to seed room")
			return false
		}
	}

	for _, v := range vents {
		if err := s.s.CreateVent(ctx, v); err != nil {
			log.WithError(err).WithField("vent", v.ID).Error("failed to seed vent")
			return false
		}
	}

	if err := s.s.SetMeta(ctx, storage.SeededKey, "1"); err != nil {
		log.WithError(err).Error("failed to persist seeded marker")
		return false
	}

	log.WithField("vents", len(vents)).Info("seeded first-run content")
	return true
}

func (s srv) ListDrafts(ctx context.Context) ([]*entities.Vent, error) {
	drafts := true
	out, err := s.s.ListVents(ctx, &storage.ListVentsParams{Drafts: &drafts})
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	return out, nil
}

func (s srv) ComposeVent(ctx context.Context, p service.ComposeParams) (*entities.Vent, error) {
	if err := validateCompose(p); err != nil {
		return nil, err
	}

	deviceID, err := s.id.DeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	handle, err := s.id.Handle(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve handle: %w", err)
	}

	v := &entities.Vent{
		ID:         uuid.NewString(),
		RoomID:     p.RoomRef,
		Text:       p.Text,
		Handle:     handle,
		DeviceID:   deviceID,
		MoodBefore: moodOrDefault(p.MoodBefore),
		MoodAfter:  moodOrDefault(p.MoodAfter),
		CreatedAt:  time.Now().UTC(),
		Draft:      p.Draft,
	}

	// local write is authoritative; the user-visible outcome never waits
	// on the network
	if err := s.s.CreateVent(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create vent: %w", err)
	}

	if !v.Draft {
		s.propagate(ctx, v, p.GenerateReflection)
	}

	return v, nil
}

func (s srv) PublishDraft(ctx context.Context, id string) error {
	switch err := s.s.PublishDraft(ctx, id); {
	case errors.Is(err, storage.ErrNotFound):
		return service.ErrDraftNotFound
	case errors.Is(err, storage.ErrNotDraft):
		// a second publish of the same id is a no-op, not an error
		return nil
	case err != nil:
		return fmt.Errorf("failed to publish draft: %w", err)
	}

	v, err := s.s.GetVent(ctx, id)
	if err != nil {
		// the local transition is already durable; propagation will be
		// picked up by a later flush only if we managed to enqueue, so
		// this is worth a loud log line
		log.WithError(err).WithField("vent", id).Error("failed to reload published draft")
		return nil
	}

	s.propagate(ctx, v, true)
	return nil
}

// propagate pushes a published vent to the backend, queueing the creation
// when the device is offline or the call fails. It never surfaces an error:
// by this point the local commit already succeeded.
func (s srv) propagate(ctx context.Context, v *entities.Vent, generateReflection bool) {
	params := remote.CreateVentParams{
		RoomID:             s.dir.RemoteID(ctx, v.RoomRef()),
		Text:               v.Text,
		Handle:             v.Handle,
		DeviceID:           v.DeviceID,
		MoodBefore:         v.MoodBefore,
		MoodAfter:          v.MoodAfter,
		GenerateReflection: generateReflection,
	}

	if s.conn.Online() {
		remoteVent, err := s.g.CreateVent(ctx, params)
		if err == nil {
			if remoteVent != nil && remoteVent.Reflection != nil {
				if err := s.s.SetReflection(ctx, v.ID, *remoteVent.Reflection); err != nil {
					log.WithError(err).WithField("vent", v.ID).Warn("failed to store reflection")
				}
			}
			return
		}

		log.WithError(err).WithField("vent", v.ID).Warn("direct push failed, queueing")
	}

	payload, err := json.Marshal(params)
	if err != nil {
		log.WithError(err).WithField("vent", v.ID).Error("failed to marshal queued action")
		return
	}

	if err := s.s.EnqueueAction(ctx, &entities.Action{
		ID:         uuid.NewString(),
		Entity:     entities.ActionEntityVent,
		Op:         entities.ActionOpCreate,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}); err != nil {
		log.WithError(err).WithField("vent", v.ID).Error("failed to enqueue action")
	}
}

func (s srv) DeleteVent(ctx context.Context, id string) error {
	if err := s.s.DeleteVent(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to delete vent: %w", err)
	}

	return nil
}

func (s srv) HideVent(ctx context.Context, id string) error {
	if err := s.s.HideVent(ctx, id); err != nil {
		return fmt.Errorf("failed to hide vent: %w", err)
	}

	return nil
}

func (s srv) BlockHandle(ctx context.Context, handle string) error {
	if err := s.s.BlockHandle(ctx, handle); err != nil {
		return fmt.Errorf("failed to block handle: %w", err)
	}

	return nil
}

func (s srv) LogMood(ctx context.Context, date string, level int, note string) (*entities.MoodLog, error) {
	if level < 1 || level > 10 {
		return nil, service.ErrInvalidMood
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", service.ErrInvalidMood, date)
	}

	existing, err := s.s.GetMoodLogByDate(ctx, date)
	switch {
	case err == nil:
		existing.Level = level
		existing.Note = note
		if err := s.s.UpdateMoodLog(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update mood log: %w", err)
		}

		return existing, nil
	case errors.Is(err, storage.ErrNotFound):
		l := &entities.MoodLog{
			ID:    uuid.NewString(),
			Date:  date,
			Level: level,
			Note:  note,
		}
		if err := s.s.CreateMoodLog(ctx, l); err != nil {
			return nil, fmt.Errorf("failed to create mood log: %w", err)
		}

		return l, nil
	default:
		return nil, fmt.Errorf("failed to get mood log: %w", err)
	}
}

func (s srv) MoodHistory(ctx context.Context, from, to time.Time) ([]*entities.MoodLog, error) {
	fromKey, toKey := from.Format(dateLayout), to.Format(dateLayout)

	s.reconcileMoodLogs(ctx, fromKey, toKey)

	out, err := s.s.ListMoodLogs(ctx, fromKey, toKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood logs: %w", err)
	}

	return out, nil
}

// reconcileMoodLogs folds remote logs for the range into the local store.
// Matching goes by date, never by id: a local log for the same day is
// updated in place, otherwise the remote log is recorded locally. Remote
// failure degrades to local-only history.
func (s srv) reconcileMoodLogs(ctx context.Context, from, to string) {
	deviceID, err := s.id.DeviceID(ctx)
	if err != nil {
		log.WithError(err).Warn("identity unavailable, skipping mood reconciliation")
		return
	}

	remoteLogs, err := s.g.ListMoodLogs(ctx, remote.MoodLogsFilter{
		DeviceID: deviceID,
		From:     from,
		To:       to,
	})
	if err != nil {
		log.WithError(err).Debug("remote mood logs unavailable, using local history only")
		return
	}

	for _, r := range remoteLogs {
		local, err := s.s.GetMoodLogByDate(ctx, r.Date)
		switch {
		case err == nil:
			local.Level = r.Level
			local.Note = r.Note
			if err := s.s.UpdateMoodLog(ctx, local); err != nil {
				log.WithError(err).WithField("date", r.Date).Warn("failed to update mood log from remote")
			}
		case errors.Is(err, storage.ErrNotFound):
			l := *r
			if l.ID == "" {
				l.ID = uuid.NewString()
			}
			if err := s.s.CreateMoodLog(ctx, &l); err != nil {
				log.WithError(err).WithField("date", r.Date).Warn("failed to record remote mood log")
			}
		default:
			log.WithError(err).WithField("date", r.Date).Warn("failed to look up mood log")
		}
	}
}

func (s srv) Flush(ctx context.Context) error {
	// a manual /sync and a syncer-triggered flush may arrive together; both
	// replaying the same head entry would create the vent remotely twice
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := s.s.ListActions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queued actions: %w", err)
	}

	for _, a := range actions {
		if err := s.replay(ctx, a); err != nil {
			// strict FIFO: a failed action blocks the ones behind it
			// until a later flush succeeds
			return fmt.Errorf("failed to replay action %s: %w", a.ID, err)
		}

		if err := s.s.DeleteAction(ctx, a.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to remove replayed action %s: %w", a.ID, err)
		}
	}

	return nil
}

func (s srv) replay(ctx context.Context, a *entities.Action) error {
	switch {
	case a.Entity == entities.ActionEntityVent && a.Op == entities.ActionOpCreate:
		var params remote.CreateVentParams
		if err := json.Unmarshal(a.Payload, &params); err != nil {
			// a payload that can not be decoded would block the queue
			// forever; drop it loudly
			log.WithError(err).WithField("action", a.ID).Error("unreadable action payload, dropping")
			return nil
		}

		if _, err := s.g.CreateVent(ctx, params); err != nil {
			return err
		}

		return nil
	default:
		log.WithField("action", a.ID).
			WithField("entity", a.Entity).
			WithField("op", a.Op).
			Error("unknown action type, dropping")
		return nil
	}
}

func (s srv) ClearAll(ctx context.Context) error {
	if err := s.s.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	return nil
}

func validateCompose(p service.ComposeParams) error {
	if p.Text == "" {
		return fmt.Errorf("%w: text is required", service.ErrInvalidVent)
	}

	if len(p.Text) > service.MaxVentLength {
		return fmt.Errorf("%w: text is too long", service.ErrInvalidVent)
	}

	for _, m := range []int{p.MoodBefore, p.MoodAfter} {
		if m != 0 && (m < 1 || m > 10) {
			return fmt.Errorf("%w: mood out of range", service.ErrInvalidVent)
		}
	}

	return nil
}

func moodOrDefault(m int) int {
	if m == 0 {
		return entities.DefaultMood
	}

	return m
}
