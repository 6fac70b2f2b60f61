// Package seed provides first-run placeholder content so a fresh install
// never opens onto a blank feed.
package seed

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/feelspace/feelsync/internal/entities"
)

// Provider generates bootstrap content. The engine calls it at most once
// per install, guarded by a persisted marker.
type Provider interface {
	Content(deviceID string, rooms []*entities.Room) ([]*entities.Room, []*entities.Vent)
}

var defaultRooms = []*entities.Room{
	{ID: "general", Name: "General"},
	{ID: "work", Name: "Work"},
	{ID: "relationships", Name: "Relationships"},
	{ID: "late-night", Name: "Late Night"},
}

var sampleTexts = map[string][]string{
	"general": {
		"First time here. Just needed somewhere to put this down.",
		"Some days are heavier than others and that has to be okay.",
	},
	"work": {
		"Sent the email I'd been dreading all week. It went fine. It always goes fine.",
	},
	"relationships": {
		"Said the thing out loud for the first time. Still shaking a little.",
	},
	"late-night": {
		"Can't sleep again. Writing it out instead of spiraling.",
	},
}

type generator struct{}

// NewGenerator creates the deterministic sample-content generator. Texts and
// mood values depend only on the room catalog, so two fresh installs with
// the same catalog produce identical content.
func NewGenerator() Provider {
	return generator{}
}

func (generator) Content(deviceID string, rooms []*entities.Room) ([]*entities.Room, []*entities.Vent) {
	var created []*entities.Room
	if len(rooms) == 0 {
		created = defaultRooms
		rooms = defaultRooms
	}

	now := time.Now().UTC()
	var vents []*entities.Vent

	for _, room := range rooms {
		texts, ok := sampleTexts[room.ID]
		if !ok {
			texts = sampleTexts["general"]
		}

		rnd := rand.New(rand.NewSource(seedFor(room.Name))) // nolint:gosec

		for i, text := range texts {
			vents = append(vents, &entities.Vent{
				ID:         uuid.NewString(),
				RoomID:     room.ID,
				RoomName:   room.Name,
				Text:       text,
				Handle:     entities.DefaultHandle,
				DeviceID:   deviceID,
				MoodBefore: 1 + rnd.Intn(5),
				MoodAfter:  4 + rnd.Intn(6),
				CreatedAt:  now.Add(-time.Duration(i+1) * time.Hour),
			})
		}
	}

	return created, vents
}

func seedFor(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))

	return int64(h.Sum64())
}
