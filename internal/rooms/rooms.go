// Package rooms merges the backend room catalog with locally created rooms
// into one id-to-label mapping.
package rooms

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/feelspace/feelsync/internal/remote"
	"github.com/feelspace/feelsync/internal/storage"
)

var log = logrus.WithField("package", "rooms")

// FallbackName labels any vent whose room can not be resolved.
const FallbackName = "General"

// Map resolves room references to display names. Both ids and names are
// valid keys since some callers only carry a denormalized name.
type Map map[string]string

// Resolve returns the display name for a room reference, falling back to
// the General label on a miss.
func (m Map) Resolve(ref string) string {
	if name, ok := m[ref]; ok {
		return name
	}

	return FallbackName
}

// Directory resolves room references against the backend catalog and the
// local room table.
type Directory struct {
	g remote.Gateway
	s storage.Storage
}

// New creates new instance of Directory.
func New(g remote.Gateway, s storage.Storage) *Directory {
	return &Directory{g: g, s: s}
}

// Merged builds the combined mapping. Remote entries are inserted first,
// then local ones, so a locally created room whose name matches a service
// room ends up under a single display label. A remote failure degrades to
// the local catalog alone.
func (d *Directory) Merged(ctx context.Context) (Map, error) {
	out := Map{}

	if remoteRooms, err := d.g.ListRooms(ctx); err != nil {
		log.WithError(err).Debug("room catalog fetch failed, using local rooms only")
	} else {
		for _, r := range remoteRooms {
			out[r.ID] = r.Name
			out[r.Name] = r.Name
		}
	}

	local, err := d.s.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list local rooms: %w", err)
	}

	for _, r := range local {
		out[r.ID] = r.Name
		out[r.Name] = r.Name
	}

	return out, nil
}

// RemoteID maps a room reference to the backend's id for the publish path.
// When the backend catalog is unreachable or the reference is unknown, the
// raw reference is passed through.
func (d *Directory) RemoteID(ctx context.Context, ref string) string {
	if ref == "" {
		return ""
	}

	remoteRooms, err := d.g.ListRooms(ctx)
	if err != nil {
		log.WithError(err).Debug("room catalog fetch failed, passing raw room reference")
		return ref
	}

	for _, r := range remoteRooms {
		if r.ID == ref || r.Name == ref {
			return r.ID
		}
	}

	return ref
}
