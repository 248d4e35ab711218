package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/model"
)

// MemoryCatalog is a concurrency-safe in-memory repository.CatalogDAO.
// Set Err to make every call fail with it.
type MemoryCatalog struct {
	mu      sync.RWMutex
	tracks  map[string]model.Track
	albums  map[string]model.Album
	artists map[string]model.Artist
	Err     error
}

// NewMemoryCatalog returns a catalog holding tracks
func NewMemoryCatalog(tracks ...model.Track) *MemoryCatalog {
	m := &MemoryCatalog{
		tracks:  make(map[string]model.Track),
		albums:  make(map[string]model.Album),
		artists: make(map[string]model.Artist),
	}
	for _, t := range tracks {
		m.tracks[t.ID] = t
	}
	return m
}

func (m *MemoryCatalog) Close() error { return nil }

func (m *MemoryCatalog) EnsureSchema(ctx context.Context) error { return m.Err }

func (m *MemoryCatalog) GetTrack(ctx context.Context, id string) (*model.Track, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	t, ok := m.tracks[id]
	if !ok {
		return nil, apperrors.TrackNotFound(id)
	}
	return &t, nil
}

func (m *MemoryCatalog) ListTracks(ctx context.Context, exclude ...string) ([]model.Track, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	out := make([]model.Track, 0, len(m.tracks))
	for id, t := range m.tracks {
		if _, ok := skip[id]; !ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryCatalog) ListTracksPage(ctx context.Context, offset, limit int) ([]model.Track, error) {
	all, err := m.ListTracks(ctx)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return []model.Track{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MemoryCatalog) CountTracks(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.tracks), nil
}

func (m *MemoryCatalog) SaveArtist(ctx context.Context, artist model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.artists[artist.ID]; !ok {
		m.artists[artist.ID] = artist
	}
	return nil
}

func (m *MemoryCatalog) SaveAlbum(ctx context.Context, album model.Album) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.albums[album.ID]; !ok {
		m.albums[album.ID] = album
	}
	return nil
}

func (m *MemoryCatalog) SaveTrack(ctx context.Context, track model.Track) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.tracks[track.ID]; ok {
		return false, nil
	}
	if album, ok := m.albums[track.AlbumID]; ok {
		track.Album = &album
	}
	track.Artists = nil
	track.Markets = nil
	track.ExternalIDs = nil
	track.CreatedAt = time.Now().UTC()
	m.tracks[track.ID] = track
	return true, nil
}

func (m *MemoryCatalog) SetTrackArtists(ctx context.Context, trackID string, artistIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	t, ok := m.tracks[trackID]
	if !ok {
		return apperrors.TrackNotFound(trackID)
	}
	t.Artists = make([]model.Artist, 0, len(artistIDs))
	for _, id := range artistIDs {
		t.Artists = append(t.Artists, m.artists[id])
	}
	m.tracks[trackID] = t
	return nil
}

func (m *MemoryCatalog) SaveMarkets(ctx context.Context, trackID string, markets []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	t, ok := m.tracks[trackID]
	if !ok {
		return apperrors.TrackNotFound(trackID)
	}
	seen := make(map[string]bool, len(t.Markets))
	for _, mk := range t.Markets {
		seen[mk] = true
	}
	for _, mk := range markets {
		if !seen[mk] {
			t.Markets = append(t.Markets, mk)
			seen[mk] = true
		}
	}
	sort.Strings(t.Markets)
	m.tracks[trackID] = t
	return nil
}

func (m *MemoryCatalog) SaveExternalIDs(ctx context.Context, trackID string, ids model.ExternalIDs) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	t, ok := m.tracks[trackID]
	if !ok {
		return apperrors.TrackNotFound(trackID)
	}
	if t.ExternalIDs == nil {
		t.ExternalIDs = &ids
		m.tracks[trackID] = t
	}
	return nil
}
