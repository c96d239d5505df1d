package store

import (
	"context"
	"fmt"
	"sync"

	"nba-roster-service/internal/aggregate"
	"nba-roster-service/internal/domain"
)

// MemoryStore keeps a thread-safe frozen snapshot of the roster in memory
// and answers all catalog queries with in-memory scans. Queries are
// stateless, independent reads; the lock exists only because the HTTP server
// is concurrent, not because anything mutates after startup.
type MemoryStore struct {
	mu      sync.RWMutex
	players []domain.Player
	byID    map[string]domain.Player
	loaded  bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]domain.Player),
	}
}

// SetPlayers replaces the snapshot. Called once at startup by the seeder.
func (s *MemoryStore) SetPlayers(players []domain.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make([]domain.Player, len(players))
	copy(s.players, players)
	s.byID = make(map[string]domain.Player, len(players))
	for _, p := range players {
		s.byID[p.ID] = p
	}
	s.loaded = true
}

// ListPlayers returns a copy of the current snapshot.
func (s *MemoryStore) ListPlayers() []domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Player, len(s.players))
	copy(out, s.players)
	return out
}

// PlayerByID retrieves one row by id.
func (s *MemoryStore) PlayerByID(id string) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Players implements the catalog full-table fetch.
func (s *MemoryStore) Players(ctx context.Context) ([]domain.Player, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return s.ListPlayers(), nil
}

// Aggregate counts players per bucket for one property.
func (s *MemoryStore) Aggregate(ctx context.Context, property string) (domain.Series, error) {
	if err := s.guard(ctx); err != nil {
		return domain.Series{}, err
	}
	return aggregate.Aggregate(s.ListPlayers(), property)
}

// Filter returns the players belonging to one bucket, optionally restricted
// to a team.
func (s *MemoryStore) Filter(ctx context.Context, property, label, team string) ([]domain.Player, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return aggregate.Filter(s.ListPlayers(), property, label, aggregate.FilterOptions{Team: team})
}

// Teams returns the distinct team names.
func (s *MemoryStore) Teams(ctx context.Context) ([]string, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	return aggregate.Teams(s.ListPlayers()), nil
}

// TeamDetails rolls up one team's roster by position.
func (s *MemoryStore) TeamDetails(ctx context.Context, team string) (domain.TeamDetails, error) {
	if err := s.guard(ctx); err != nil {
		return domain.TeamDetails{}, err
	}
	return aggregate.TeamDetails(s.ListPlayers(), team), nil
}

// guard rejects queries once the context is done or before the snapshot has
// been seeded.
func (s *MemoryStore) guard(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return fmt.Errorf("%w: snapshot not seeded", domain.ErrSourceUnavailable)
	}
	return nil
}

// Ready reports whether the snapshot has been seeded.
func (s *MemoryStore) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.ErrSourceUnavailable
	}
	return nil
}

// Close implements the catalog lifecycle; the in-memory backend holds no
// external resources.
func (s *MemoryStore) Close() error { return nil }
