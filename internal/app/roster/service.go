// Package roster coordinates catalog queries for the HTTP layer: bucket
// aggregation, bucket filtering, the derived table view and team rollups.
package roster

import (
	"context"
	"time"

	"nba-roster-service/internal/domain"
	"nba-roster-service/internal/view"
)

// Catalog is the contract a player source must satisfy. Both the seeded
// in-memory store and the MySQL store implement it.
type Catalog interface {
	Players(ctx context.Context) ([]domain.Player, error)
	Aggregate(ctx context.Context, property string) (domain.Series, error)
	Filter(ctx context.Context, property, label, team string) ([]domain.Player, error)
	Teams(ctx context.Context) ([]string, error)
	TeamDetails(ctx context.Context, team string) (domain.TeamDetails, error)
	Ready(ctx context.Context) error
	Close() error
}

// QueryRecorder observes catalog query outcomes. The metrics recorder
// satisfies it; tests use a stub.
type QueryRecorder interface {
	RecordQuery(kind string, duration time.Duration, err error)
}

// Service answers dashboard queries against a Catalog.
type Service struct {
	catalog Catalog
	metrics QueryRecorder
}

// NewService constructs a Service. A nil recorder disables instrumentation.
func NewService(catalog Catalog, metrics QueryRecorder) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{catalog: catalog, metrics: metrics}
}

// Stats returns the per-bucket player counts for one property.
func (s *Service) Stats(ctx context.Context, property string) (domain.Series, error) {
	start := time.Now()
	series, err := s.catalog.Aggregate(ctx, property)
	s.metrics.RecordQuery("stats", time.Since(start), err)
	return series, err
}

// Filtered returns the players in one bucket, optionally restricted to a team.
func (s *Service) Filtered(ctx context.Context, property, label, team string) ([]domain.Player, error) {
	start := time.Now()
	players, err := s.catalog.Filter(ctx, property, label, team)
	s.metrics.RecordQuery("filter", time.Since(start), err)
	return players, err
}

// All returns the full roster.
func (s *Service) All(ctx context.Context) ([]domain.Player, error) {
	start := time.Now()
	players, err := s.catalog.Players(ctx)
	s.metrics.RecordQuery("players", time.Since(start), err)
	return players, err
}

// Page derives a searched, sorted and paginated slice of the roster.
func (s *Service) Page(ctx context.Context, opts view.Options) (view.Page, error) {
	start := time.Now()
	players, err := s.catalog.Players(ctx)
	if err != nil {
		s.metrics.RecordQuery("view", time.Since(start), err)
		return view.Page{}, err
	}
	page := view.Derive(players, opts)
	s.metrics.RecordQuery("view", time.Since(start), nil)
	return page, nil
}

// Teams returns the distinct team names.
func (s *Service) Teams(ctx context.Context) ([]string, error) {
	start := time.Now()
	teams, err := s.catalog.Teams(ctx)
	s.metrics.RecordQuery("teams", time.Since(start), err)
	return teams, err
}

// TeamDetails returns the per-position rollup for one team.
func (s *Service) TeamDetails(ctx context.Context, team string) (domain.TeamDetails, error) {
	start := time.Now()
	details, err := s.catalog.TeamDetails(ctx, team)
	s.metrics.RecordQuery("team_details", time.Since(start), err)
	return details, err
}

// Ready reports whether the catalog can serve queries.
func (s *Service) Ready(ctx context.Context) error {
	return s.catalog.Ready(ctx)
}

type nopRecorder struct{}

func (nopRecorder) RecordQuery(string, time.Duration, error) {}
