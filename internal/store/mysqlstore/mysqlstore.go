// Package mysqlstore is the SQL-backed catalog: the same queries the
// in-memory store answers by scanning, answered here with GROUP BY/CASE
// aggregation against a MySQL players table. Results are required to match
// the in-memory backend exactly, so grouping keys use the shared
// normalization rule (trimmed, case-insensitive) and final ordering reuses
// the same natural comparator.
package mysqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nba-roster-service/internal/buckets"
	"nba-roster-service/internal/domain"
	"nba-roster-service/internal/sortutil"
)

// Config holds the connection settings for the players database.
type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	MigrationsPath string
}

// DSN renders the go-sql-driver connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Store is a read-only catalog over the players table. The handle is
// constructed once at startup and injected; there is no package-level
// connection state.
type Store struct {
	db *gorm.DB
}

// Open connects, verifies the connection and applies pending migrations.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := gorm.Open(gormmysql.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	if cfg.MigrationsPath != "" {
		if err := runMigrations(sqlDB, cfg.MigrationsPath); err != nil {
			return nil, err
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ready pings the database.
func (s *Store) Ready(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return sourceErr(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sourceErr(err)
	}
	return nil
}

type labelCount struct {
	Label string
	Count int
}

// Aggregate counts players per bucket for one property via GROUP BY.
func (s *Store) Aggregate(ctx context.Context, property string) (domain.Series, error) {
	property, ok := domain.NormalizeProperty(property)
	if !ok {
		return domain.Series{}, domain.UnknownPropertyError(property)
	}

	if property == domain.PropertySalary {
		return s.aggregateSalary(ctx)
	}

	query, args := categoricalAggregateSQL(property)
	var rows []labelCount
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return domain.Series{}, sourceErr(err)
	}

	sort.Slice(rows, func(i, j int) bool { return sortutil.NaturalLess(rows[i].Label, rows[j].Label) })

	series := domain.Series{Kind: domain.SeriesCategorical, Property: property}
	for _, row := range rows {
		series.Labels = append(series.Labels, row.Label)
		series.Data = append(series.Data, row.Count)
	}
	return series, nil
}

func (s *Store) aggregateSalary(ctx context.Context) (domain.Series, error) {
	query, args := salaryAggregateSQL()
	var rows []labelCount
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return domain.Series{}, sourceErr(err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[buckets.Normalize(row.Label)] = row.Count
	}

	series := domain.Series{Kind: domain.SeriesBucketed, Property: domain.PropertySalary}
	for _, r := range buckets.SalaryRanges() {
		if n, ok := counts[buckets.Normalize(r.Label)]; ok {
			series.Labels = append(series.Labels, r.Label)
			series.Data = append(series.Data, n)
		}
	}
	return series, nil
}

// Filter returns the players belonging to one bucket, ordered by name.
func (s *Store) Filter(ctx context.Context, property, label, team string) ([]domain.Player, error) {
	property, ok := domain.NormalizeProperty(property)
	if !ok {
		return nil, domain.UnknownPropertyError(property)
	}

	var (
		query string
		args  []any
	)
	if property == domain.PropertySalary {
		r, known := buckets.RangeForLabel(label)
		if !known {
			return []domain.Player{}, nil
		}
		query, args = salaryFilterSQL(r, team)
	} else {
		query, args = categoricalFilterSQL(property, label, team)
	}

	var rows []playerRow
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, sourceErr(err)
	}

	players := make([]domain.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, row.toDomain())
	}
	sort.SliceStable(players, func(i, j int) bool {
		return sortutil.NaturalLess(players[i].Name, players[j].Name)
	})
	return players, nil
}

// Players returns the full table.
func (s *Store) Players(ctx context.Context) ([]domain.Player, error) {
	var rows []playerRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT id, name, team, number, position, age, height, weight, college, salary FROM players`).
		Scan(&rows).Error
	if err != nil {
		return nil, sourceErr(err)
	}

	players := make([]domain.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, row.toDomain())
	}
	return players, nil
}

// Teams returns the distinct team names in natural order.
func (s *Store) Teams(ctx context.Context) ([]string, error) {
	var teams []string
	err := s.db.WithContext(ctx).
		Raw(`SELECT MIN(TRIM(team)) AS team
		     FROM players
		     WHERE team IS NOT NULL AND TRIM(team) <> ''
		     GROUP BY LOWER(TRIM(team))`).
		Scan(&teams).Error
	if err != nil {
		return nil, sourceErr(err)
	}
	sort.Slice(teams, func(i, j int) bool { return sortutil.NaturalLess(teams[i], teams[j]) })
	return teams, nil
}

type positionRow struct {
	Position      string
	PlayerCount   int
	AverageSalary *float64
	AverageAge    *float64
}

// TeamDetails rolls up one team's roster by position. AVG skips NULLs on its
// own, which matches the in-memory rollup skipping unset values.
func (s *Store) TeamDetails(ctx context.Context, team string) (domain.TeamDetails, error) {
	var rows []positionRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT MIN(t.label) AS position,
		            COUNT(*) AS player_count,
		            AVG(t.salary) AS average_salary,
		            AVG(t.age) AS average_age
		     FROM (SELECT CASE WHEN position IS NULL OR TRIM(position) = '' THEN ? ELSE TRIM(position) END AS label,
		                  salary,
		                  age
		           FROM players
		           WHERE LOWER(TRIM(team)) = LOWER(TRIM(?))) t
		     GROUP BY LOWER(t.label)`,
			buckets.SentinelUnspecified, team).
		Scan(&rows).Error
	if err != nil {
		return domain.TeamDetails{}, sourceErr(err)
	}

	sort.Slice(rows, func(i, j int) bool { return sortutil.NaturalLess(rows[i].Position, rows[j].Position) })

	details := domain.TeamDetails{Team: team, Stats: make([]domain.PositionStats, 0, len(rows))}
	for _, row := range rows {
		details.Stats = append(details.Stats, domain.PositionStats{
			Position:      row.Position,
			PlayerCount:   row.PlayerCount,
			AverageSalary: row.AverageSalary,
			AverageAge:    row.AverageAge,
		})
	}
	return details, nil
}

// playerRow is the scan target for SELECTs over the players table. Nullable
// columns scan through sql.Null* so NULL survives to the wire contract.
type playerRow struct {
	ID       int64
	Name     string
	Team     sql.NullString
	Number   sql.NullString
	Position sql.NullString
	Age      sql.NullInt64
	Height   sql.NullString
	Weight   sql.NullFloat64
	College  sql.NullString
	Salary   sql.NullFloat64
}

func (r playerRow) toDomain() domain.Player {
	p := domain.Player{
		ID:       strconv.FormatInt(r.ID, 10),
		Name:     r.Name,
		Team:     r.Team.String,
		Number:   r.Number.String,
		Position: r.Position.String,
		Height:   r.Height.String,
	}
	if r.Age.Valid {
		p.Age = int(r.Age.Int64)
	}
	if r.Weight.Valid {
		p.Weight = r.Weight.Float64
	}
	if r.College.Valid && r.College.String != "" {
		college := r.College.String
		p.College = &college
	}
	if r.Salary.Valid {
		salary := r.Salary.Float64
		p.Salary = &salary
	}
	return p
}

func sourceErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
}
