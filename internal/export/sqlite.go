package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// schema is executed on every open; IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS regions (
    name              TEXT PRIMARY KEY,
    position          INTEGER NOT NULL,
    travel_cost       INTEGER NOT NULL DEFAULT 0,
    stay_cost_per_day INTEGER NOT NULL DEFAULT 0,
    food_cost_per_day INTEGER NOT NULL DEFAULT 0,
    weather_temp      INTEGER NOT NULL DEFAULT 0,
    weather_condition TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS places (
    district     TEXT NOT NULL REFERENCES regions(name),
    position     INTEGER NOT NULL,
    name         TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    rating       REAL NOT NULL,
    review_count INTEGER NOT NULL,
    badge        TEXT NOT NULL DEFAULT '',
    entry_fee    TEXT NOT NULL DEFAULT '',
    duration     TEXT NOT NULL DEFAULT '',
    best_time    TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (district, name)
);

CREATE TABLE IF NOT EXISTS place_categories (
    district TEXT NOT NULL,
    name     TEXT NOT NULL,
    category TEXT NOT NULL,
    PRIMARY KEY (district, name, category)
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Store is a catalog export held in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path and ensures the schema
// exists.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("export: open database: %w", err)
	}
	// SQLite has a single writer; one connection keeps PRAGMAs consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("export: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("export: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Write replaces the stored catalog with cat in a single transaction.
func (s *Store) Write(ctx context.Context, cat *catalog.Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, table := range []string{"place_categories", "places", "regions", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("export: clear %s: %w", table, err)
		}
	}

	const metaQ = `INSERT INTO meta (key, value) VALUES (?, ?)`
	for k, v := range map[string]string{"name": cat.Name(), "default_region": cat.DefaultRegion()} {
		if _, err := tx.ExecContext(ctx, metaQ, k, v); err != nil {
			return fmt.Errorf("export: insert meta %q: %w", k, err)
		}
	}

	regionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO regions (name, position, travel_cost, stay_cost_per_day, food_cost_per_day, weather_temp, weather_condition)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export: prepare region insert: %w", err)
	}
	defer regionStmt.Close()

	placeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO places (district, position, name, description, rating, review_count, badge, entry_fee, duration, best_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export: prepare place insert: %w", err)
	}
	defer placeStmt.Close()

	catStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO place_categories (district, name, category) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export: prepare category insert: %w", err)
	}
	defer catStmt.Close()

	for i, r := range cat.Regions() {
		if _, err := regionStmt.ExecContext(ctx, r.Name, i, r.TravelCost, r.StayCostPerDay,
			r.FoodCostPerDay, r.Weather.Temp, r.Weather.Condition); err != nil {
			return fmt.Errorf("export: insert region %q: %w", r.Name, err)
		}
		for j, p := range r.Places {
			if _, err := placeStmt.ExecContext(ctx, r.Name, j, p.Name, p.Description, p.Rating,
				p.ReviewCount, p.Badge, p.EntryFee, p.Duration, p.BestTime); err != nil {
				return fmt.Errorf("export: insert place %q: %w", p.Key(), err)
			}
			for _, c := range p.Category {
				if _, err := catStmt.ExecContext(ctx, r.Name, p.Name, string(c)); err != nil {
					return fmt.Errorf("export: insert category %q for %q: %w", c, p.Key(), err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit: %w", err)
	}
	return nil
}

// Counts returns the number of stored regions and places.
func (s *Store) Counts(ctx context.Context) (regions, places int, err error) {
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM regions").Scan(&regions); err != nil {
		return 0, 0, fmt.Errorf("export: count regions: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM places").Scan(&places); err != nil {
		return 0, 0, fmt.Errorf("export: count places: %w", err)
	}
	return regions, places, nil
}

// ReadFile rebuilds a catalog file from the stored rows. Only the columns
// the schema keeps survive; the rest take their zero values and are
// re-derived when the file is loaded.
func (s *Store) ReadFile(ctx context.Context) (catalog.File, error) {
	var f catalog.File
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM meta")
	if err != nil {
		return f, fmt.Errorf("export: read meta: %w", err)
	}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			rows.Close()
			return f, fmt.Errorf("export: scan meta: %w", err)
		}
		switch k {
		case "name":
			f.Name = v
		case "default_region":
			f.DefaultRegion = v
		}
	}
	rows.Close()

	categories, err := s.categories(ctx)
	if err != nil {
		return f, err
	}

	rrows, err := s.db.QueryContext(ctx, `
		SELECT name, travel_cost, stay_cost_per_day, food_cost_per_day, weather_temp, weather_condition
		FROM regions ORDER BY position`)
	if err != nil {
		return f, fmt.Errorf("export: read regions: %w", err)
	}
	index := map[string]int{}
	for rrows.Next() {
		var r catalog.RawRegion
		if err := rrows.Scan(&r.Name, &r.TravelCost, &r.StayCostPerDay, &r.FoodCostPerDay,
			&r.Weather.Temp, &r.Weather.Condition); err != nil {
			rrows.Close()
			return f, fmt.Errorf("export: scan region: %w", err)
		}
		index[r.Name] = len(f.Regions)
		f.Regions = append(f.Regions, r)
	}
	rrows.Close()

	prows, err := s.db.QueryContext(ctx, `
		SELECT district, name, description, rating, review_count, badge, entry_fee, duration, best_time
		FROM places ORDER BY district, position`)
	if err != nil {
		return f, fmt.Errorf("export: read places: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var district string
		var p catalog.RawPlace
		if err := prows.Scan(&district, &p.Name, &p.Description, &p.Rating, &p.ReviewCount,
			&p.Badge, &p.EntryFee, &p.Duration, &p.BestTime); err != nil {
			return f, fmt.Errorf("export: scan place: %w", err)
		}
		i, ok := index[district]
		if !ok {
			return f, fmt.Errorf("export: place %q references missing region %q", p.Name, district)
		}
		p.Category = categories[district+"/"+p.Name]
		f.Regions[i].Places = append(f.Regions[i].Places, p)
	}
	if err := prows.Err(); err != nil {
		return f, fmt.Errorf("export: iterate places: %w", err)
	}
	return f, nil
}

// categories maps place keys to their tags in vocabulary order.
func (s *Store) categories(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT district, name, category FROM place_categories")
	if err != nil {
		return nil, fmt.Errorf("export: read categories: %w", err)
	}
	defer rows.Close()

	out := map[string][]string{}
	for rows.Next() {
		var district, name, c string
		if err := rows.Scan(&district, &name, &c); err != nil {
			return nil, fmt.Errorf("export: scan category: %w", err)
		}
		key := district + "/" + name
		out[key] = append(out[key], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export: iterate categories: %w", err)
	}
	for key, tags := range out {
		out[key] = inVocabularyOrder(tags)
	}
	return out, nil
}

func inVocabularyOrder(tags []string) []string {
	var out []string
	for _, v := range catalog.Vocabulary() {
		for _, t := range tags {
			if strings.EqualFold(t, string(v)) {
				out = append(out, string(v))
				break
			}
		}
	}
	return out
}
