// Package sqlite implements the ladle Store on an embedded SQLite file. It
// mirrors the graph semantics of the Neo4j backend: recipe upsert (or legacy
// unconditional insert), ingredient rows keyed by exact name, and contains
// edges keyed by (recipe_id, ingredient_name) with insert-or-ignore giving
// merge semantics. It doubles as the in-process store for tests and offline
// runs.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/ladle/pkg/types"
)

// dbFileName is the database file created inside DataDir.
const dbFileName = "ladle.db"

// Store implements types.Store on a SQLite database.
type Store struct {
	db     *sql.DB
	legacy bool
}

// Attach creates DataDir if needed, opens (or creates) the database file, and
// ensures the schema exists. The database is not truncated: re-running a load
// against the same file exercises the same merge semantics as a live graph.
func Attach(cfg types.Config) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", types.ErrStoreConnection, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", types.ErrStoreConnection, err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: init schema: %v", types.ErrStoreConnection, err)
		}
	}

	return &Store{db: db, legacy: cfg.LegacyCreate}, nil
}

// CreateRecipe writes one recipe row in its own transaction. Default
// semantics update the existing row for the id, inserting only if none
// exists; legacy mode always inserts, so re-running a load duplicates rows.
func (s *Store) CreateRecipe(ctx context.Context, recipe *types.Recipe) error {
	nutrition, err := json.Marshal(recipe.Nutrition)
	if err != nil {
		return fmt.Errorf("%w: encode nutrition: %v", types.ErrStore, err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("%w: encode steps: %v", types.ErrStore, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", types.ErrStore, err)
	}
	defer tx.Rollback()

	insert := func() error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recipes (id, name, description, minutes, nutrition, steps) VALUES (?, ?, ?, ?, ?, ?)`,
			recipe.ID, recipe.Name, recipe.Description, recipe.Minutes, string(nutrition), string(steps))
		return err
	}

	if s.legacy {
		if err := insert(); err != nil {
			return fmt.Errorf("%w: create recipe %d: %v", types.ErrStore, recipe.ID, err)
		}
	} else {
		res, err := tx.ExecContext(ctx,
			`UPDATE recipes SET name = ?, description = ?, minutes = ?, nutrition = ?, steps = ? WHERE id = ?`,
			recipe.Name, recipe.Description, recipe.Minutes, string(nutrition), string(steps), recipe.ID)
		if err != nil {
			return fmt.Errorf("%w: merge recipe %d: %v", types.ErrStore, recipe.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: merge recipe %d: %v", types.ErrStore, recipe.ID, err)
		}
		if n == 0 {
			if err := insert(); err != nil {
				return fmt.Errorf("%w: merge recipe %d: %v", types.ErrStore, recipe.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit recipe %d: %v", types.ErrStore, recipe.ID, err)
	}
	return nil
}

// AttachIngredients upserts the ingredient row and the contains edge for each
// name inside one shared transaction. Insert-or-ignore makes both steps
// idempotent per ingredient.
func (s *Store) AttachIngredients(ctx context.Context, recipeID int, ingredients []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", types.ErrStore, err)
	}
	defer tx.Rollback()

	for _, name := range ingredients {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO ingredients (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("%w: merge ingredient %q: %v", types.ErrStore, name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO contains (recipe_id, ingredient_name) VALUES (?, ?)`,
			recipeID, name); err != nil {
			return fmt.Errorf("%w: merge contains for %q: %v", types.ErrStore, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit ingredients of recipe %d: %v", types.ErrStore, recipeID, err)
	}
	return nil
}

// GetRecipes returns every stored recipe row with the given id. More than one
// result means the store was loaded in legacy create mode.
func (s *Store) GetRecipes(ctx context.Context, id int) ([]types.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, minutes, nutrition, steps FROM recipes WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("%w: query recipes: %v", types.ErrStore, err)
	}
	defer rows.Close()

	var recipes []types.Recipe
	for rows.Next() {
		var r types.Recipe
		var nutrition, steps string
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Minutes, &nutrition, &steps); err != nil {
			return nil, fmt.Errorf("%w: scan recipe: %v", types.ErrStore, err)
		}
		if err := json.Unmarshal([]byte(nutrition), &r.Nutrition); err != nil {
			return nil, fmt.Errorf("%w: decode nutrition of %d: %v", types.ErrStore, r.ID, err)
		}
		if err := json.Unmarshal([]byte(steps), &r.Steps); err != nil {
			return nil, fmt.Errorf("%w: decode steps of %d: %v", types.ErrStore, r.ID, err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate recipes: %v", types.ErrStore, err)
	}
	return recipes, nil
}

// ListIngredients returns every stored ingredient name in sorted order.
func (s *Store) ListIngredients(ctx context.Context) ([]string, error) {
	return s.queryStrings(ctx, `SELECT name FROM ingredients ORDER BY name`)
}

// ListContains returns the ingredient names the given recipe contains, in
// sorted order.
func (s *Store) ListContains(ctx context.Context, recipeID int) ([]string, error) {
	return s.queryStrings(ctx,
		`SELECT ingredient_name FROM contains WHERE recipe_id = ? ORDER BY ingredient_name`, recipeID)
}

func (s *Store) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrStore, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	return out, nil
}

// Close closes the database.
func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

var _ types.Store = (*Store)(nil)
