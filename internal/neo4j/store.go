// Package neo4j implements the ladle Store against a Neo4j server over Bolt.
package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dukaforge/ladle/pkg/types"
)

// Cypher issued by the store. Parameter names match the original dataset
// loader so existing graphs stay compatible.
const (
	mergeRecipeCypher = `MERGE (r:Recipe {id: $id})
SET r.name = $name, r.description = $description, r.minutes = $minutes, r.nutrition = $nutrition, r.steps = $steps`

	createRecipeCypher = `CREATE (r:Recipe {id: $id, name: $name, description: $description, minutes: $minutes, nutrition: $nutrition, steps: $steps})`

	mergeIngredientCypher = `MERGE (i:Ingredient {name: $name})`

	mergeContainsCypher = `MATCH (r:Recipe {id: $recipe_id}), (i:Ingredient {name: $ingredient_name}) MERGE (r)-[:CONTAINS]->(i)`
)

// transaction is the subset of neo4j.ExplicitTransaction the store uses.
// Tests substitute a recording fake.
type transaction interface {
	Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultWithContext, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store holds one driver and one write session for the process lifetime.
// Recipe creation and ingredient attachment each run in their own explicit
// transaction.
type Store struct {
	driver  neo4j.DriverWithContext
	session neo4j.SessionWithContext
	begin   func(ctx context.Context) (transaction, error)
	legacy  bool
	log     *zap.Logger
}

// Attach connects to the store described by cfg, verifies connectivity, and
// opens a write session. Connection or authentication failures wrap
// ErrStoreConnection and happen before any row is processed.
func Attach(ctx context.Context, cfg types.Config, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	auth := neo4j.NoAuth()
	if cfg.StoreUser != "" {
		auth = neo4j.BasicAuth(cfg.StoreUser, cfg.StorePassword, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.StoreURI, auth)
	if err != nil {
		return nil, fmt.Errorf("%w: create driver for %s: %v", types.ErrStoreConnection, cfg.StoreURI, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStoreConnection, cfg.StoreURI, err)
	}

	sessionCfg := neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite}
	if cfg.Database != "" {
		sessionCfg.DatabaseName = cfg.Database
	}
	session := driver.NewSession(ctx, sessionCfg)

	s := &Store{
		driver:  driver,
		session: session,
		legacy:  cfg.LegacyCreate,
		log:     log,
	}
	s.begin = func(ctx context.Context) (transaction, error) {
		return session.BeginTransaction(ctx)
	}
	return s, nil
}

// CreateRecipe writes one Recipe node in its own transaction. List-valued
// properties are bound as native list parameters. Default semantics merge by
// id; legacy mode issues an unconditional CREATE, so calling it twice for the
// same id produces two nodes unless the server enforces a uniqueness
// constraint.
func (s *Store) CreateRecipe(ctx context.Context, recipe *types.Recipe) error {
	cypher := mergeRecipeCypher
	if s.legacy {
		cypher = createRecipeCypher
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", types.ErrStore, err)
	}

	params := map[string]any{
		"id":          recipe.ID,
		"name":        recipe.Name,
		"description": recipe.Description,
		"minutes":     recipe.Minutes,
		"nutrition":   recipe.Nutrition,
		"steps":       recipe.Steps,
	}
	if _, err := tx.Run(ctx, cypher, params); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("%w: create recipe %d: %v", types.ErrStore, recipe.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit recipe %d: %v", types.ErrStore, recipe.ID, err)
	}

	s.log.Debug("recipe node written",
		zap.Int("id", recipe.ID),
		zap.Bool("legacy_create", s.legacy))
	return nil
}

// AttachIngredients upserts the Ingredient node and the CONTAINS edge for
// each name inside one shared transaction. A failure rolls the whole
// transaction back; no partial edges for the recipe persist.
func (s *Store) AttachIngredients(ctx context.Context, recipeID int, ingredients []string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", types.ErrStore, err)
	}

	for _, name := range ingredients {
		if _, err := tx.Run(ctx, mergeIngredientCypher, map[string]any{"name": name}); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%w: merge ingredient %q: %v", types.ErrStore, name, err)
		}

		params := map[string]any{
			"recipe_id":       recipeID,
			"ingredient_name": name,
		}
		if _, err := tx.Run(ctx, mergeContainsCypher, params); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%w: merge CONTAINS for %q: %v", types.ErrStore, name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit ingredients of recipe %d: %v", types.ErrStore, recipeID, err)
	}

	s.log.Debug("ingredients attached",
		zap.Int("recipe_id", recipeID),
		zap.Int("count", len(ingredients)))
	return nil
}

// Close releases the session, then the driver.
func (s *Store) Close(ctx context.Context) error {
	if s.session != nil {
		if err := s.session.Close(ctx); err != nil {
			return fmt.Errorf("close session: %w", err)
		}
	}
	if s.driver != nil {
		if err := s.driver.Close(ctx); err != nil {
			return fmt.Errorf("close driver: %w", err)
		}
	}
	return nil
}

var _ types.Store = (*Store)(nil)
