package types

import "context"

// Store is the contract every storage backend implements. The handle is
// created once at startup and passed explicitly to every operation so that
// backends can be substituted (the SQLite store doubles for Neo4j in tests).
type Store interface {
	// CreateRecipe writes one Recipe node with all scalar and list
	// properties in its own transaction. Default semantics are upsert by
	// id; backends configured for legacy mode issue an unconditional
	// create instead, duplicating the node on re-run.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// AttachIngredients ensures an Ingredient node exists for each name and
	// a CONTAINS edge exists from the recipe to it. All upserts for one
	// call share a single transaction; on failure the whole transaction is
	// rolled back and no partial edges persist. Idempotent per ingredient.
	AttachIngredients(ctx context.Context, recipeID int, ingredients []string) error

	// Close releases the session and connection.
	Close(ctx context.Context) error
}
