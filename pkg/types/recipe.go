// Package types defines the Recipe entity, the Store interface, the loader
// configuration, and the standard errors shared across the ladle backends.
package types

// Recipe is one normalized row of the input dataset. Records are transient:
// each is built from a single row, written to the store, and discarded.
type Recipe struct {
	ID          int       // Unique per input file; not re-validated.
	Name        string    // Free text.
	Description string    // Free text.
	Ingredients []string  // Decoded pseudo-list; order carries no meaning downstream.
	Minutes     int       // Duration in minutes.
	Steps       []string  // Decoded pseudo-list; order preserved.
	Nutrition   []float64 // Fixed-width vector; positions are not interpreted here.
}
