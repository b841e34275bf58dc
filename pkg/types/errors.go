package types

import "errors"

// Standard errors. Call sites wrap these with fmt.Errorf("...: %w", ...) to
// attach row positions, field names, and backend detail; callers match with
// errors.Is. Every one of them is fatal: the run aborts on first occurrence
// and rows already committed stay committed.
var (
	// ErrMalformedRow reports a scalar field that fails integer decoding.
	ErrMalformedRow = errors.New("malformed row")

	// ErrMalformedNumber reports a nutrition entry that is not a decimal number.
	ErrMalformedNumber = errors.New("malformed numeric field")

	// ErrMissingColumn reports a required column absent from the header row.
	ErrMissingColumn = errors.New("missing column")

	// ErrStoreConnection reports a failure to connect or authenticate to the
	// store before any row is processed.
	ErrStoreConnection = errors.New("store connection failed")

	// ErrStore reports a query or commit failure mid-run.
	ErrStore = errors.New("store operation failed")
)
