package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/flexcms/flexcms"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ flexcms.RunCache = (*RunCache)(nil)

// RunCache implements flexcms.RunCache using SQLite. Every cache
// instance represents one batch run; records written through it carry
// the run's id so a run's work is traceable after the fact.
type RunCache struct {
	db    *DB
	runID string
}

// NewRunCache creates a RunCache with a fresh run id.
func NewRunCache(db *DB) *RunCache {
	return &RunCache{db: db, runID: uuid.New().String()}
}

// RunID returns the cache's run id.
func (c *RunCache) RunID() string {
	return c.runID
}

// Unchanged reports whether the slug was last processed with the same
// input hash.
func (c *RunCache) Unchanged(ctx context.Context, slug string, inputHash uint64) (bool, error) {
	var stored string
	err := c.db.QueryRowContext(ctx, `
		SELECT input_hash FROM extractions WHERE slug = ?
	`, slug).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == hashHex(inputHash), nil
}

// Record stores the hashes for a processed slug, replacing any earlier
// record.
func (c *RunCache) Record(ctx context.Context, slug string, inputHash, outputHash uint64) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO extractions (slug, input_hash, output_hash, run_id, processed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			input_hash = excluded.input_hash,
			output_hash = excluded.output_hash,
			run_id = excluded.run_id,
			processed_at = excluded.processed_at
	`, slug, hashHex(inputHash), hashHex(outputHash), c.runID,
		time.Now().UTC().Format(time.RFC3339))
	return err
}

// hashHex renders a 64-bit hash as a fixed-width hex string.
func hashHex(h uint64) string {
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
