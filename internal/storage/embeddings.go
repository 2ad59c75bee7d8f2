package storage

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

// timeFormat matches SQLite's datetime('now') output (UTC).
const timeFormat = "2006-01-02 15:04:05"

// TTL bounds how long a cached vector is served. Zero or negative disables
// expiry.
var defaultTTL = 7 * 24 * time.Hour

// EmbeddingStore is a Store with a TTL applied on reads.
type EmbeddingStore struct {
	*Store
	ttl time.Duration
}

// NewEmbeddingStore wraps a Store with the given TTL. A non-positive ttl
// falls back to one week.
func NewEmbeddingStore(store *Store, ttl time.Duration) *EmbeddingStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &EmbeddingStore{Store: store, ttl: ttl}
}

// GetEmbedding returns the cached vector for the given prefix, or
// ErrNotFound when missing or expired. Expired rows are deleted on read.
func (s *EmbeddingStore) GetEmbedding(ctx context.Context, prefix string) ([]float64, error) {
	var (
		dims      int
		blob      []byte
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT dims, vector, created_at FROM embeddings WHERE prefix = ? AND model = ?`,
		prefix, s.model,
	).Scan(&dims, &blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting embedding: %w", err)
	}

	created, err := time.Parse(timeFormat, createdAt)
	if err == nil && time.Since(created.UTC()) > s.ttl {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM embeddings WHERE prefix = ? AND model = ?`, prefix, s.model,
		); err != nil {
			return nil, fmt.Errorf("deleting expired embedding: %w", err)
		}
		return nil, ErrNotFound
	}

	vec, err := decodeVector(blob, dims)
	if err != nil {
		return nil, fmt.Errorf("decoding embedding for %q: %w", prefix, err)
	}
	return vec, nil
}

// PutEmbedding stores (or refreshes) the vector for the given prefix.
func (s *EmbeddingStore) PutEmbedding(ctx context.Context, prefix string, vector []float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO embeddings (prefix, model, dims, vector)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(prefix, model) DO UPDATE SET
			dims       = excluded.dims,
			vector     = excluded.vector,
			created_at = datetime('now')`,
		prefix, s.model, len(vector), encodeVector(vector),
	)
	if err != nil {
		return fmt.Errorf("putting embedding: %w", err)
	}
	return nil
}

// encodeVector packs a vector as little-endian float64 bytes.
func encodeVector(vec []float64) []byte {
	buf := make([]byte, 8*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// decodeVector unpacks little-endian float64 bytes, validating the stored
// dimension count against the blob length.
func decodeVector(blob []byte, dims int) ([]float64, error) {
	if dims < 0 || len(blob) != 8*dims {
		return nil, fmt.Errorf("blob length %d does not match %d dimensions", len(blob), dims)
	}
	vec := make([]float64, dims)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[i*8:]))
	}
	return vec, nil
}
