package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Provider is the query-layer boundary: it returns the raw rows of a logical
// dataset, in source order. Implementations own authentication, caching and
// transport; the reconciliation core only ever sees the returned records.
type Provider interface {
	Fetch(ctx context.Context, dataset string) ([]RawRecord, error)
}

// Store is a file-backed Provider reading one JSONL file per logical dataset
// from a base directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Fetch reads <dir>/<dataset>.jsonl and returns one RawRecord per line.
// Lines that are not valid JSON objects are skipped with a warning; a missing
// file is an error because the caller asked for a dataset that does not exist.
func (s *Store) Fetch(ctx context.Context, dataset string) ([]RawRecord, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s.jsonl", dataset))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", dataset, err)
	}
	defer file.Close()

	var records []RawRecord
	skipped := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec RawRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			skipped++
			log.Warn().Err(err).Str("dataset", dataset).Msg("Skipping invalid JSON line in dataset")
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset %q: %w", dataset, err)
	}

	log.Info().Str("dataset", dataset).Int("count", len(records)).Int("skipped", skipped).Msg("Loaded dataset")
	return records, nil
}
