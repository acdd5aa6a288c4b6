package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
	"github.com/adnahmed/gaze-stars/internal/logger"
)

// Ensure StarStore implements the interface.
var _ driven.StarStore = (*StarStore)(nil)

// maxLineSize bounds a single record line during load.
const maxLineSize = 1 << 20

// StarStore persists starred-repo records as newline-delimited JSON.
type StarStore struct {
	path string
}

// NewStarStore creates a store at the given path. The file is not
// touched until a write or load pass runs.
func NewStarStore(path string) *StarStore {
	return &StarStore{path: path}
}

// Path returns the store's file path.
func (s *StarStore) Path() string {
	return s.path
}

// Begin truncates the store and opens it for appending.
func (s *StarStore) Begin() (driven.StarWriter, error) {
	f, err := os.Create(s.path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", s.path, err)
	}
	return &writer{f: f, bw: bufio.NewWriter(f)}, nil
}

// Load reads the store back into an insertion-ordered index. A missing
// file yields an empty index; malformed lines are skipped.
func (s *StarStore) Load() (*domain.RepoIndex, error) {
	ix := domain.NewRepoIndex()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ix, nil
		}
		return nil, fmt.Errorf("open store %s: %w", s.path, err)
	}
	defer f.Close()

	skipped := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var repo domain.StarredRepo
		if err := json.Unmarshal(line, &repo); err != nil || repo.FullName == "" {
			skipped++
			continue
		}
		ix.Add(&repo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}

	if skipped > 0 {
		logger.Warn("store %s: skipped %d malformed lines", s.path, skipped)
	}
	return ix, nil
}

// writer appends records to an open write pass.
type writer struct {
	f  *os.File
	bw *bufio.Writer
}

// Append durably writes one record as a JSON line.
func (w *writer) Append(repo *domain.StarredRepo) error {
	if repo == nil {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(repo)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if _, err := w.bw.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Close flushes and releases the store file.
func (w *writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("flush store: %w", err)
	}
	return w.f.Close()
}
