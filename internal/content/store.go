package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/devfolio/devfolio/backend/go-services/internal/storage"
	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

// storageKey is the single key holding the whole document.
const storageKey = "content"

var (
	// ErrBadRequest is returned when section name or data is missing.
	ErrBadRequest = errors.New("section and data are required")
)

// Store exposes the content document over a storage backend. Section updates
// are whole-document read-modify-write cycles; the mutex serializes them so
// two concurrent updates through this process cannot drop each other.
type Store struct {
	mu       sync.Mutex
	backend  storage.Backend
	defaults Defaults
}

func NewStore(b storage.Backend, d Defaults) *Store {
	if d == nil {
		d = StaticDefaults{}
	}
	return &Store{backend: b, defaults: d}
}

// GetDocument returns the stored document, or the default document when
// nothing is stored. Read failures are treated as "no content": logged,
// counted, and substituted with defaults rather than surfaced.
func (s *Store) GetDocument(ctx context.Context) Document {
	raw, err := s.backend.Read(ctx, storageKey)
	if err != nil {
		logger.Errorf("content read failed, serving defaults: %v", err)
		metrics.StorageErrors.WithLabelValues("content_read").Inc()
		return s.defaults.Document()
	}
	if raw == nil {
		return s.defaults.Document()
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		logger.Errorf("content unmarshal failed, serving defaults: %v", err)
		metrics.StorageErrors.WithLabelValues("content_decode").Inc()
		return s.defaults.Document()
	}
	return doc
}

// UpdateSection shallow-merges partial into the named section and writes the
// whole document back, returning the merged record. Keys present in partial
// overwrite; keys absent from partial are preserved. A store that has never
// been written is seeded with one empty record per known section first.
func (s *Store) UpdateSection(ctx context.Context, name string, partial Section) (Section, error) {
	if name == "" || len(partial) == 0 {
		return nil, ErrBadRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.current(ctx)

	merged := Section{}
	for k, v := range doc[name] {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	doc[name] = merged

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := s.backend.Write(ctx, storageKey, raw); err != nil {
		metrics.StorageErrors.WithLabelValues("content_write").Inc()
		return nil, err
	}
	return merged, nil
}

// current reads the stored document for an update cycle. Absent content and
// read errors both yield a freshly seeded document; unlike GetDocument the
// defaults are NOT substituted here, because an update must not persist the
// presentation fallback.
func (s *Store) current(ctx context.Context) Document {
	raw, err := s.backend.Read(ctx, storageKey)
	if err != nil {
		logger.Warnf("content read failed before update, starting from empty document: %v", err)
		metrics.StorageErrors.WithLabelValues("content_read").Inc()
		return seeded()
	}
	if raw == nil {
		return seeded()
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil || len(doc) == 0 {
		return seeded()
	}
	return doc
}

func seeded() Document {
	doc := Document{}
	for _, name := range SectionNames {
		doc[name] = Section{}
	}
	return doc
}
