package contact

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/devfolio/devfolio/backend/go-services/internal/storage"
	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

const storageKey = "contact"

// timestampLayout matches the ISO-8601 millisecond form the dashboard sorts on.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrBadRequest is returned when fullname, email or message is missing.
	ErrBadRequest = errors.New("fullname, email and message are required")
	// ErrNotFound is returned when no submission carries the requested id.
	ErrNotFound = errors.New("submission not found")
)

// Store persists contact-form submissions as a single JSON array, newest
// first. Append and delete are read-modify-write cycles serialized behind the
// mutex.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend

	// now is swappable in tests so ids and timestamps are deterministic
	now func() time.Time
}

func NewStore(b storage.Backend) *Store {
	return &Store{backend: b, now: time.Now}
}

// List returns all submissions in stored order (newest first). Absent or
// unreadable content yields an empty list, never an error.
func (s *Store) List(ctx context.Context) []Submission {
	return s.load(ctx)
}

// Append validates and stores one submission at the head of the array and
// returns the created entry.
func (s *Store) Append(ctx context.Context, f Fields) (*Submission, error) {
	f.Fullname = strings.TrimSpace(f.Fullname)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
	if f.Fullname == "" || f.Email == "" || f.Message == "" {
		return nil, ErrBadRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sub := Submission{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Fullname:  f.Fullname,
		Email:     f.Email,
		Phone:     f.Phone,
		Message:   f.Message,
		Timestamp: now.UTC().Format(timestampLayout),
		Read:      false,
	}

	subs := append([]Submission{sub}, s.load(ctx)...)
	if err := s.write(ctx, subs); err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteByID removes the submission with the given id, preserving the
// relative order of the rest.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.load(ctx)
	kept := subs[:0:0]
	for _, sub := range subs {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	if len(kept) == len(subs) {
		return ErrNotFound
	}
	return s.write(ctx, kept)
}

func (s *Store) load(ctx context.Context) []Submission {
	raw, err := s.backend.Read(ctx, storageKey)
	if err != nil {
		logger.Errorf("contact read failed, treating as empty: %v", err)
		metrics.StorageErrors.WithLabelValues("contact_read").Inc()
		return []Submission{}
	}
	if raw == nil {
		return []Submission{}
	}
	var subs []Submission
	if err := json.Unmarshal(raw, &subs); err != nil {
		// non-array or corrupt content counts as empty
		logger.Warnf("contact store held non-array content, treating as empty: %v", err)
		return []Submission{}
	}
	return subs
}

func (s *Store) write(ctx context.Context, subs []Submission) error {
	raw, err := json.Marshal(subs)
	if err != nil {
		return err
	}
	if err := s.backend.Write(ctx, storageKey, raw); err != nil {
		metrics.StorageErrors.WithLabelValues("contact_write").Inc()
		return err
	}
	return nil
}
