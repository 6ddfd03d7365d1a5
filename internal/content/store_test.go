package content

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio/backend/go-services/internal/storage"
)

// failingBackend simulates an unreachable storage backend.
type failingBackend struct{}

func (failingBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	return nil, errors.New("backend down")
}

func (failingBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	return errors.New("backend down")
}

// emptyDefaults lets tests assert store behavior independent of the default
// document shape.
type emptyDefaults struct{}

func (emptyDefaults) Document() Document { return Document{} }

func newFileStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewFileBackend(filepath.Join(t.TempDir(), "data")), nil)
}

func TestGetDocument_EmptyStoreServesDefaults(t *testing.T) {
	s := newFileStore(t)

	doc := s.GetDocument(context.Background())
	require.Equal(t, StaticDefaults{}.Document(), doc)

	// spot-check the literal values
	assert.Equal(t, "Hire Me", doc["avatar"]["buttonText"])
	assert.Equal(t, "Hello", doc["welcome"]["greeting"])
	assert.Equal(t, "© 2025. All rights reserved.", doc["footer"]["text"])
}

func TestGetDocument_ReadErrorServesDefaults(t *testing.T) {
	s := NewStore(failingBackend{}, nil)

	doc := s.GetDocument(context.Background())
	require.Equal(t, StaticDefaults{}.Document(), doc)
}

func TestGetDocument_DefaultsAreSwappable(t *testing.T) {
	s := NewStore(failingBackend{}, emptyDefaults{})
	require.Empty(t, s.GetDocument(context.Background()))
}

func TestUpdateSection_Validation(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	_, err := s.UpdateSection(ctx, "", Section{"title": "x"})
	require.ErrorIs(t, err, ErrBadRequest)

	_, err = s.UpdateSection(ctx, "about", nil)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestUpdateSection_FirstUpdateSeedsKnownSections(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	merged, err := s.UpdateSection(ctx, "about", Section{"title": "Me"})
	require.NoError(t, err)
	require.Equal(t, Section{"title": "Me"}, merged)

	doc := s.GetDocument(ctx)
	for _, name := range SectionNames {
		_, ok := doc[name]
		assert.True(t, ok, "section %q missing after first update", name)
	}
	assert.Equal(t, "Me", doc["about"]["title"])
}

func TestUpdateSection_ShallowMergePreservesOtherKeysAndSections(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	_, err := s.UpdateSection(ctx, "welcome", Section{"greeting": "Hi", "title": "Welcome"})
	require.NoError(t, err)
	_, err = s.UpdateSection(ctx, "stats", Section{"years": "5"})
	require.NoError(t, err)
	before := s.GetDocument(ctx)

	merged, err := s.UpdateSection(ctx, "welcome", Section{"greeting": "Hey"})
	require.NoError(t, err)

	// partial keys win, untouched keys survive
	assert.Equal(t, "Hey", merged["greeting"])
	assert.Equal(t, "Welcome", merged["title"])

	after := s.GetDocument(ctx)
	assert.Equal(t, merged, after["welcome"])
	// every other section is unchanged
	for name, sec := range before {
		if name == "welcome" {
			continue
		}
		assert.Equal(t, sec, after[name], "section %q changed unexpectedly", name)
	}
}

func TestUpdateSection_ListValuesRoundTrip(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	items := []any{map[string]any{"period": "2020-2024", "title": "Engineer", "description": "built things"}}
	_, err := s.UpdateSection(ctx, "career", Section{"label": "Career", "items": items})
	require.NoError(t, err)

	doc := s.GetDocument(ctx)
	got, ok := doc["career"]["items"].([]any)
	require.True(t, ok)
	require.Len(t, got, 1)
}

func TestUpdateSection_WriteErrorSurfaces(t *testing.T) {
	s := NewStore(failingBackend{}, nil)

	_, err := s.UpdateSection(context.Background(), "about", Section{"title": "x"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrBadRequest)
}
