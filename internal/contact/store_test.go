package contact

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio/backend/go-services/internal/storage"
)

type failingBackend struct{}

func (failingBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	return nil, errors.New("backend down")
}

func (failingBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	return errors.New("backend down")
}

func newFileStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewFileBackend(filepath.Join(t.TempDir(), "data")))
}

func TestList_EmptyStore(t *testing.T) {
	s := newFileStore(t)
	require.Empty(t, s.List(context.Background()))
}

func TestList_ReadErrorIsEmpty(t *testing.T) {
	s := NewStore(failingBackend{})
	require.Empty(t, s.List(context.Background()))
}

func TestList_NonArrayContentIsEmpty(t *testing.T) {
	b := storage.NewFileBackend(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, b.Write(context.Background(), "contact", json.RawMessage(`{"not":"an array"}`)))

	s := NewStore(b)
	require.Empty(t, s.List(context.Background()))
}

func TestAppend_ValidatesAndTrims(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	_, err := s.Append(ctx, Fields{Fullname: "  ", Email: "a@b.c", Message: "hi"})
	require.ErrorIs(t, err, ErrBadRequest)
	_, err = s.Append(ctx, Fields{Fullname: "Ann", Email: "", Message: "hi"})
	require.ErrorIs(t, err, ErrBadRequest)
	_, err = s.Append(ctx, Fields{Fullname: "Ann", Email: "a@b.c", Message: "\t\n"})
	require.ErrorIs(t, err, ErrBadRequest)

	sub, err := s.Append(ctx, Fields{Fullname: " Ann ", Email: " a@b.c ", Phone: " 123 ", Message: " hi "})
	require.NoError(t, err)
	assert.Equal(t, "Ann", sub.Fullname)
	assert.Equal(t, "a@b.c", sub.Email)
	assert.Equal(t, "123", sub.Phone)
	assert.Equal(t, "hi", sub.Message)
	assert.False(t, sub.Read)
	assert.NotEmpty(t, sub.ID)
}

func TestAppend_NewestFirst(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	// deterministic clock so ids and order are stable
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first, err := s.Append(ctx, Fields{Fullname: "Ann", Email: "a@b.c", Message: "first"})
	require.NoError(t, err)
	second, err := s.Append(ctx, Fields{Fullname: "Bob", Email: "b@b.c", Message: "second"})
	require.NoError(t, err)

	list := s.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "2025-06-01T12:00:01.000Z", list[1].Timestamp)
}

func TestDeleteByID(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	a, _ := s.Append(ctx, Fields{Fullname: "Ann", Email: "a@b.c", Message: "m1"})
	b, _ := s.Append(ctx, Fields{Fullname: "Bob", Email: "b@b.c", Message: "m2"})
	c, _ := s.Append(ctx, Fields{Fullname: "Cat", Email: "c@b.c", Message: "m3"})

	require.NoError(t, s.DeleteByID(ctx, b.ID))

	list := s.List(ctx)
	require.Len(t, list, 2)
	// relative order of the rest preserved
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestDeleteByID_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	_, err := s.Append(ctx, Fields{Fullname: "Ann", Email: "a@b.c", Message: "m1"})
	require.NoError(t, err)
	before := s.List(ctx)

	err = s.DeleteByID(ctx, "never-issued")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, before, s.List(ctx))
}

func TestAppend_WriteErrorSurfaces(t *testing.T) {
	s := NewStore(failingBackend{})
	_, err := s.Append(context.Background(), Fields{Fullname: "Ann", Email: "a@b.c", Message: "hi"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrBadRequest)
}
