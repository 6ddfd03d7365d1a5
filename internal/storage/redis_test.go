package storage

import (
	"context"
	"encoding/json"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisBackend_ReadWrite(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	b := NewRedisBackend(client, "test:")

	ctx := context.Background()

	got, err := b.Read(ctx, "content")
	require.NoError(t, err)
	require.Nil(t, got)

	val := json.RawMessage(`{"footer":{"text":"hi"}}`)
	require.NoError(t, b.Write(ctx, "content", val))

	got, err = b.Read(ctx, "content")
	require.NoError(t, err)
	require.JSONEq(t, string(val), string(got))

	// overwrite replaces the whole value
	require.NoError(t, b.Write(ctx, "content", json.RawMessage(`{}`)))
	got, err = b.Read(ctx, "content")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(got))
}

func TestRedisBackend_DefaultPrefix(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	b := NewRedisBackend(client, "")

	require.NoError(t, b.Write(context.Background(), "contact", json.RawMessage(`[]`)))
	require.True(t, m.Exists("devfolio:contact"))
}
