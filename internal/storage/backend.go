package storage

import (
	"context"
	"encoding/json"
)

// Backend is the durable key-value contract underneath the content and
// submission stores. Read returns (nil, nil) when the key has never been
// written; a missing key is not an error. Write replaces the whole value.
type Backend interface {
	Read(ctx context.Context, key string) (json.RawMessage, error)
	Write(ctx context.Context, key string, value json.RawMessage) error
}
