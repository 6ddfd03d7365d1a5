package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOBackend stores one JSON object per key in a bucket.
type MinIOBackend struct {
	client *minio.Client
	bucket string
}

// MinIOOptions holds MinIO connection settings.
type MinIOOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// NewMinIOBackend creates a MinIO-backed storage client and ensures the
// bucket exists.
func NewMinIOBackend(opts MinIOOptions) (*MinIOBackend, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint missing")
	}
	mc, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	b := &MinIOBackend{client: mc, bucket: opts.Bucket}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, b.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return b, nil
}

func (b *MinIOBackend) object(key string) string {
	return key + ".json"
}

func (b *MinIOBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, b.object(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (b *MinIOBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	r := bytes.NewReader(value)
	_, err := b.client.PutObject(ctx, b.bucket, b.object(key), r, int64(len(value)), minio.PutObjectOptions{ContentType: "application/json"})
	return err
}
