package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Publisher uploads finished reconciliation reports under a fixed key prefix.
type Publisher struct {
	client Client
	bucket string
	prefix string
}

// NewPublisher creates a publisher for the given bucket and prefix.
func NewPublisher(client Client, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Key returns the object key for a report name.
func (p *Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Publish ensures the bucket exists and stores data under prefix/name.
func (p *Publisher) Publish(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
	}

	key := p.Key(name)
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// List returns the keys of all published reports, sorted.
func (p *Publisher) List(ctx context.Context) ([]string, error) {
	prefix := ""
	if p.prefix != "" {
		prefix = p.prefix + "/"
	}

	var keys []string
	for obj := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}
