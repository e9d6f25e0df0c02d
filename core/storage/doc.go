// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so reconciliation reports can be published to
// AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Publisher
//
// Publisher creates the bucket on first use and uploads reports under a
// configurable key prefix (default "reports").
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	pub := storage.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
//	key, err := pub.Publish(ctx, "run.json", data, "application/json")
package storage
