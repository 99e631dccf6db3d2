package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"unit-converter/core/storage"
	"unit-converter/core/units"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IndexObject is the object name of the full catalog under the prefix.
const IndexObject = "units.json"

// maxParallelUploads bounds concurrent PutObject calls.
const maxParallelUploads = 4

// Publisher uploads the unit catalog to a bucket.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	region string
	logger *zap.Logger
}

// NewPublisher creates a new catalog publisher.
func NewPublisher(client storage.Client, bucket, prefix, region string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		region: region,
		logger: logger,
	}
}

// Documents renders the catalog files keyed by object name.
func (p *Publisher) Documents() (map[string][]byte, error) {
	catalog := units.Catalog()
	docs := make(map[string][]byte, len(catalog)+1)

	index := make(map[string][]units.Unit, len(catalog))
	for category, list := range catalog {
		index[category.String()] = list

		body, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s units: %w", category, err)
		}
		docs[p.objectName(category.String()+".json")] = body
	}

	body, err := json.Marshal(index)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	docs[p.objectName(IndexObject)] = body

	return docs, nil
}

// Publish makes sure the bucket exists and uploads every catalog file.
// It returns the uploaded object names.
func (p *Publisher) Publish(ctx context.Context) ([]string, error) {
	if err := storage.EnsureBucket(ctx, p.client, p.bucket, p.region); err != nil {
		return nil, err
	}

	docs, err := p.Documents()
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUploads)

	for name, body := range docs {
		g.Go(func() error {
			_, err := p.client.PutObject(ctx, p.bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
				ContentType: "application/json",
			})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", name, err)
			}
			p.logger.Debug("Uploaded catalog object", zap.String("object", name), zap.Int("bytes", len(body)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for _, c := range units.Categories() {
		names = append(names, p.objectName(c.String()+".json"))
	}
	names = append(names, p.objectName(IndexObject))

	p.logger.Info("Catalog published", zap.String("bucket", p.bucket), zap.Int("objects", len(names)))
	return names, nil
}

func (p *Publisher) objectName(file string) string {
	if p.prefix == "" {
		return file
	}
	return path.Join(p.prefix, file)
}
