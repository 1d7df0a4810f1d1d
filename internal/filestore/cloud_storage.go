package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// CloudStorageClient stores objects in a Google Cloud Storage bucket
type CloudStorageClient struct {
	BucketName string
	Client     *storage.Client
}

var _ ObjectStorage = (*CloudStorageClient)(nil)

// NewCloudStorageClient connects with application default credentials unless opts say otherwise.
func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	if bucketName == "" {
		return nil, errors.New("bucket name is empty")
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %w", err)
	}
	return &CloudStorageClient{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

func (c *CloudStorageClient) object(objectName string) *storage.ObjectHandle {
	return c.Client.Bucket(c.BucketName).Object(objectName)
}

// UploadFile implements ObjectStorage
func (c *CloudStorageClient) UploadFile(ctx context.Context, objectName string, data io.Reader) error {
	wc := c.object(objectName).NewWriter(ctx)
	wc.ContentType = "application/pdf"
	if _, err := io.Copy(wc, data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to write data to object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close object writer: %w", err)
	}
	return nil
}

// DownloadFile implements ObjectStorage
func (c *CloudStorageClient) DownloadFile(ctx context.Context, objectName string) (io.ReadCloser, int64, error) {
	rc, err := c.object(objectName).NewReader(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open object reader: %w", err)
	}
	return rc, rc.Attrs.Size, nil
}

// DeleteFile implements ObjectStorage. A missing object is not an error.
func (c *CloudStorageClient) DeleteFile(ctx context.Context, objectName string) error {
	err := c.object(objectName).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// DeletePrefix removes every object whose name starts with prefix and returns how many were removed.
func (c *CloudStorageClient) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	it := c.Client.Bucket(c.BucketName).Objects(ctx, &storage.Query{Prefix: prefix})
	deleted := 0
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return deleted, nil
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to list objects: %w", err)
		}
		if err := c.DeleteFile(ctx, attrs.Name); err != nil {
			return deleted, err
		}
		deleted++
	}
}

// Close releases the client
func (c *CloudStorageClient) Close() error {
	return c.Client.Close()
}
