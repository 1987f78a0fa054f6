package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the minimal surface the transform handler needs from an
// object store.
type ObjectStore interface {
	Fetch(ctx context.Context, bucket string, key string) ([]byte, error)
	Store(ctx context.Context, bucket string, key string, body []byte) error
}

// S3ObjectStore wraps a shared S3 client. The client is built once per
// process and injected here, never recreated per call.
type S3ObjectStore struct {
	client *s3.Client
}

func NewS3ObjectStore(client *s3.Client) S3ObjectStore {
	return S3ObjectStore{client: client}
}

func (store S3ObjectStore) Fetch(ctx context.Context, bucket string, key string) ([]byte, error) {
	output, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()

	return io.ReadAll(output.Body)
}

// Store fully overwrites any existing object at (bucket, key).
func (store S3ObjectStore) Store(ctx context.Context, bucket string, key string, body []byte) error {
	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})

	return err
}
