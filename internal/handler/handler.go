package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/croften/shout/internal/domain"
	"github.com/croften/shout/internal/storage"
	"github.com/croften/shout/internal/transform"
)

// ErrProcessing is the only error surfaced to the invoking platform for
// processing failures. The specific cause is preserved in the log stream.
var ErrProcessing = errors.New("Error processing file")

type Config interface {
	DestinationBucket() string
}

type Response struct {
	Status string `json:"status"`
}

// Handler reads each object named by a notification, uppercases its text
// content, and writes the result to the destination bucket under the same
// key. It holds no state across invocations.
type Handler struct {
	cfg   Config
	store storage.ObjectStore
}

func New(cfg Config, store storage.ObjectStore) *Handler {
	return &Handler{
		cfg:   cfg,
		store: store,
	}
}

// Handle processes every record in the notification, in order. Malformed
// notifications are rejected with a validation error; any failure while
// processing a well-formed record fails the invocation with ErrProcessing.
func (h Handler) Handle(ctx context.Context, notification domain.Notification) (Response, error) {
	dump, _ := json.Marshal(notification)
	logger.Infof("Received notification: %s", dump)

	err := notification.Validate()
	if err != nil {
		logger.Error(err)
		return Response{}, err
	}

	for _, record := range notification.Records {
		err := h.process(ctx, record)
		if err != nil {
			logger.Error(err)
			return Response{}, ErrProcessing
		}
	}

	return Response{Status: "Success"}, nil
}

func (h Handler) process(ctx context.Context, record domain.Record) error {
	bucket := record.S3.Bucket.Name
	key, err := record.S3.Object.DecodedKey()
	if err != nil {
		return FetchError{bucket: bucket, key: record.S3.Object.Key, base: err}
	}

	payload, err := h.store.Fetch(ctx, bucket, key)
	if err != nil {
		return FetchError{bucket: bucket, key: key, base: err}
	}

	upper, err := transform.Uppercase(payload)
	if err != nil {
		return DecodeError{bucket: bucket, key: key, base: err}
	}

	destination := h.cfg.DestinationBucket()
	err = h.store.Store(ctx, destination, key, upper)
	if err != nil {
		return WriteError{bucket: destination, key: key, base: err}
	}

	logger.Infof("Wrote %d bytes to %s/%s", len(upper), destination, key)
	return nil
}
