package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/croften/shout/internal/handler"
	"github.com/croften/shout/internal/logging"
	"github.com/croften/shout/internal/settings"
	"github.com/croften/shout/internal/storage"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger
var h *handler.Handler

// The handler and its S3 client are built once per runtime instance and
// reused across invocations.
func init() {
	logger = logging.NewLogger().Named("lambda")

	cfg, err := settings.FromEnvironment()
	if err != nil {
		logger.Panicf("Unable to load settings: %v", err)
	}

	client, err := NewS3Client(context.Background(), cfg)
	if err != nil {
		logger.Panicf("Unable to create S3 client: %v", err)
	}

	h = handler.New(cfg, storage.NewS3ObjectStore(client))
}

func main() {
	lambda.Start(h.Handle)
}
