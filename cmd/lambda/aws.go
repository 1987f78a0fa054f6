package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/croften/shout/internal/settings"
)

// NewS3Client builds the shared S3 client. When an endpoint override is
// configured (local minio), path-style addressing is required.
func NewS3Client(ctx context.Context, cfg *settings.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.S3Endpoint() == "" {
		return s3.NewFromConfig(awsCfg), nil
	}

	return s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		options.UsePathStyle = true
		options.EndpointResolver = s3.EndpointResolverFromURL(cfg.S3Endpoint())
	}), nil
}
