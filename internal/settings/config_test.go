package settings_test

import (
	"testing"

	"github.com/croften/shout/internal/settings"
	"github.com/stretchr/testify/assert"
)

func TestFromFlagsDefaults(t *testing.T) {
	cfg, _, err := settings.FromFlags("shout", []string{})
	assert.NoError(t, err)
	assert.Equal(t, settings.DefaultBasePort, cfg.BasePort)
	assert.Equal(t, settings.DefaultDestinationBucket, cfg.DestinationBucket())
	assert.Equal(t, settings.DefaultRegion, cfg.AwsRegion())
	assert.Equal(t, []string{settings.DefaultNetworks}, cfg.Networks)
}

func TestFromFlagsOverrides(t *testing.T) {
	cfg, _, err := settings.FromFlags("shout", []string{
		"-port", "8000",
		"-destination-bucket", "results",
		"-networks", "a,b",
	})
	assert.NoError(t, err)
	assert.Equal(t, 8000, cfg.BasePort)
	assert.Equal(t, "results", cfg.DestinationBucket())
	assert.Equal(t, []string{"a", "b"}, cfg.Networks)
	assert.Equal(t, 8001, cfg.MinioPort())
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("DESTINATION_BUCKET", "processed-files")
	t.Setenv("S3_ENDPOINT", "http://localhost:9001")

	cfg, err := settings.FromEnvironment()
	assert.NoError(t, err)
	assert.Equal(t, "processed-files", cfg.DestinationBucket())
	assert.Equal(t, "http://localhost:9001", cfg.S3Endpoint())
}

func TestFromEnvironmentMissingBucket(t *testing.T) {
	t.Setenv("DESTINATION_BUCKET", "")
	_, err := settings.FromEnvironment()
	assert.Error(t, err)
}
