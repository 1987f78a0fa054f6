package settings

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultRegion            = "us-west-2"
	DefaultLambdaEndpoint    = "http://localhost:9050"
	DefaultDestinationBucket = "processed-files"

	DefaultBasePort = 9000
	DefaultDataPath = "data"
	DefaultImage    = "bitnami/minio:2022.2.16"

	DefaultNetworks = "shout"

	destinationBucketEnv = "DESTINATION_BUCKET"
	s3EndpointEnv        = "S3_ENDPOINT"
)

type Config struct {
	IsDebug        bool
	IsLocal        bool
	Region         string
	LambdaEndpoint string

	BasePort int
	dataPath string
	Image    string

	Networks []string

	destinationBucket string
	s3Endpoint        string
}

func (config *Config) DestinationBucket() string {
	return config.destinationBucket
}

func (config *Config) S3Endpoint() string {
	return config.s3Endpoint
}

func (config *Config) AwsRegion() string {
	return config.Region
}

func (config *Config) DataPath() string {
	if filepath.IsAbs(config.dataPath) {
		return config.dataPath
	}

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	return filepath.Join(cwd, config.dataPath)
}

func (config *Config) MinioDataPath() string {
	return filepath.Join(config.DataPath(), "s3")
}

func (config *Config) MinioPort() int {
	return config.BasePort + 1
}

func (config *Config) MinioUrl() string {
	if config.IsLocal {
		return fmt.Sprintf("http://localhost:%d", config.MinioPort())
	}

	return "http://s3:9000"
}

func DefaultConfig() *Config {
	return &Config{
		IsDebug:           false,
		IsLocal:           true,
		Region:            DefaultRegion,
		LambdaEndpoint:    DefaultLambdaEndpoint,
		BasePort:          DefaultBasePort,
		dataPath:          DefaultDataPath,
		Image:             DefaultImage,
		Networks:          []string{DefaultNetworks},
		destinationBucket: DefaultDestinationBucket,
	}
}

type NetworkValue struct {
	networks []string
}

func (v *NetworkValue) Set(s string) error {
	v.networks = strings.Split(s, ",")
	return nil
}

func (v *NetworkValue) String() string {
	if len(v.networks) > 0 {
		return strings.Join(v.networks, ",")
	}

	return ""
}

// FromFlags builds the local runner configuration from command-line flags.
func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var cfg Config
	networks := NetworkValue{[]string{DefaultNetworks}}
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.BoolVar(&cfg.IsLocal, "local", true, "Application should use localhost when routing to s3 service")
	flags.StringVar(&cfg.Region, "region", DefaultRegion, "Region used in forwarded notifications")
	flags.StringVar(&cfg.LambdaEndpoint, "lambda-endpoint", DefaultLambdaEndpoint, "Endpoint URL for lambda service")
	flags.StringVar(&cfg.destinationBucket, "destination-bucket", DefaultDestinationBucket, "Bucket that receives transformed objects")
	flags.IntVar(&cfg.BasePort, "port", DefaultBasePort, "Port used for HTTP and start of port range for s3 service")
	flags.StringVar(&cfg.Image, "image", DefaultImage, "Image to use for backing storage")
	flags.StringVar(&cfg.dataPath, "data-path", DefaultDataPath, "Path to persist data and notification configuration")
	flags.Var(&networks, "networks", "Comma-separated list of Networks for containers")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	cfg.Networks = networks.networks

	return &cfg, buf.String(), err
}

// FromEnvironment builds the function configuration from environment
// variables. DESTINATION_BUCKET is required; S3_ENDPOINT overrides the
// object store endpoint when targeting a local store.
func FromEnvironment() (*Config, error) {
	bucket, found := os.LookupEnv(destinationBucketEnv)
	if !found {
		return nil, fmt.Errorf("environment variable '%s' not set", destinationBucketEnv)
	}
	if bucket == "" {
		return nil, fmt.Errorf("environment variable '%s' empty", destinationBucketEnv)
	}

	return &Config{
		Region:            DefaultRegion,
		destinationBucket: bucket,
		s3Endpoint:        os.Getenv(s3EndpointEnv),
	}, nil
}
