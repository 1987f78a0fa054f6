package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/croften/shout/internal/domain"
	"github.com/reactivex/rxgo/v2"
	"gopkg.in/yaml.v2"
)

const notificationDir = "notifications"

type Config interface {
	DataPath() string
}

// Pipeline owns the per-bucket notification streams for the local runner.
// Configurations are persisted as one yaml file per bucket so that streams
// can be rebuilt on the next start.
type Pipeline struct {
	cfg     Config
	invoker domain.FunctionInvoker
	buckets map[string]chan rxgo.Item
}

func NewPipeline(config Config, invoker domain.FunctionInvoker) *Pipeline {
	return &Pipeline{
		cfg:     config,
		invoker: invoker,
		buckets: make(map[string]chan rxgo.Item),
	}
}

func (p Pipeline) Save(bucket string, config domain.NotificationConfiguration) (string, error) {
	basePath := filepath.Join(p.cfg.DataPath(), notificationDir)
	err := os.MkdirAll(basePath, 0755)
	if err != nil {
		err := SaveError{
			path:   basePath,
			bucket: bucket,
			base:   err,
		}
		logger.Error(err)
		return basePath, err
	}

	path := filepath.Join(basePath, bucket+".yaml")
	logger.Infof("Saving NotificationConfiguration to %s", path)

	file, err := os.Create(path)
	if err != nil {
		err := SaveError{
			path:   path,
			bucket: bucket,
			base:   err,
		}
		logger.Error(err)
		return path, err
	}
	defer file.Close()

	err = yaml.NewEncoder(file).Encode(config)
	if err != nil {
		err := EncodeError{
			config: config,
			base:   err,
		}
		logger.Error(err)
		return path, err
	}

	return path, nil
}

// Load rebuilds the stream for the bucket named by the file at path.
func (p Pipeline) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		err := LoadError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return err
	}
	defer file.Close()

	var config domain.NotificationConfiguration
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		err := DecodeError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return err
	}

	ch, _ := config.Start(p.invoker)

	filename := filepath.Base(path)
	ext := filepath.Ext(filename)
	bucket := filename[0 : len(filename)-len(ext)]

	p.buckets[bucket] = ch

	return nil
}

// LoadAll rebuilds streams for every persisted configuration. A missing
// notification directory just means nothing has been registered yet.
func (p Pipeline) LoadAll() error {
	basePath := filepath.Join(p.cfg.DataPath(), notificationDir)
	entries, err := os.ReadDir(basePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		err := DirError{
			path: basePath,
			base: err,
		}
		logger.Error(err)
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		err = p.Load(filepath.Join(basePath, entry.Name()))
		if err != nil {
			return err
		}
	}

	return nil
}

// Register persists the configuration and starts its stream, replacing any
// running stream for the bucket.
func (p Pipeline) Register(bucket string, config domain.NotificationConfiguration) error {
	path, err := p.Save(bucket, config)
	if err != nil {
		return err
	}

	if ch, ok := p.buckets[bucket]; ok {
		close(ch)
		delete(p.buckets, bucket)
	}

	return p.Load(path)
}

func (p Pipeline) ProcessEvent(event domain.NotificationEvent) error {
	ch, ok := p.buckets[event.Bucket]
	if !ok {
		err := fmt.Errorf("no NotificationConfiguration for bucket %s has been registered", event.Bucket)
		logger.Error(err)
		return err
	}

	ch <- rxgo.Item{V: event}

	return nil
}

// Close shuts down all running streams.
func (p Pipeline) Close() {
	for bucket, ch := range p.buckets {
		close(ch)
		delete(p.buckets, bucket)
	}
}
