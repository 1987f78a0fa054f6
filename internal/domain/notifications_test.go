package domain_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/croften/shout/internal/domain"
	"github.com/reactivex/rxgo/v2"
	"github.com/stretchr/testify/assert"
)

type Collector struct {
	mu   sync.Mutex
	keys []string
}

func (c *Collector) Invoke(_ string) func(interface{}) {
	return func(i interface{}) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.keys = append(c.keys, i.(domain.NotificationEvent).Key)
	}
}

func (c *Collector) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.keys...)
}

func TestStartFiltersByEventType(t *testing.T) {
	cfg := domain.NotificationConfiguration{
		FunctionConfigurations: []domain.FunctionConfiguration{
			{
				Events:   []string{domain.ObjectCreatedFilter},
				Function: "shout-transform",
			},
		},
	}

	var c Collector
	ch, ctx := cfg.Start(&c)
	ch <- rxgo.Item{V: domain.NotificationEvent{Event: domain.ObjectCreatedEvent, Key: "file1.txt"}}
	ch <- rxgo.Item{V: domain.NotificationEvent{Event: domain.ObjectCreatedEvent, Key: "file2.txt"}}
	ch <- rxgo.Item{V: domain.NotificationEvent{Event: domain.ObjectRemovedEvent, Key: "file3.txt"}}
	ch <- rxgo.Item{V: domain.NotificationEvent{Event: domain.ObjectCreatedEvent, Key: "file4.txt"}}
	close(ch)

	timeout, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	<-timeout.Done()

	assert.Equal(t, []string{"file1.txt", "file2.txt", "file4.txt"}, c.Keys())
}

func TestStartFiltersByKey(t *testing.T) {
	cfg := domain.NotificationConfiguration{
		FunctionConfigurations: []domain.FunctionConfiguration{
			{
				Events: []string{domain.ObjectCreatedFilter},
				Filter: domain.Filter{
					S3Key: domain.S3Key{
						FilterRules: []domain.FilterRule{
							{Name: domain.SuffixFilter, Value: ".txt"},
						},
					},
				},
				Function: "shout-transform",
			},
		},
	}

	var c Collector
	ch, ctx := cfg.Start(&c)
	ch <- rxgo.Item{V: domain.NotificationEvent{Event: domain.ObjectCreatedEvent, Key: "notes.txt"}}
	ch <- rxgo.Item{V: domain.NotificationEvent{Event: domain.ObjectCreatedEvent, Key: "image.png"}}
	close(ch)

	timeout, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	<-timeout.Done()

	assert.Equal(t, []string{"notes.txt"}, c.Keys())
}
