package domain

import (
	"context"
	"strings"

	"github.com/reactivex/rxgo/v2"
)

// FunctionInvoker hands out the invocation callback for a named function.
type FunctionInvoker interface {
	Invoke(function string) func(interface{})
}

// FunctionConfiguration binds a set of event families and key filters to one
// function.
type FunctionConfiguration struct {
	Events   []string `yaml:"events"`
	Filter   Filter   `yaml:"filter"`
	Id       string   `yaml:"id"`
	Function string   `yaml:"function"`
}

type NotificationConfiguration struct {
	FunctionConfigurations []FunctionConfiguration `yaml:"functionConfigurations"`
}

// Start builds the event stream for this configuration. Events pushed into
// the returned channel are matched against each function configuration and
// handed to the invoker. The returned context completes when the stream is
// disposed.
func (c NotificationConfiguration) Start(invoker FunctionInvoker) (chan rxgo.Item, context.Context) {
	ch := make(chan rxgo.Item)
	observable := rxgo.FromChannel(ch, rxgo.WithPublishStrategy())

	for _, config := range c.FunctionConfigurations {
		filter := config.Filter
		invoke := invoker.Invoke(config.Function)

		observable.
			Filter(matchesAny(config.Events)).
			Filter(filter.FilterEvents).
			DoOnNext(invoke)
	}

	ctx, _ := observable.Connect(context.Background())
	return ch, ctx
}

// matchesAny passes events whose family is covered by one of the configured
// event filters (i.e. "s3:ObjectCreated:*" covers "s3:ObjectCreated").
func matchesAny(events []string) rxgo.Predicate {
	return func(i interface{}) bool {
		event := i.(NotificationEvent)
		for _, e := range events {
			if strings.HasPrefix(e, event.Event) {
				return true
			}
		}
		return false
	}
}
