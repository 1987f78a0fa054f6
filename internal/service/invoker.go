package service

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/croften/shout/internal/domain"
)

type AwsConfig interface {
	AwsRegion() string
}

// LambdaInvoker forwards notification events to a function runtime through
// the Lambda Invoke API.
type LambdaInvoker struct {
	client *lambda.Client
	region string
}

func NewLambdaInvoker(cfg AwsConfig, client *lambda.Client) LambdaInvoker {
	return LambdaInvoker{
		client: client,
		region: cfg.AwsRegion(),
	}
}

func (inv LambdaInvoker) Invoke(function string) func(interface{}) {
	return func(i interface{}) {
		event := i.(domain.NotificationEvent)
		notification := domain.NewNotification(inv.region, event)

		payload, err := json.Marshal(notification)
		if err != nil {
			logger.Errorf("Unable to marshal notification for %s/%s: %v", event.Bucket, event.Key, err)
			return
		}

		logger.Infof("Invoking function %s for %s/%s", function, event.Bucket, event.Key)

		_, err = inv.client.Invoke(context.Background(), &lambda.InvokeInput{
			FunctionName:   aws.String(function),
			InvocationType: types.InvocationTypeEvent,
			Payload:        payload,
		})
		if err != nil {
			logger.Errorf("Unable to invoke function %s: %v", function, err)
		}
	}
}
