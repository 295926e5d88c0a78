package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"odonto_docs/internal/infrastructure/config"
	"odonto_docs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

// SQSEventPublisher sends domain events to a single queue.
type SQSEventPublisher struct {
	client   *sqs.Client
	queueURL string
}

var _ interfaces.IEventPublisher = (*SQSEventPublisher)(nil)

func NewSQSEventPublisher(awsCfg aws.Config, cfg config.Config) *SQSEventPublisher {
	client := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.SQSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SQSEndpoint)
		}
	})
	return &SQSEventPublisher{client: client, queueURL: cfg.EventsQueueURL}
}

func (p *SQSEventPublisher) Publish(ctx context.Context, event interfaces.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"event_type": {DataType: aws.String("String"), StringValue: aws.String(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("send %s: %w", event.Type, err)
	}
	zap.S().Debugf("[messaging][sqs] sent type=%s aggregate_id=%s", event.Type, event.AggregateID)
	return nil
}

// NopEventPublisher drops events; used when EVENTS_QUEUE_URL is unset.
type NopEventPublisher struct{}

var _ interfaces.IEventPublisher = NopEventPublisher{}

func (NopEventPublisher) Publish(context.Context, interfaces.DomainEvent) error { return nil }
