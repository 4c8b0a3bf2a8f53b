package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"escrow-deal-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DealEventPublisher struct {
	writer *kafka.Writer
}

func NewDealEventPublisher(brokers []string, topic string) *DealEventPublisher {
	return &DealEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *DealEventPublisher) PublishDeal(event domain.DealEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatInt(event.SellerID, 10)),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *DealEventPublisher) Close() error {
	return p.writer.Close()
}
