package kafka

import (
	"fmt"

	"mission-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type kafkaProducer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	kp := &kafkaProducer{producer: p, log: logger}
	go kp.handleDeliveryReports()
	return kp, nil
}

func (p *kafkaProducer) handleDeliveryReports() {
	for e := range p.producer.Events() {
		if m, ok := e.(*k.Message); ok && m.TopicPartition.Error != nil {
			p.log.Error("kafka-producer", m.TopicPartition.Error.Error(), "delivery", *m.TopicPartition.Topic)
		}
	}
}

func (p *kafkaProducer) Publish(message *k.Message) error {
	return p.producer.Produce(message, nil)
}

func (p *kafkaProducer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
