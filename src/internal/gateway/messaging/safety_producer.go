package messaging

import (
	"mission-service/src/internal/model"
	kafka "mission-service/src/pkg/kafka/confluent"
	"mission-service/src/pkg/log"
)

type SafetyProducer struct {
	Producer[*model.SafetyReportEvent]
}

func NewSafetyProducer(producer kafka.Producer, logger log.Log) *SafetyProducer {
	return &SafetyProducer{
		Producer: Producer[*model.SafetyReportEvent]{
			Producer: producer,
			Topic:    "safety-report",
			Log:      logger,
		},
	}
}
