package messaging

import (
	"mission-service/src/internal/model"
	kafka "mission-service/src/pkg/kafka/confluent"
	"mission-service/src/pkg/log"
)

type MissionProducer struct {
	Producer[*model.MissionStatusEvent]
}

func NewMissionProducer(producer kafka.Producer, logger log.Log) *MissionProducer {
	return &MissionProducer{
		Producer: Producer[*model.MissionStatusEvent]{
			Producer: producer,
			Topic:    "mission-status",
			Log:      logger,
		},
	}
}
