package messaging

import (
	"testing"
	"time"

	"mission-service/src/internal/model"
	"mission-service/src/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bootstrap always wraps whatever NewKafkaProducer returns, including nil
// when the producer is disabled. Send has to stay a no-op in that case.
func TestSendWithoutKafkaProducer(t *testing.T) {
	t.Run("mission producer", func(t *testing.T) {
		producer := NewMissionProducer(nil, log.Log{})
		require.NotNil(t, producer)

		err := producer.Send(&model.MissionStatusEvent{
			EventID:    "event-1",
			MissionID:  "mission-1",
			Status:     "accepted",
			OccurredAt: time.Now(),
		})
		assert.NoError(t, err)
	})

	t.Run("safety producer", func(t *testing.T) {
		producer := NewSafetyProducer(nil, log.Log{})
		require.NotNil(t, producer)

		err := producer.Send(&model.SafetyReportEvent{
			EventID:    "event-1",
			ReportID:   "report-1",
			Priority:   "high",
			Status:     "pending",
			OccurredAt: time.Now(),
		})
		assert.NoError(t, err)
	})
}
