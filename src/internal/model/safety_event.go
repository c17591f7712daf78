package model

import "time"

type SafetyReportEvent struct {
	EventID        string    `json:"event_id"`
	ReportID       string    `json:"report_id"`
	ReportedUserID *string   `json:"reported_user_id,omitempty"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (e *SafetyReportEvent) GetId() string {
	return e.EventID
}
