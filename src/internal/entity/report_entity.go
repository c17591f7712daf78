package entity

import "time"

type ReportType string

const (
	ReportTypeUser                 ReportType = "user"
	ReportTypeMission              ReportType = "mission"
	ReportTypeInappropriateContent ReportType = "inappropriate_content"
	ReportTypeFraud                ReportType = "fraud"
	ReportTypeHarassment           ReportType = "harassment"
	ReportTypeOther                ReportType = "other"
)

type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusUnderReview ReportStatus = "under_review"
	ReportStatusResolved    ReportStatus = "resolved"
	ReportStatusDismissed   ReportStatus = "dismissed"
)

type ReportPriority string

const (
	ReportPriorityLow    ReportPriority = "low"
	ReportPriorityMedium ReportPriority = "medium"
	ReportPriorityHigh   ReportPriority = "high"
	ReportPriorityUrgent ReportPriority = "urgent"
)

type Report struct {
	ID                string         `json:"id"`
	ReporterID        string         `json:"reporterId"`
	ReportedUserID    *string        `json:"reportedUserId,omitempty"`
	ReportedMissionID *string        `json:"reportedMissionId,omitempty"`
	Type              ReportType     `json:"type"`
	Category          string         `json:"category"`
	Description       string         `json:"description"`
	Evidence          []string       `json:"evidence,omitempty"`
	Status            ReportStatus   `json:"status"`
	Priority          ReportPriority `json:"priority"`
	AdminNotes        string         `json:"adminNotes,omitempty"`
	Resolution        string         `json:"resolution,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	ResolvedAt        *time.Time     `json:"resolvedAt,omitempty"`
	ResolvedBy        *string        `json:"resolvedBy,omitempty"`
}

type TrustLevel string

const (
	TrustLevelVerified  TrustLevel = "verified"
	TrustLevelTrusted   TrustLevel = "trusted"
	TrustLevelNew       TrustLevel = "new"
	TrustLevelFlagged   TrustLevel = "flagged"
	TrustLevelSuspended TrustLevel = "suspended"
)

// UserSafetyScore is the per-user trust aggregate. The score starts at 100
// and stays clamped to [0,100]; TrustLevel is always derived from the
// current score, never stored independently.
type UserSafetyScore struct {
	UserID          string     `json:"userId"`
	SafetyScore     int        `json:"safetyScore"`
	ReportsAgainst  int        `json:"reportsAgainst"`
	ReportsResolved int        `json:"reportsResolved"`
	TrustLevel      TrustLevel `json:"trustLevel"`
	LastIncident    *time.Time `json:"lastIncident,omitempty"`
}

type SafetyEvent string

const (
	SafetyEventReportReceived      SafetyEvent = "report_received"
	SafetyEventReportResolved      SafetyEvent = "report_resolved"
	SafetyEventPositiveInteraction SafetyEvent = "positive_interaction"
)

const initialSafetyScore = 100

// NewUserSafetyScore is the lazily-created aggregate for a user with no
// report history.
func NewUserSafetyScore(userID string) *UserSafetyScore {
	return &UserSafetyScore{
		UserID:      userID,
		SafetyScore: initialSafetyScore,
		TrustLevel:  TrustLevelForScore(initialSafetyScore),
	}
}

// ApplySafetyEvent returns the score after the event, clamped to [0,100].
func ApplySafetyEvent(score int, event SafetyEvent) int {
	switch event {
	case SafetyEventReportReceived:
		score -= 10
	case SafetyEventReportResolved:
		score -= 5
	case SafetyEventPositiveInteraction:
		score++
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// TrustLevelForScore is the step function mapping a score to its tier.
func TrustLevelForScore(score int) TrustLevel {
	switch {
	case score >= 90:
		return TrustLevelVerified
	case score >= 70:
		return TrustLevelTrusted
	case score >= 50:
		return TrustLevelNew
	case score >= 30:
		return TrustLevelFlagged
	default:
		return TrustLevelSuspended
	}
}

// DeriveReportPriority assigns triage priority from the report type; the
// caller never supplies it.
func DeriveReportPriority(t ReportType) ReportPriority {
	switch t {
	case ReportTypeFraud, ReportTypeHarassment:
		return ReportPriorityHigh
	case ReportTypeInappropriateContent:
		return ReportPriorityUrgent
	default:
		return ReportPriorityMedium
	}
}

// ReportPriorityRank orders priorities for triage: urgent > high > medium > low.
func ReportPriorityRank(p ReportPriority) int {
	switch p {
	case ReportPriorityUrgent:
		return 3
	case ReportPriorityHigh:
		return 2
	case ReportPriorityMedium:
		return 1
	default:
		return 0
	}
}
