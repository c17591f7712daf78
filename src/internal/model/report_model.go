package model

import "time"

type CreateReportRequest struct {
	ReporterID        string   `json:"-" validate:"required,max=100"`
	ReportedUserID    *string  `json:"reportedUserId,omitempty"`
	ReportedMissionID *string  `json:"reportedMissionId,omitempty"`
	Type              string   `json:"type" validate:"required,oneof=user mission inappropriate_content fraud harassment other"`
	Category          string   `json:"category" validate:"max=100"`
	Description       string   `json:"description" validate:"required,max=2000"`
	Evidence          []string `json:"evidence,omitempty" validate:"max=10"`
}

type UpdateReportStatusRequest struct {
	ReportID   string  `json:"reportId" validate:"required"`
	Status     string  `json:"status" validate:"required,oneof=under_review resolved dismissed"`
	AdminID    *string `json:"adminId,omitempty"`
	Notes      string  `json:"notes" validate:"max=2000"`
	Resolution string  `json:"resolution" validate:"max=2000"`
}

type ListReportsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=pending under_review resolved dismissed"`
}

type SafetyScoreRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
}

type ReportResponse struct {
	ID                string     `json:"id"`
	ReporterID        string     `json:"reporterId"`
	ReportedUserID    *string    `json:"reportedUserId,omitempty"`
	ReportedMissionID *string    `json:"reportedMissionId,omitempty"`
	Type              string     `json:"type"`
	Category          string     `json:"category,omitempty"`
	Description       string     `json:"description"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	AdminNotes        string     `json:"adminNotes,omitempty"`
	Resolution        string     `json:"resolution,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy        *string    `json:"resolvedBy,omitempty"`
}

type SafetyScoreResponse struct {
	UserID          string     `json:"userId"`
	SafetyScore     int        `json:"safetyScore"`
	ReportsAgainst  int        `json:"reportsAgainst"`
	ReportsResolved int        `json:"reportsResolved"`
	TrustLevel      string     `json:"trustLevel"`
	LastIncident    *time.Time `json:"lastIncident,omitempty"`
}

type SafeToInteractResponse struct {
	UserID string `json:"userId"`
	Safe   bool   `json:"safe"`
}
