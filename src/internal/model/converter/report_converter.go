package converter

import (
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"

	"github.com/google/uuid"
)

func ReportToResponse(report *entity.Report) *model.ReportResponse {
	return &model.ReportResponse{
		ID:                report.ID,
		ReporterID:        report.ReporterID,
		ReportedUserID:    report.ReportedUserID,
		ReportedMissionID: report.ReportedMissionID,
		Type:              string(report.Type),
		Category:          report.Category,
		Description:       report.Description,
		Status:            string(report.Status),
		Priority:          string(report.Priority),
		AdminNotes:        report.AdminNotes,
		Resolution:        report.Resolution,
		CreatedAt:         report.CreatedAt,
		ResolvedAt:        report.ResolvedAt,
		ResolvedBy:        report.ResolvedBy,
	}
}

func ReportsToResponse(reports []entity.Report) []model.ReportResponse {
	responses := make([]model.ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *ReportToResponse(&reports[i]))
	}
	return responses
}

func SafetyScoreToResponse(score *entity.UserSafetyScore) *model.SafetyScoreResponse {
	return &model.SafetyScoreResponse{
		UserID:          score.UserID,
		SafetyScore:     score.SafetyScore,
		ReportsAgainst:  score.ReportsAgainst,
		ReportsResolved: score.ReportsResolved,
		TrustLevel:      string(score.TrustLevel),
		LastIncident:    score.LastIncident,
	}
}

func ReportToEvent(report *entity.Report) *model.SafetyReportEvent {
	return &model.SafetyReportEvent{
		EventID:        uuid.NewString(),
		ReportID:       report.ID,
		ReportedUserID: report.ReportedUserID,
		Priority:       string(report.Priority),
		Status:         string(report.Status),
		OccurredAt:     time.Now(),
	}
}
