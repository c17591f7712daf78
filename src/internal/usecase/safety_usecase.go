package usecase

import (
	"context"
	"fmt"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/gateway/messaging"
	"mission-service/src/internal/model"
	"mission-service/src/internal/model/converter"
	"mission-service/src/internal/repository"
	httpError "mission-service/src/pkg/http-error"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// safeScoreFloor is the minimum score below which a user is never safe to
// interact with, regardless of tier.
const safeScoreFloor = 30

type SafetyUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	ReportRepository *repository.ReportRepository
	SafetyProducer   *messaging.SafetyProducer
}

func NewSafetyUseCase(
	logger log.Log,
	validate *validator.Validate,
	reportRepository *repository.ReportRepository,
	safetyProducer *messaging.SafetyProducer,
) *SafetyUseCase {
	return &SafetyUseCase{
		Log:              logger,
		Validate:         validate,
		ReportRepository: reportRepository,
		SafetyProducer:   safetyProducer,
	}
}

// CreateReport files an abuse report. Priority is derived from the report
// type, never supplied by the caller; naming a target user costs that user
// trust immediately.
func (c *SafetyUseCase) CreateReport(ctx context.Context, request *model.CreateReportRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("safety-usecase", errObj.Message, "CreateReport", utils.ConvertString(request))
		return result
	}

	reportType := entity.ReportType(request.Type)
	report := &entity.Report{
		ReporterID:        request.ReporterID,
		ReportedUserID:    request.ReportedUserID,
		ReportedMissionID: request.ReportedMissionID,
		Type:              reportType,
		Category:          request.Category,
		Description:       request.Description,
		Evidence:          request.Evidence,
		Priority:          entity.DeriveReportPriority(reportType),
	}

	created, err := c.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("safety-usecase", err.Error(), "CreateReport", "")
		return result
	}

	c.Log.Info("safety-usecase", "report created", "CreateReport", created.ID)
	c.publishReportEvent(created)
	result.Data = converter.ReportToResponse(created)
	return result
}

// UpdateReportStatus advances a report through triage. Resolving a report
// against a named user applies the second, smaller trust penalty.
func (c *SafetyUseCase) UpdateReportStatus(ctx context.Context, request *model.UpdateReportStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	updated, err := c.ReportRepository.UpdateReportStatus(ctx, request.ReportID,
		entity.ReportStatus(request.Status), request.AdminID, request.Notes, request.Resolution)
	switch err {
	case nil:
	case repository.ErrAlreadySettled:
		errObj := httpError.NewInvalidState()
		errObj.Message = "report has already been resolved or dismissed"
		result.Error = errObj
		c.Log.Error("safety-usecase", errObj.Message, "UpdateReportStatus", request.ReportID)
		return result
	default:
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("report with id %s not found", request.ReportID)
		result.Error = errObj
		c.Log.Error("safety-usecase", errObj.Message, "UpdateReportStatus", request.ReportID)
		return result
	}

	c.Log.Info("safety-usecase", "report status updated", "UpdateReportStatus", updated.ID)
	c.publishReportEvent(updated)
	result.Data = converter.ReportToResponse(updated)
	return result
}

func (c *SafetyUseCase) GetReport(ctx context.Context, reportID string) utils.Result {
	var result utils.Result

	report, err := c.ReportRepository.FindReport(ctx, reportID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("report with id %s not found", reportID)
		result.Error = errObj
		return result
	}
	result.Data = converter.ReportToResponse(report)
	return result
}

// ListReports returns reports ordered for triage: priority first, newest
// first within a tier.
func (c *SafetyUseCase) ListReports(ctx context.Context, request *model.ListReportsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	var status *entity.ReportStatus
	if request.Status != "" {
		s := entity.ReportStatus(request.Status)
		status = &s
	}
	reports, err := c.ReportRepository.ListReports(ctx, status)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.ReportsToResponse(reports)
	return result
}

// GetSafetyScore returns the user's trust aggregate, lazily created at
// score 100.
func (c *SafetyUseCase) GetSafetyScore(ctx context.Context, request *model.SafetyScoreRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	score, err := c.ReportRepository.GetOrCreateScore(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.SafetyScoreToResponse(score)
	return result
}

func (c *SafetyUseCase) IsSafeToInteract(ctx context.Context, request *model.SafetyScoreRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	score, err := c.ReportRepository.GetOrCreateScore(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	safe := score.TrustLevel != entity.TrustLevelSuspended && score.SafetyScore >= safeScoreFloor
	result.Data = &model.SafeToInteractResponse{UserID: request.UserID, Safe: safe}
	return result
}

func (c *SafetyUseCase) publishReportEvent(report *entity.Report) {
	if c.SafetyProducer == nil {
		return
	}
	event := converter.ReportToEvent(report)
	if err := c.SafetyProducer.Send(event); err != nil {
		c.Log.Error("safety-usecase", fmt.Sprintf("failed to publish report event: %v", err), "publishReportEvent", report.ID)
	}
}
