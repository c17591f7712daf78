package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"mission-service/src/internal/entity"

	"github.com/google/uuid"
)

// ReportRepository owns both the abuse reports and the per-user safety
// scores. Both live behind one mutex so creating or resolving a report and
// the score change it implies happen in a single critical section.
type ReportRepository struct {
	mu      sync.Mutex
	reports map[string]*entity.Report
	scores  map[string]*entity.UserSafetyScore
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		reports: make(map[string]*entity.Report),
		scores:  make(map[string]*entity.UserSafetyScore),
	}
}

// CreateReport stores the report and, when it names a target user, applies
// the report_received penalty to that user's score in the same step.
func (r *ReportRepository) CreateReport(ctx context.Context, report *entity.Report) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	report.Status = entity.ReportStatusPending
	report.CreatedAt = now
	report.UpdatedAt = now

	stored := *report
	r.reports[stored.ID] = &stored

	if stored.ReportedUserID != nil {
		r.applyEventLocked(*stored.ReportedUserID, entity.SafetyEventReportReceived, now)
	}

	reportCopy := stored
	return &reportCopy, nil
}

// UpdateReportStatus transitions the report, stamping resolution fields when
// it reaches resolved or dismissed. Resolving a report against a named user
// applies the report_resolved penalty inside the same critical section.
// Resolved and dismissed are terminal: a retried transition fails instead of
// applying the penalty again.
func (r *ReportRepository) UpdateReportStatus(ctx context.Context, reportID string, status entity.ReportStatus, adminID *string, notes, resolution string) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[reportID]
	if !ok {
		return nil, ErrNotFound
	}
	if report.Status == entity.ReportStatusResolved || report.Status == entity.ReportStatusDismissed {
		return nil, ErrAlreadySettled
	}

	now := time.Now()
	report.Status = status
	report.UpdatedAt = now
	if notes != "" {
		report.AdminNotes = notes
	}
	if resolution != "" {
		report.Resolution = resolution
	}
	if status == entity.ReportStatusResolved || status == entity.ReportStatusDismissed {
		resolved := now
		report.ResolvedAt = &resolved
		report.ResolvedBy = adminID
	}
	if status == entity.ReportStatusResolved && report.ReportedUserID != nil {
		r.applyEventLocked(*report.ReportedUserID, entity.SafetyEventReportResolved, now)
	}

	reportCopy := *report
	return &reportCopy, nil
}

func (r *ReportRepository) FindReport(ctx context.Context, reportID string) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[reportID]
	if !ok {
		return nil, ErrNotFound
	}
	reportCopy := *report
	return &reportCopy, nil
}

// ListReports returns reports for triage: priority descending, then newest
// first within a tier. A nil status filter returns everything.
func (r *ReportRepository) ListReports(ctx context.Context, status *entity.ReportStatus) ([]entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reports []entity.Report
	for _, report := range r.reports {
		if status != nil && report.Status != *status {
			continue
		}
		reports = append(reports, *report)
	}
	sort.Slice(reports, func(i, j int) bool {
		ri := entity.ReportPriorityRank(reports[i].Priority)
		rj := entity.ReportPriorityRank(reports[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

// GetOrCreateScore returns the user's safety aggregate, lazily created at
// score 100.
func (r *ReportRepository) GetOrCreateScore(ctx context.Context, userID string) (*entity.UserSafetyScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	score := r.getOrCreateScoreLocked(userID)
	scoreCopy := *score
	return &scoreCopy, nil
}

// ApplyScoreEvent applies one safety event to the user's score. Wired for
// positive_interaction; report events flow through Create/UpdateReportStatus.
func (r *ReportRepository) ApplyScoreEvent(ctx context.Context, userID string, event entity.SafetyEvent) (*entity.UserSafetyScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	score := r.applyEventLocked(userID, event, time.Now())
	scoreCopy := *score
	return &scoreCopy, nil
}

func (r *ReportRepository) getOrCreateScoreLocked(userID string) *entity.UserSafetyScore {
	score, ok := r.scores[userID]
	if !ok {
		score = entity.NewUserSafetyScore(userID)
		r.scores[userID] = score
	}
	return score
}

// applyEventLocked mutates the score and re-derives the trust tier so the
// tier can never go stale relative to the score.
func (r *ReportRepository) applyEventLocked(userID string, event entity.SafetyEvent, now time.Time) *entity.UserSafetyScore {
	score := r.getOrCreateScoreLocked(userID)
	score.SafetyScore = entity.ApplySafetyEvent(score.SafetyScore, event)
	switch event {
	case entity.SafetyEventReportReceived:
		score.ReportsAgainst++
		incident := now
		score.LastIncident = &incident
	case entity.SafetyEventReportResolved:
		score.ReportsResolved++
	}
	score.TrustLevel = entity.TrustLevelForScore(score.SafetyScore)
	return score
}
