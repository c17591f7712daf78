package repository

import (
	"context"
	"testing"

	"mission-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(reporterID string, target *string, reportType entity.ReportType) *entity.Report {
	return &entity.Report{
		ReporterID:     reporterID,
		ReportedUserID: target,
		Type:           reportType,
		Description:    "something happened",
		Priority:       entity.DeriveReportPriority(reportType),
	}
}

func TestReportRepositoryCreateReport(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()
	target := "user-bad"

	created, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeFraud))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.ReportStatusPending, created.Status)
	assert.Equal(t, entity.ReportPriorityHigh, created.Priority)

	// the named target paid the report_received penalty in the same step
	score, err := repo.GetOrCreateScore(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, 90, score.SafetyScore)
	assert.Equal(t, 1, score.ReportsAgainst)
	assert.NotNil(t, score.LastIncident)
}

func TestReportRepositoryCreateReportWithoutTarget(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	_, err := repo.CreateReport(ctx, testReport("user-1", nil, entity.ReportTypeMission))
	require.NoError(t, err)
	assert.Empty(t, repo.scores)
}

func TestReportRepositoryUpdateReportStatus(t *testing.T) {
	ctx := context.Background()
	target := "user-bad"
	admin := "admin-1"

	t.Run("resolved applies second penalty and stamps resolution", func(t *testing.T) {
		repo := NewReportRepository()
		created, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeHarassment))
		require.NoError(t, err)

		updated, err := repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusResolved, &admin, "reviewed", "warning issued")
		require.NoError(t, err)
		assert.Equal(t, entity.ReportStatusResolved, updated.Status)
		assert.NotNil(t, updated.ResolvedAt)
		require.NotNil(t, updated.ResolvedBy)
		assert.Equal(t, "admin-1", *updated.ResolvedBy)
		assert.Equal(t, "warning issued", updated.Resolution)

		score, err := repo.GetOrCreateScore(ctx, target)
		require.NoError(t, err)
		assert.Equal(t, 85, score.SafetyScore)
		assert.Equal(t, 1, score.ReportsResolved)
	})

	t.Run("dismissed stamps resolution without penalty", func(t *testing.T) {
		repo := NewReportRepository()
		created, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeHarassment))
		require.NoError(t, err)

		updated, err := repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusDismissed, &admin, "", "")
		require.NoError(t, err)
		assert.NotNil(t, updated.ResolvedAt)

		score, err := repo.GetOrCreateScore(ctx, target)
		require.NoError(t, err)
		assert.Equal(t, 90, score.SafetyScore)
		assert.Zero(t, score.ReportsResolved)
	})

	t.Run("under review stamps nothing", func(t *testing.T) {
		repo := NewReportRepository()
		created, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeOther))
		require.NoError(t, err)

		updated, err := repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusUnderReview, nil, "", "")
		require.NoError(t, err)
		assert.Nil(t, updated.ResolvedAt)
	})

	t.Run("unknown report", func(t *testing.T) {
		repo := NewReportRepository()
		_, err := repo.UpdateReportStatus(ctx, "missing", entity.ReportStatusResolved, nil, "", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repeated resolve fails and applies no further penalty", func(t *testing.T) {
		repo := NewReportRepository()
		created, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeHarassment))
		require.NoError(t, err)

		_, err = repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusResolved, &admin, "", "")
		require.NoError(t, err)

		_, err = repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusResolved, &admin, "", "")
		assert.ErrorIs(t, err, ErrAlreadySettled)

		score, err := repo.GetOrCreateScore(ctx, target)
		require.NoError(t, err)
		assert.Equal(t, 85, score.SafetyScore)
		assert.Equal(t, 1, score.ReportsResolved)
	})

	t.Run("dismissed report cannot be reopened", func(t *testing.T) {
		repo := NewReportRepository()
		created, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeHarassment))
		require.NoError(t, err)

		_, err = repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusDismissed, &admin, "", "")
		require.NoError(t, err)

		_, err = repo.UpdateReportStatus(ctx, created.ID, entity.ReportStatusUnderReview, nil, "", "")
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})
}

func TestReportRepositoryListReports(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	medium, err := repo.CreateReport(ctx, testReport("user-1", nil, entity.ReportTypeOther))
	require.NoError(t, err)
	urgent, err := repo.CreateReport(ctx, testReport("user-2", nil, entity.ReportTypeInappropriateContent))
	require.NoError(t, err)
	high, err := repo.CreateReport(ctx, testReport("user-3", nil, entity.ReportTypeFraud))
	require.NoError(t, err)

	reports, err := repo.ListReports(ctx, nil)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, urgent.ID, reports[0].ID)
	assert.Equal(t, high.ID, reports[1].ID)
	assert.Equal(t, medium.ID, reports[2].ID)

	_, err = repo.UpdateReportStatus(ctx, high.ID, entity.ReportStatusResolved, nil, "", "")
	require.NoError(t, err)

	pending := entity.ReportStatusPending
	filtered, err := repo.ListReports(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, report := range filtered {
		assert.Equal(t, entity.ReportStatusPending, report.Status)
	}
}

func TestReportRepositoryScoreNeverLeavesBounds(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()
	target := "user-bad"

	for i := 0; i < 15; i++ {
		_, err := repo.CreateReport(ctx, testReport("user-1", &target, entity.ReportTypeFraud))
		require.NoError(t, err)
	}

	score, err := repo.GetOrCreateScore(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, 0, score.SafetyScore)
	assert.Equal(t, entity.TrustLevelSuspended, score.TrustLevel)
	assert.Equal(t, 15, score.ReportsAgainst)

	for i := 0; i < 200; i++ {
		_, err := repo.ApplyScoreEvent(ctx, target, entity.SafetyEventPositiveInteraction)
		require.NoError(t, err)
	}

	score, err = repo.GetOrCreateScore(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, 100, score.SafetyScore)
	assert.Equal(t, entity.TrustLevelVerified, score.TrustLevel)
}
