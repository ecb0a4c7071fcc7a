package services

import (
	"testing"

	"github.com/sekenkampus/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Filing a report fans out exactly one notification per admin.
func TestFileReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	adminOne := createUser(t, db, "admin1", models.RoleAdmin)
	adminTwo := createUser(t, db, "admin2", models.RoleAdmin)
	listing := createListing(t, db, seller, "30000")

	report, err := svc.File(FileReportInput{
		ReporterID:  reporter.ID,
		ListingID:   listing.ID,
		Reason:      "counterfeit",
		Description: "the photos are from another store",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportPending, report.Status)
	assert.Equal(t, models.ReportTargetListing, report.TargetType)
	assert.Equal(t, listing.ID, report.TargetID)
	assert.Nil(t, report.ProcessedAt)

	for _, admin := range []*models.User{adminOne, adminTwo} {
		notifications := notificationsFor(t, db, admin.ID)
		require.Len(t, notifications, 1)
		assert.Equal(t, models.NotificationReport, notifications[0].Category)
	}
	assert.Empty(t, notificationsFor(t, db, seller.ID))
	assert.Empty(t, notificationsFor(t, db, reporter.ID))
}

func TestFileReportDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	admin := createUser(t, db, "admin", models.RoleAdmin)
	listing := createListing(t, db, seller, "30000")

	_, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
	require.NoError(t, err)

	_, err = svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam again"})
	assert.Equal(t, KindConflict, KindOf(err))

	// the rejected duplicate did not reach the admins
	assert.Len(t, notificationsFor(t, db, admin.ID), 1)

	// a different reporter still can
	other := createUser(t, db, "other", models.RoleUser)
	_, err = svc.File(FileReportInput{ReporterID: other.ID, ListingID: listing.ID, Reason: "spam"})
	assert.NoError(t, err)
}

// The duplicate guard keys on (reporter, target type, target id): a user
// report sharing the numeric id of an already-reported listing is a distinct
// target, not a duplicate.
func TestReportTargetTypeDiscriminates(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	listing := createListing(t, db, seller, "30000")

	_, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
	require.NoError(t, err)

	userReport := models.Report{
		ReporterID: reporter.ID,
		TargetType: models.ReportTargetUser,
		TargetID:   listing.ID,
		Reason:     "harassment",
		Status:     models.ReportPending,
	}
	require.NoError(t, db.Create(&userReport).Error)

	reports, err := svc.ListByReporter(reporter.ID)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestFileReportListingMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	reporter := createUser(t, db, "reporter", models.RoleUser)

	_, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: 777, Reason: "spam"})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUpdateReportStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	createUser(t, db, "admin", models.RoleAdmin)
	listing := createListing(t, db, seller, "30000")

	report, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(report.ID, models.ReportProcessed, "listing taken down", true)
	require.NoError(t, err)
	assert.Equal(t, models.ReportProcessed, updated.Status)
	assert.Equal(t, "listing taken down", updated.AdminNote)
	require.NotNil(t, updated.ProcessedAt)

	notifications := notificationsFor(t, db, reporter.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationReport, notifications[0].Category)
	assert.Contains(t, notifications[0].Message, listing.Title)
}

func TestUpdateReportStatusRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	listing := createListing(t, db, seller, "30000")

	report, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(report.ID, models.ReportProcessed, "", false)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = svc.UpdateStatus(report.ID, "escalated", "", true)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, err = svc.UpdateStatus(999, models.ReportProcessed, "", true)
	assert.Equal(t, KindNotFound, KindOf(err))

	// none of the failed attempts reached the reporter
	assert.Empty(t, notificationsFor(t, db, reporter.ID))
}

func TestListReportsAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)

	for i := 0; i < 2; i++ {
		listing := createListing(t, db, seller, "30000")
		_, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
		require.NoError(t, err)
	}

	_, err := svc.ListAll("", false)
	assert.Equal(t, KindForbidden, KindOf(err))

	reports, err := svc.ListAll("", true)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	pending, err := svc.ListAll(models.ReportPending, true)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	processed, err := svc.ListAll(models.ReportProcessed, true)
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestReportStatusCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)

	var first *models.Report
	for i := 0; i < 3; i++ {
		listing := createListing(t, db, seller, "30000")
		report, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
		require.NoError(t, err)
		if first == nil {
			first = report
		}
	}
	_, err := svc.UpdateStatus(first.ID, models.ReportRejected, "", true)
	require.NoError(t, err)

	counts, err := svc.StatusCounts()
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts["total"])
	assert.EqualValues(t, 2, counts[models.ReportPending])
	assert.EqualValues(t, 1, counts[models.ReportRejected])
	assert.EqualValues(t, 0, counts[models.ReportProcessed])
}

func TestGetReportAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	outsider := createUser(t, db, "outsider", models.RoleUser)
	listing := createListing(t, db, seller, "30000")

	report, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
	require.NoError(t, err)

	got, err := svc.GetByID(report.ID, reporter.ID, false)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)

	_, err = svc.GetByID(report.ID, outsider.ID, false)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = svc.GetByID(report.ID, outsider.ID, true)
	assert.NoError(t, err)
}

func TestDeleteReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seller := createUser(t, db, "seller", models.RoleUser)
	reporter := createUser(t, db, "reporter", models.RoleUser)
	listing := createListing(t, db, seller, "30000")

	report, err := svc.File(FileReportInput{ReporterID: reporter.ID, ListingID: listing.ID, Reason: "spam"})
	require.NoError(t, err)

	assert.Equal(t, KindForbidden, KindOf(svc.Delete(report.ID, false)))
	require.NoError(t, svc.Delete(report.ID, true))
	assert.Equal(t, KindNotFound, KindOf(svc.Delete(report.ID, true)))
}
