package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sekenkampus/api-go/models"
	"gorm.io/gorm"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type FileReportInput struct {
	ReporterID  uint
	ListingID   uint
	Reason      string
	Description string
}

// File records a listing report and notifies every admin in the same atomic
// unit. A reporter may report a given target once.
func (s *ReportService) File(in FileReportInput) (*models.Report, error) {
	var listing models.Listing
	if err := s.DB.First(&listing, in.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("listing not found")
		}
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&models.Report{}).
		Where("reporter_id = ? AND target_type = ? AND target_id = ?",
			in.ReporterID, models.ReportTargetListing, in.ListingID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, Conflict("you have already reported this listing")
	}

	var reporter models.User
	if err := s.DB.First(&reporter, in.ReporterID).Error; err != nil {
		return nil, err
	}

	var admins []models.User
	if err := s.DB.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		return nil, err
	}

	report := models.Report{
		ReporterID:  in.ReporterID,
		TargetType:  models.ReportTargetListing,
		TargetID:    in.ListingID,
		Reason:      in.Reason,
		Description: in.Description,
		Status:      models.ReportPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return asConflict(err, "you have already reported this listing")
		}
		// Fan out to every admin; each tracks its own read state.
		for _, admin := range admins {
			if err := createNotification(tx, admin.ID, "New Listing Report",
				fmt.Sprintf("%s has reported the listing %q", reporter.Name, listing.Title),
				models.NotificationReport); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Listing = &listing
	return &report, nil
}

// UpdateStatus resolves a report and tells the reporter the outcome, both in
// one unit. Admin only; controllers enforce the role, the service re-checks.
func (s *ReportService) UpdateStatus(reportID uint, status, adminNote string, isAdmin bool) (*models.Report, error) {
	if !isAdmin {
		return nil, Forbidden("only admin can update report status")
	}
	if !models.ValidReportStatus(status) {
		return nil, InvalidInput("invalid status value")
	}

	var report models.Report
	if err := s.DB.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("report not found")
		}
		return nil, err
	}
	s.attachTarget(&report)

	now := time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Report{}).Where("id = ?", report.ID).Updates(map[string]interface{}{
			"status":       status,
			"admin_note":   adminNote,
			"processed_at": now,
		}).Error; err != nil {
			return err
		}
		return createNotification(tx, report.ReporterID, "Report Status Updated",
			fmt.Sprintf("Your report for %q has been %s", s.targetLabel(&report), status),
			models.NotificationReport)
	})
	if err != nil {
		return nil, err
	}

	report.Status = status
	report.AdminNote = adminNote
	report.ProcessedAt = &now
	return &report, nil
}

// ListAll returns every report, optionally filtered by status. Admin only.
func (s *ReportService) ListAll(status string, isAdmin bool) ([]models.Report, error) {
	if !isAdmin {
		return nil, Forbidden("only admin can access all reports")
	}

	query := s.DB.Preload("Reporter").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	s.attachTargets(reports)
	return reports, nil
}

// StatusCounts returns report totals per status for the admin dashboard.
func (s *ReportService) StatusCounts() (map[string]int64, error) {
	counts := map[string]int64{}
	var total int64
	if err := s.DB.Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, err
	}
	counts["total"] = total
	for _, status := range []string{models.ReportPending, models.ReportProcessed, models.ReportRejected} {
		var n int64
		if err := s.DB.Model(&models.Report{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

// ListByReporter returns the reports a user has filed.
func (s *ReportService) ListByReporter(reporterID uint) ([]models.Report, error) {
	var reports []models.Report
	err := s.DB.
		Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	s.attachTargets(reports)
	return reports, nil
}

// GetByID returns a report to its reporter or an admin.
func (s *ReportService) GetByID(id, actorID uint, isAdmin bool) (*models.Report, error) {
	var report models.Report
	if err := s.DB.Preload("Reporter").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("report not found")
		}
		return nil, err
	}
	if !isAdmin && report.ReporterID != actorID {
		return nil, Forbidden("unauthorized access to report")
	}
	s.attachTarget(&report)
	return &report, nil
}

// Delete removes a report outright. Admin only.
func (s *ReportService) Delete(id uint, isAdmin bool) error {
	if !isAdmin {
		return Forbidden("only admin can delete reports")
	}
	res := s.DB.Delete(&models.Report{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return NotFound("report not found")
	}
	return nil
}

// attachTarget resolves the (target_type, target_id) pair to the reported
// listing or user. A soft-deleted listing still resolves; a hard-deleted
// target leaves the relation nil.
func (s *ReportService) attachTarget(report *models.Report) {
	switch report.TargetType {
	case models.ReportTargetListing:
		var listing models.Listing
		if err := s.DB.Unscoped().Preload("User").First(&listing, report.TargetID).Error; err == nil {
			report.Listing = &listing
		}
	case models.ReportTargetUser:
		var user models.User
		if err := s.DB.First(&user, report.TargetID).Error; err == nil {
			report.TargetUser = &user
		}
	}
}

func (s *ReportService) attachTargets(reports []models.Report) {
	for i := range reports {
		s.attachTarget(&reports[i])
	}
}

func (s *ReportService) targetLabel(report *models.Report) string {
	switch {
	case report.Listing != nil:
		return report.Listing.Title
	case report.TargetUser != nil:
		return report.TargetUser.Name
	default:
		return fmt.Sprintf("%s #%d", report.TargetType, report.TargetID)
	}
}
