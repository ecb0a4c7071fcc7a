package models

import "time"

// Report statuses.
const (
	ReportPending   = "pending"
	ReportProcessed = "processed"
	ReportRejected  = "rejected"
)

// Report target types.
const (
	ReportTargetListing = "listing"
	ReportTargetUser    = "user"
)

func ValidReportStatus(s string) bool {
	switch s {
	case ReportPending, ReportProcessed, ReportRejected:
		return true
	}
	return false
}

// A report points at a listing or a user through the (target_type, target_id)
// pair; the target relations are resolved by the report service, not by the
// store.
type Report struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ReporterID  uint       `gorm:"not null;uniqueIndex:idx_reports_reporter_target" json:"reporter_id"`
	Reporter    User       `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	TargetType  string     `gorm:"size:20;not null;default:'listing';uniqueIndex:idx_reports_reporter_target" json:"target_type"` // "listing" or "user"
	TargetID    uint       `gorm:"not null;uniqueIndex:idx_reports_reporter_target" json:"target_id"`
	Listing     *Listing   `json:"listing,omitempty" gorm:"-"`
	TargetUser  *User      `json:"target_user,omitempty" gorm:"-"`
	Reason      string     `gorm:"not null" json:"reason"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;not null;default:'pending'" json:"status"` // "pending", "processed", "rejected"
	AdminNote   string     `gorm:"type:text" json:"admin_note"`
	ProcessedAt *time.Time `json:"processed_at"`
}
