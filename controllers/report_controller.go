package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sekenkampus/api-go/services"
	"github.com/sekenkampus/api-go/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB      *gorm.DB
	Service *services.ReportService
}

type FileReportRequest struct {
	ListingID   uint   `json:"listing_id" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

type UpdateReportStatusRequest struct {
	Status    string `json:"status" binding:"required,oneof=pending processed rejected"`
	AdminNote string `json:"admin_note"`
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Service: services.NewReportService(db)}
}

// FileReport godoc
// @Summary Report a listing
// @Description Files a report and notifies every admin
// @Tags reports
// @Accept json
// @Produce json
// @Param report body FileReportRequest true "Report submission"
// @Success 201 {object} models.Report
// @Router /reports [post]
func (rc *ReportController) FileReport(c *gin.Context) {
	user := utils.GetUser(c)
	var req FileReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := rc.Service.File(services.FileReportInput{
		ReporterID:  user.UserID,
		ListingID:   req.ListingID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    report,
		Message: "Report submitted successfully",
	})
}

// GetAllReports godoc
// @Summary List all reports
// @Description Admin view of reports with optional status filter and per-status counts
// @Tags reports
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{}
// @Router /reports [get]
func (rc *ReportController) GetAllReports(c *gin.Context) {
	user := utils.GetUser(c)
	status := c.Query("status")

	reports, err := rc.Service.ListAll(status, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	counts, err := rc.Service.StatusCounts()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    reports,
		Meta:    gin.H{"count": len(reports), "counts": counts},
	})
}

func (rc *ReportController) GetMyReports(c *gin.Context) {
	user := utils.GetUser(c)

	reports, err := rc.Service.ListByReporter(user.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    reports,
		Meta:    gin.H{"count": len(reports)},
	})
}

func (rc *ReportController) GetReport(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("reportId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	report, err := rc.Service.GetByID(uint(id), user.UserID, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: report})
}

// UpdateReportStatus godoc
// @Summary Resolve a report
// @Description Updates a report's status and notifies the reporter
// @Tags reports
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param status body UpdateReportStatusRequest true "Resolution"
// @Success 200 {object} models.Report
// @Router /reports/{reportId}/status [put]
func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("reportId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var req UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := rc.Service.UpdateStatus(uint(id), req.Status, req.AdminNote, user.IsAdmin())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    report,
		Message: "Report status updated successfully",
	})
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("reportId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	if err := rc.Service.Delete(uint(id), user.IsAdmin()); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "Report deleted successfully",
	})
}
