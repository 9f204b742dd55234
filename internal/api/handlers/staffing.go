package handlers

import (
	"net/http"

	"staffing-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardTemplate is the name of the dashboard page template
const DashboardTemplate = "dashboard.html"

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "gap_turni.xlsx"
)

// StaffingHandler handles the dashboard page and the report API
type StaffingHandler struct {
	service service.StaffingServiceInterface
}

// NewStaffingHandler creates a new staffing handler
func NewStaffingHandler(service service.StaffingServiceInterface) *StaffingHandler {
	return &StaffingHandler{service: service}
}

// Dashboard renders the dashboard shell; data is fetched from the report API
// @Summary Dashboard page
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "Dashboard page"
// @Success 303 {string} string "Redirect to the login page"
// @Router / [get]
func (h *StaffingHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, DashboardTemplate, gin.H{})
}

// GetReport handles GET /api/v1/report
// @Summary Staffing report
// @Description Load the staffing view, filter by depot and inclusive date range, and aggregate per day.
// @Description Without a depot parameter every depot is selected; "depot=" with no value selects none.
// @Tags report
// @Produce json
// @Param depot query []string false "Depots to include" collectionFormat(multi)
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} service.ReportResponse "Report"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Query failed"
// @Failure 503 {object} ErrorResponse "Data source unavailable"
// @Router /api/v1/report [get]
func (h *StaffingHandler) GetReport(c *gin.Context) {
	resp, err := h.service.BuildReport(c, filterRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportReport handles GET /api/v1/report/export.xlsx
// @Summary Export the daily table
// @Description Same filters as the report; returns the per-day table as an xlsx workbook.
// @Tags report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param depot query []string false "Depots to include" collectionFormat(multi)
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Query failed"
// @Failure 503 {object} ErrorResponse "Data source unavailable"
// @Router /api/v1/report/export.xlsx [get]
func (h *StaffingHandler) ExportReport(c *gin.Context) {
	data, err := h.service.ExportXLSX(c, filterRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// filterRequest reads the filter controls from the query string. A present
// but empty depot parameter is an explicit empty selection.
func filterRequest(c *gin.Context) *service.FilterRequest {
	depots, present := c.GetQueryArray("depot")
	return &service.FilterRequest{
		Depots:    depots,
		DepotsSet: present,
		From:      c.Query("from"),
		To:        c.Query("to"),
	}
}
