package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"recruitdash/models"
	"recruitdash/services"
	"recruitdash/utils"
)

// ReportController serves the institute job report: the flat application
// records, the filtered and grouped aggregation, and the per-group CSV export.
type ReportController struct {
	records *models.ReportRecordModel
	report  *services.ReportService
	logger  *utils.Logger
}

func NewReportController(records *models.ReportRecordModel) *ReportController {
	return &ReportController{
		records: records,
		report:  services.NewReportService(),
		logger:  utils.NewLogger("report-controller"),
	}
}

// reportGroupView is a ReportGroup with the derived name lists materialized
// for the response.
type reportGroupView struct {
	*services.ReportGroup
	ApplicantNames     []string `json:"applicantNames"`
	ShortlistedNames   []string `json:"shortlistedNames"`
	AIInterviewedNames []string `json:"aiInterviewedNames"`
	OfferedNames       []string `json:"offeredNames"`
}

// GetRecords returns the flat application records plus the distinct institute
// and job lists used to populate the filter dropdowns.
func (rc *ReportController) GetRecords(c *gin.Context) {
	records, err := rc.records.GetAll()
	if err != nil {
		rc.logger.Error("Failed to load report records", err)
		utils.InternalServerError(c, "Failed to load report records", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report records loaded", gin.H{
		"records":    records,
		"institutes": rc.report.UniqueInstitutes(records),
		"jobs":       rc.report.UniqueJobs(records),
	})
}

// GetReport returns the aggregated report for the query-string filters and
// sort state. Dropdown filters use "all" for no restriction.
func (rc *ReportController) GetReport(c *gin.Context) {
	records, err := rc.records.GetAll()
	if err != nil {
		utils.InternalServerError(c, "Failed to load report records", err)
		return
	}

	filter := services.ReportFilter{
		SearchTerm:        c.Query("searchTerm"),
		SelectedInstitute: c.DefaultQuery("institute", "all"),
		SelectedStatus:    c.DefaultQuery("status", "all"),
		SelectedAI:        c.DefaultQuery("aiInterview", "all"),
		SelectedJob:       c.DefaultQuery("interview", "all"),
	}
	if from, ok := parseDateParam(c.Query("dateFrom")); ok {
		filter.DateFrom = &from
	}
	if to, ok := parseDateParam(c.Query("dateTo")); ok {
		filter.DateTo = &to
	}

	state := services.SortState{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
	}

	groups := rc.report.Aggregate(records, filter, state)
	views := make([]reportGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, reportGroupView{
			ReportGroup:        g,
			ApplicantNames:     g.ApplicantNames(),
			ShortlistedNames:   g.ShortlistedNames(),
			AIInterviewedNames: g.AIInterviewedNames(),
			OfferedNames:       g.OfferedNames(),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "Report generated", gin.H{
		"groups": views,
		"total":  len(views),
	})
}

// DownloadCSV streams the CSV export for one (institute, interview) group.
func (rc *ReportController) DownloadCSV(c *gin.Context) {
	instituteName := c.Query("instituteName")
	instituteCode := c.Query("instituteCode")
	preInterviewID, err := strconv.Atoi(c.Query("preInterviewId"))
	if err != nil {
		utils.BadRequestError(c, "preInterviewId must be a number", err)
		return
	}
	if instituteCode == "" {
		utils.BadRequestError(c, "instituteCode is required", nil)
		return
	}

	records, err := rc.records.GetAll()
	if err != nil {
		utils.InternalServerError(c, "Failed to load report records", err)
		return
	}

	fileName, data, err := rc.report.GroupCSV(records, instituteName, instituteCode, preInterviewID, time.Now())
	if err != nil {
		utils.NotFoundError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "text/csv", data)
}

func parseDateParam(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
