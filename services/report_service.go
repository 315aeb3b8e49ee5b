package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"recruitdash/models"
)

// ReportGroup is the set of application records sharing one
// (instituteCode, jobName) pair. The first record for the key seeds the
// display metadata; counts are derived on demand, never stored.
type ReportGroup struct {
	InstituteName         string                `json:"instituteName"`
	InstituteCode         string                `json:"instituteCode"`
	InstituteMobileNumber string                `json:"instituteMobileNumber"`
	InstituteEmailID      string                `json:"instituteEmailId"`
	JobName               string                `json:"jobName"`
	JobStatus             string                `json:"jobStatus"`
	PreInterviewID        int                   `json:"preInterviewId"`
	JobPostDate           string                `json:"jobPostDate"`
	ContactType           string                `json:"contactType"`
	Items                 []models.ReportRecord `json:"items"`
}

// ApplicantNames lists every candidate in the group.
func (g *ReportGroup) ApplicantNames() []string {
	names := []string{}
	for _, item := range g.Items {
		names = append(names, item.FirstName)
	}
	return names
}

// ShortlistedNames lists candidates with shortlisted="Y".
func (g *ReportGroup) ShortlistedNames() []string {
	return g.namesWhere(func(r models.ReportRecord) bool { return r.Shortlisted == "Y" })
}

// AIInterviewedNames lists candidates with aiInterview="Y".
func (g *ReportGroup) AIInterviewedNames() []string {
	return g.namesWhere(func(r models.ReportRecord) bool { return r.AIInterview == "Y" })
}

// OfferedNames lists candidates with offered="Y".
func (g *ReportGroup) OfferedNames() []string {
	return g.namesWhere(func(r models.ReportRecord) bool { return r.Offered == "Y" })
}

func (g *ReportGroup) namesWhere(match func(models.ReportRecord) bool) []string {
	names := []string{}
	for _, item := range g.Items {
		if match(item) {
			names = append(names, item.FirstName)
		}
	}
	return names
}

// ReportFilter holds the active filter selections. The string filters use
// "all" (or empty) for no restriction.
type ReportFilter struct {
	SearchTerm        string     `json:"searchTerm"`
	SelectedInstitute string     `json:"selectedInstitute"`
	SelectedStatus    string     `json:"selectedStatus"`
	SelectedAI        string     `json:"selectedAiInterview"`
	SelectedJob       string     `json:"selectedInterview"`
	DateFrom          *time.Time `json:"dateFrom,omitempty"`
	DateTo            *time.Time `json:"dateTo,omitempty"`
}

// SortState tracks the active sort key and direction. Clicking the same key
// toggles direction; a new key resets to ascending.
type SortState struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// Toggle applies a header click to the sort state.
func (s *SortState) Toggle(key string) {
	if s.SortBy == key {
		if s.SortOrder == "asc" {
			s.SortOrder = "desc"
		} else {
			s.SortOrder = "asc"
		}
		return
	}
	s.SortBy = key
	s.SortOrder = "asc"
}

// ReportService runs the filter → group → sort pipeline over the flat
// application-record list. Recomputation is unconditional and deterministic,
// so re-running on the same inputs yields an identical group list.
type ReportService struct {
	collator *collate.Collator
}

func NewReportService() *ReportService {
	return &ReportService{
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Filter keeps records matching every active criterion.
func (s *ReportService) Filter(records []models.ReportRecord, f ReportFilter) []models.ReportRecord {
	out := []models.ReportRecord{}
	term := strings.ToLower(f.SearchTerm)
	status := strings.ToLower(strings.TrimSpace(f.SelectedStatus))
	aiFilter := strings.ToLower(strings.TrimSpace(f.SelectedAI))

	for _, item := range records {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(item.InstituteName), term) ||
			strings.Contains(strings.ToLower(item.InstituteCode), term)

		matchesInstitute := f.SelectedInstitute == "" || f.SelectedInstitute == "all" ||
			item.InstituteCode == f.SelectedInstitute

		matchesStatus := status == "" || status == "all" ||
			(status == "shortlisted" && item.Shortlisted == "Y") ||
			(status == "offered" && item.Offered == "Y")

		matchesAI := aiFilter == "" || aiFilter == "all" ||
			strings.ToLower(strings.TrimSpace(item.AIInterview)) == aiFilter

		matchesJob := f.SelectedJob == "" || f.SelectedJob == "all" ||
			f.SelectedJob == item.JobName

		postDate := item.PostDate()
		afterFrom := f.DateFrom == nil || !postDate.Before(*f.DateFrom)
		beforeTo := f.DateTo == nil || !postDate.After(*f.DateTo)

		if matchesSearch && matchesInstitute && matchesStatus && matchesAI && matchesJob && afterFrom && beforeTo {
			out = append(out, item)
		}
	}
	return out
}

// Group buckets records by instituteCode|jobName, preserving the order of
// first appearance among keys.
func (s *ReportService) Group(records []models.ReportRecord) []*ReportGroup {
	index := map[string]*ReportGroup{}
	groups := []*ReportGroup{}

	for _, item := range records {
		key := item.InstituteCode + "|" + item.JobName
		g, ok := index[key]
		if !ok {
			g = &ReportGroup{
				InstituteName:         item.InstituteName,
				InstituteCode:         item.InstituteCode,
				InstituteMobileNumber: item.InstituteMobileNumber,
				InstituteEmailID:      item.InstituteEmailID,
				JobName:               item.JobName,
				JobStatus:             item.JobStatus,
				PreInterviewID:        item.PreInterviewID,
				JobPostDate:           item.JobPostDate,
				ContactType:           item.ContactType,
			}
			index[key] = g
			groups = append(groups, g)
		}
		g.Items = append(g.Items, item)
	}
	return groups
}

// Sort orders groups by the active key: string keys case-insensitively via
// locale collation, date keys by epoch difference. Unknown keys leave the
// order untouched.
func (s *ReportService) Sort(groups []*ReportGroup, state SortState) []*ReportGroup {
	sorted := append([]*ReportGroup{}, groups...)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := 0
		switch state.SortBy {
		case "instituteName":
			cmp = s.collator.CompareString(sorted[i].InstituteName, sorted[j].InstituteName)
		case "instituteCode":
			cmp = s.collator.CompareString(sorted[i].InstituteCode, sorted[j].InstituteCode)
		case "jobName":
			cmp = s.collator.CompareString(sorted[i].JobName, sorted[j].JobName)
		case "jobStatus":
			cmp = s.collator.CompareString(sorted[i].JobStatus, sorted[j].JobStatus)
		case "contactType":
			cmp = s.collator.CompareString(sorted[i].ContactType, sorted[j].ContactType)
		case "jobPostDate":
			a := parsePostDate(sorted[i].JobPostDate).UnixMilli()
			b := parsePostDate(sorted[j].JobPostDate).UnixMilli()
			switch {
			case a < b:
				cmp = -1
			case a > b:
				cmp = 1
			}
		default:
			return false
		}
		if state.SortOrder == "desc" {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// Aggregate runs the whole pipeline in one call.
func (s *ReportService) Aggregate(records []models.ReportRecord, f ReportFilter, state SortState) []*ReportGroup {
	return s.Sort(s.Group(s.Filter(records, f)), state)
}

// UniqueInstitutes lists each institute once, keyed by code, in record order.
func (s *ReportService) UniqueInstitutes(records []models.ReportRecord) []models.ReportRecord {
	seen := map[string]bool{}
	out := []models.ReportRecord{}
	for _, r := range records {
		if !seen[r.InstituteCode] {
			seen[r.InstituteCode] = true
			out = append(out, models.ReportRecord{InstituteCode: r.InstituteCode, InstituteName: r.InstituteName})
		}
	}
	return out
}

// UniqueJobs lists each job name once, in record order.
func (s *ReportService) UniqueJobs(records []models.ReportRecord) []models.ReportRecord {
	seen := map[string]bool{}
	out := []models.ReportRecord{}
	for _, r := range records {
		if !seen[r.JobName] {
			seen[r.JobName] = true
			out = append(out, models.ReportRecord{JobName: r.JobName, PreInterviewID: r.PreInterviewID})
		}
	}
	return out
}

// AIStatusLabel maps the raw AI-interview flags to the export label. A nil
// review status means the review never started, which reads as Scheduled; an
// empty one means it started and stalled.
func AIStatusLabel(r models.ReportRecord) string {
	if r.AIInterview == "Y" {
		return "Completed"
	}
	if r.ReviewStatus == nil {
		return "Scheduled"
	}
	return "Incomplete"
}

// GroupCSV builds the per-group export: the fixed 8-column table over the raw
// rows for one institute+interview, plus the download file name
// {jobName}"{preInterviewId}"_{instituteName}_{DD-MM-YYYY}.csv.
func (s *ReportService) GroupCSV(records []models.ReportRecord, instituteName, instituteCode string, preInterviewID int, now time.Time) (string, []byte, error) {
	rows := []models.ReportRecord{}
	for _, r := range records {
		if r.InstituteCode == instituteCode && r.PreInterviewID == preInterviewID {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("no records for institute %s interview %d", instituteCode, preInterviewID)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"Job Name", "Candiate Name", "Email Id", "Phone Number",
		"AI Interview Status", "Interview Score", "Recruitment Status", "Interview Performance",
	}
	if err := w.Write(header); err != nil {
		return "", nil, err
	}
	for _, r := range rows {
		record := []string{
			r.JobName,
			r.FirstName,
			r.EmailID,
			r.MobileNumber,
			AIStatusLabel(r),
			fmt.Sprintf("%d", r.IntScore),
			r.CandidateStatus,
			r.ApplicantSuitability,
		}
		if err := w.Write(record); err != nil {
			return "", nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	fileName := fmt.Sprintf("%s\"%d\"_%s_%s.csv",
		rows[0].JobName, preInterviewID, instituteName, now.Format("02-01-2006"))
	return fileName, buf.Bytes(), nil
}

func parsePostDate(s string) time.Time {
	return models.ReportRecord{JobPostDate: s}.PostDate()
}
