package models

import (
	"database/sql"
	"time"
)

// ReportRecord is one candidate-application row consumed by the institute job
// report.
type ReportRecord struct {
	InstituteCode         string  `json:"instituteCode"`
	UserInstituteCode     string  `json:"userInstituteCode"`
	InstituteEmailID      string  `json:"instituteEmailId"`
	InstituteMobileNumber string  `json:"instituteMobileNumber"`
	InstituteName         string  `json:"instituteName"`
	ContactType           string  `json:"contactType"`
	JobName               string  `json:"jobName"`
	JobStatus             string  `json:"jobStatus"`
	PreInterviewID        int     `json:"preInterviewId"`
	JobPostDate           string  `json:"jobPostDate"` // ISO date string
	FirstName             string  `json:"firstName"`
	MobileNumber          string  `json:"mobileNumber"`
	EmailID               string  `json:"emailId"`
	CandidateID           int     `json:"candidateId"`
	CandidateStatus       string  `json:"candidateStatus"`
	ReviewStatus          *string `json:"review_status"` // nil means no review scheduled yet
	AIInterview           string  `json:"aiInterview"`
	Shortlisted           string  `json:"shortlisted"`
	Offered               string  `json:"offered"`
	IntScore              int     `json:"intScore"`
	Percentile            string  `json:"percentile"`
	ApplicantSuitability  string  `json:"applicantSuitability"`
}

// PostDate parses the record's jobPostDate, returning the zero time on bad
// input so filter comparisons simply fail closed.
func (r ReportRecord) PostDate() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, r.JobPostDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

type ReportRecordModel struct {
	DB *sql.DB
}

func NewReportRecordModel(db *sql.DB) *ReportRecordModel {
	return &ReportRecordModel{DB: db}
}

// GetAll fetches the flat application-record list the report page consumes.
func (m *ReportRecordModel) GetAll() ([]ReportRecord, error) {
	records := []ReportRecord{}
	query := `
		SELECT institute_code, user_institute_code, institute_email_id, institute_mobile_number,
		       institute_name, contact_type, job_name, job_status, pre_interview_id, job_post_date,
		       first_name, mobile_number, email_id, candidate_id, candidate_status, review_status,
		       ai_interview, shortlisted, offered, int_score, percentile, applicant_suitability
		FROM institute_job_applications
		ORDER BY job_post_date DESC
	`
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec ReportRecord
		var reviewStatus, percentile, suitability sql.NullString
		var intScore sql.NullInt64
		err := rows.Scan(
			&rec.InstituteCode, &rec.UserInstituteCode, &rec.InstituteEmailID, &rec.InstituteMobileNumber,
			&rec.InstituteName, &rec.ContactType, &rec.JobName, &rec.JobStatus, &rec.PreInterviewID, &rec.JobPostDate,
			&rec.FirstName, &rec.MobileNumber, &rec.EmailID, &rec.CandidateID, &rec.CandidateStatus, &reviewStatus,
			&rec.AIInterview, &rec.Shortlisted, &rec.Offered, &intScore, &percentile, &suitability,
		)
		if err != nil {
			return nil, err
		}
		if reviewStatus.Valid {
			v := reviewStatus.String
			rec.ReviewStatus = &v
		}
		if percentile.Valid {
			rec.Percentile = percentile.String
		}
		if suitability.Valid {
			rec.ApplicantSuitability = suitability.String
		}
		if intScore.Valid {
			rec.IntScore = int(intScore.Int64)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
