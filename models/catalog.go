package models

// Master lists returned by the interview-creation filters endpoint.

type Skill struct {
	ID   string `json:"id"`
	Name string `json:"favourite_subject"`
}

type CompetencySubject struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RoleID string `json:"roleId,omitempty"`
}

type DomainRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Company struct {
	ID   string `json:"company_id"`
	Name string `json:"company_name"`
}

type CompanyURL struct {
	CompanyID  string `json:"company_id"`
	CompanyURL string `json:"company_url"`
}

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Topic struct {
	ID        string `json:"topicId"`
	Name      string `json:"topicName"`
	SubjectID string `json:"subjectId"`
}

type InterviewSummary struct {
	PreInterviewID string `json:"preInterviewId"`
	Name           string `json:"interviewName"`
	Status         string `json:"status"`
}

type Corporate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreationFilters aggregates every master list the job form needs.
type CreationFilters struct {
	CompanyNames      []Company           `json:"companyNames"`
	CompanyURLs       []CompanyURL        `json:"companyUrls"`
	RoleNames         []DomainRole        `json:"roleNames"`
	CompetencySubject []CompetencySubject `json:"competencySubject"`
	Skills            []Skill             `json:"skills"`
	Locations         []Location          `json:"locations"`
	InterviewList     []InterviewSummary  `json:"interviewList"`
}

// Preference is one key/value pair from the attempt-details preference list.
type Preference struct {
	FieldName  string `json:"fieldName"`
	FieldValue string `json:"fieldValue"`
}
