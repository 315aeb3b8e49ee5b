package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"recruitdash/models"
)

var skillSplitPattern = regexp.MustCompile(`\s*,\s*`)

// DraftHydrationService populates a JobDraft from the two modify-mode backend
// calls. Attempt details load first, edit details second; where both populate
// the same field the later value wins.
type DraftHydrationService struct{}

func NewDraftHydrationService() *DraftHydrationService {
	return &DraftHydrationService{}
}

// ApplyAttemptDetails maps the getAttempdetails response onto the draft.
func (s *DraftHydrationService) ApplyAttemptDetails(draft *models.JobDraft, data *AttemptDetailsData) {
	jobForm := map[string]interface{}{}
	if len(data.JobForm) > 0 {
		jobForm = data.JobForm[0]
	}

	if v := strVal(jobForm, "company_id"); v != "" {
		draft.CompanyIDList = splitCSV(v)
	} else {
		draft.CompanyIDList = []string{}
	}
	draft.JobName = strVal(jobForm, "interviewName")
	draft.RecruiterEmail = strVal(jobForm, "RecruiterEmail")
	draft.CompanyURL = strVal(jobForm, "company_url")
	draft.JobStartDate = strVal(jobForm, "interviewStartDate")
	draft.JobExpireDate = strVal(jobForm, "interviewExpireDate")
	draft.JobIndustryType = listVal(jobForm, "vcdJobIndustryType")
	draft.Headcount = strVal(jobForm, "iHeadcount")

	switch strVal(jobForm, "outstationFlag") {
	case "Y":
		draft.Outstation = "Y"
	case "N":
		draft.Outstation = "N"
	default:
		draft.Outstation = ""
	}

	draft.ApmType = strVal(jobForm, "apmType")
	draft.RequiredSkills = splitSkills(strVal(jobForm, "requiredSkills"))
	draft.UltraMandatorySkills = splitSkills(strVal(jobForm, "ultraMandatorySkill"))
	draft.GoodToHaveSkills = splitSkills(strVal(jobForm, "goodToHaveSkill"))
	draft.ShowJDSection = ynVal(jobForm, "showJDsection")
	draft.JobDescriptionHTML = strVal(jobForm, "JDsection")
	draft.EmploymentType = strVal(jobForm, "employmentType")
	draft.BondAgreementRequired = strVal(jobForm, "bondAgreementRequired")
	draft.WorkingDays = strVal(jobForm, "iWorkingDays")
	draft.JobMode = listVal(jobForm, "iJobMode")
	draft.JobShift = listVal(jobForm, "ishift")
	draft.NoticePeriod = strVal(jobForm, "inoticePeriod")
	draft.CompanyEmployeeStrength = strVal(jobForm, "iStrength")
	draft.ServiceType = strVal(jobForm, "serviceType")
	draft.DomainRoleID = strVal(jobForm, "roleId")
	draft.CompetencySubjectIDs = listVal(jobForm, "subjectId")

	draft.AttemptCount = data.AttemptedDetails

	s.applyPreferences(draft, data.Preference)
}

// applyPreferences folds the preference key/value list into the draft.
// Ranges arrive as "min-max" strings, lists as comma-separated values.
func (s *DraftHydrationService) applyPreferences(draft *models.JobDraft, prefs []models.Preference) {
	values := map[string]string{}
	for _, p := range prefs {
		if p.FieldName != "" && p.FieldValue != "" {
			values[p.FieldName] = p.FieldValue
		}
	}

	if v := values["workExperience"]; v != "" {
		if lo, hi, ok := splitRange(v); ok {
			draft.ExpMin = lo
			draft.ExpMax = hi
		}
	}
	if v := values["currentSalary"]; v != "" {
		if lo, hi, ok := splitRange(v); ok {
			draft.SalaryMin = lo
			draft.SalaryMax = hi
		}
	}
	if v := values["shift"]; v != "" {
		draft.JobShift = splitCSV(v)
	}
	if v := values["noticePeriod"]; v != "" {
		draft.NoticePeriod = v
	}
	if v := values["workLocationPreference"]; v != "" {
		draft.JobMode = splitCSV(v)
	}
	if v := values["currentLocation"]; v != "" {
		draft.JobLocationIDs = splitCSV(v)
	}
	if v := values["jobType"]; v != "" {
		draft.JobIndustryType = splitCSV(v)
	}
}

// ApplyEditDetails maps the editInterviewDetails response onto the draft,
// overwriting anything attempt details already set. Fields come with
// alternate key names depending on the backend code path.
func (s *DraftHydrationService) ApplyEditDetails(draft *models.JobDraft, d map[string]interface{}) {
	if v := strVal(d, "jobName"); v != "" {
		draft.JobName = v
	}
	if v := strVal(d, "serviceType"); v != "" {
		draft.ServiceType = v
	}
	if v := strVal(d, "recruiterEmail"); v != "" {
		draft.RecruiterEmail = v
	}
	if v := strVal(d, "companyUrl"); v != "" {
		draft.CompanyURL = v
	}
	if v := strVal(d, "domainRoleId", "roleId"); v != "" {
		draft.DomainRoleID = v
	}
	if v := listVal(d, "competencySubjectId", "subjectId"); len(v) > 0 {
		draft.CompetencySubjectIDs = v
	}
	if v := listVal(d, "jobIndustryType", "jobType"); len(v) > 0 {
		draft.JobIndustryType = v
	}

	if v := strVal(d, "jobStartDate", "interviewStartDate"); v != "" {
		draft.JobStartDate = FormatDateForInput(v)
	}
	if v := strVal(d, "jobExpireDate", "interviewEndDate"); v != "" {
		draft.JobExpireDate = FormatDateForInput(v)
	}

	if v := strVal(d, "headcount"); v != "" {
		draft.Headcount = v
	}

	if v := skillIDList(d["requiredSkills"]); v != nil {
		draft.RequiredSkills = v
	}
	if v := skillIDList(d["ultraMandatorySkill"]); v != nil {
		draft.UltraMandatorySkills = v
	}
	if v := skillIDList(d["goodToHaveSkill"]); v != nil {
		draft.GoodToHaveSkills = v
	}

	if v := strVal(d, "salaryMin"); v != "" {
		draft.SalaryMin = v
	}
	if v := strVal(d, "salaryMax"); v != "" {
		draft.SalaryMax = v
	}
	if _, ok := d["salaryRangeVisible"]; ok {
		draft.SalaryRangeVisible = ynVal(d, "salaryRangeVisible")
	}
	if v := strVal(d, "expMin"); v != "" {
		draft.ExpMin = v
	}
	if v := strVal(d, "expMax"); v != "" {
		draft.ExpMax = v
	}
	if v := strVal(d, "noticePeriod"); v != "" {
		draft.NoticePeriod = v
	}

	if v := strVal(d, "jobDescriptionHtml", "jobDescription"); v != "" {
		draft.JobDescriptionHTML = v
	}
	if v := strVal(d, "requestText"); v != "" {
		draft.RequestText = v
	}

	if v := listVal(d, "jobLocationIds", "iJobLocation"); len(v) > 0 {
		draft.JobLocationIDs = v
	}

	if v := strVal(d, "employmentType"); v != "" {
		draft.EmploymentType = v
	}
	if v := strVal(d, "workingDays"); v != "" {
		draft.WorkingDays = v
	}
	if v := listVal(d, "jobMode", "iJobMode"); len(v) > 0 {
		draft.JobMode = v
	}
	if v := listVal(d, "jobShift", "ishift"); len(v) > 0 {
		draft.JobShift = v
	}

	if raw, ok := d["outstation"]; ok {
		// arrives as "Y", "Yes", true or 1 depending on the code path
		switch v := raw.(type) {
		case bool:
			draft.Outstation = yn(v)
		case float64:
			draft.Outstation = yn(v == 1)
		case string:
			draft.Outstation = yn(v == "Y" || v == "Yes" || v == "1")
		}
	}

	if v := strVal(d, "bondAgreementRequired"); v != "" {
		draft.BondAgreementRequired = v
	}
	if v := strVal(d, "companyEmployeeStrength"); v != "" {
		draft.CompanyEmployeeStrength = v
	}
	if v := strVal(d, "apmType"); v != "" {
		draft.ApmType = v
	}
	if v := strVal(d, "apmReady"); v != "" {
		draft.ApmReady = v
	}
	if v := strVal(d, "jdFileName"); v != "" {
		draft.JDFileName = v
	}
	if v := strVal(d, "jdFileUrl"); v != "" {
		draft.JDFileURL = v
	}
	if _, ok := d["showJDsection"]; ok {
		draft.ShowJDSection = ynVal(d, "showJDsection")
	}

	applyToggle(d, "declEmploymentType", &draft.DeclEmploymentType)
	applyToggle(d, "declWorkingDays", &draft.DeclWorkingDays)
	applyToggle(d, "declJobMode", &draft.DeclJobMode)
	applyToggle(d, "declJobShift", &draft.DeclJobShift)
	applyToggle(d, "declCompanyJobLocation", &draft.DeclCompanyJobLocation)

	applyToggle(d, "aCandidateResume", &draft.ACandidateResume)
	applyToggle(d, "aCandidateNoticePeriod", &draft.ACandidateNoticePeriod)
	applyToggle(d, "aCandidateTotalWorkExp", &draft.ACandidateTotalWorkExp)
	applyToggle(d, "aCandidateCurrentLocation", &draft.ACandidateCurrentLocation)
	applyToggle(d, "aCandidateCurrentSalary", &draft.ACandidateCurrentSalary)
	applyToggle(d, "aCandidateExpectedSalary", &draft.ACandidateExpectedSalary)
	applyToggle(d, "aCandidateCurrentCompany", &draft.ACandidateCurrentCompany)

	if raw, ok := d["promoteValue"].([]interface{}); ok {
		codes := map[string]bool{}
		for _, item := range raw {
			if m, ok := item.(map[string]interface{}); ok {
				if c, ok := m["jobpromotion"].(string); ok {
					codes[c] = true
				}
			}
		}
		draft.PromoteGopracDB = codes["G"]
		draft.PromoteSocial = codes["S"]
		draft.PromoteLinkedIn = codes["L"]
		draft.PromoteNaukri = codes["NK"]
		draft.PromoteIST = codes["I"]
		draft.DoNotPromote = codes["NONE"]
	}

	if v := listVal(d, "companyIdList"); len(v) > 0 {
		draft.CompanyIDList = v
	}
}

// BuildJobLink derives the public job page link for an interview.
func BuildJobLink(origin, interviewID string) string {
	return fmt.Sprintf("%s/job?p=%s", strings.TrimRight(origin, "/"), interviewID)
}

// FormatDateForInput normalizes a backend date string to YYYY-MM-DD. Bad
// input yields the empty string.
func FormatDateForInput(dateString string) string {
	if dateString == "" {
		return ""
	}
	layouts := []string{
		"2006-01-02", "2006-01-02 15:04:05", time.RFC3339,
		"02-01-2006", "01/02/2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateString); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func strVal(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return trimFloat(v)
		}
	}
	return ""
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%v", v)
}

// listVal accepts either a JSON array or a comma-separated string.
func listVal(m map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case []interface{}:
			out := []string{}
			for _, item := range v {
				switch e := item.(type) {
				case string:
					out = append(out, e)
				case float64:
					out = append(out, trimFloat(e))
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if v != "" {
				return splitCSV(v)
			}
		}
	}
	return nil
}

// skillIDList maps the edit-details skill arrays, whose elements are either
// objects carrying skillId/id or plain values.
func skillIDList(raw interface{}) []string {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := []string{}
	for _, item := range arr {
		switch e := item.(type) {
		case map[string]interface{}:
			if id := strVal(e, "skillId", "id"); id != "" {
				out = append(out, id)
			}
		case string:
			out = append(out, e)
		case float64:
			out = append(out, trimFloat(e))
		}
	}
	return out
}

func applyToggle(m map[string]interface{}, key string, target *string) {
	if _, ok := m[key]; ok {
		*target = ynVal(m, key)
	}
}

func ynVal(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok && v == "Y" {
		return "Y"
	}
	return "N"
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func splitRange(s string) (string, string, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSkills(s string) []string {
	if s == "" {
		return []string{}
	}
	return splitCSVPattern(s)
}

func splitCSVPattern(s string) []string {
	out := []string{}
	for _, part := range skillSplitPattern.Split(s, -1) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
