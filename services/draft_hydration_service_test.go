package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitdash/models"
)

func TestApplyAttemptDetails(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	data := &AttemptDetailsData{
		JobForm: []map[string]interface{}{{
			"company_id":          "10",
			"interviewName":       "Backend Engineer",
			"RecruiterEmail":      "recruiter@acme.example",
			"interviewStartDate":  "2025-07-01",
			"interviewExpireDate": "2025-08-01",
			"iHeadcount":          float64(5),
			"outstationFlag":      "N",
			"requiredSkills":      "1, 2 ,3",
			"ultraMandatorySkill": "2",
			"goodToHaveSkill":     "",
			"showJDsection":       "Y",
			"serviceType":         "RAS",
			"roleId":              "7",
			"subjectId":           "12,15",
		}},
		AttemptedDetails: 3,
		Preference: []models.Preference{
			{FieldName: "workExperience", FieldValue: "2-5"},
			{FieldName: "currentSalary", FieldValue: "300000-600000"},
			{FieldName: "shift", FieldValue: "Day,Night"},
			{FieldName: "currentLocation", FieldValue: "7,9"},
			{FieldName: "noticePeriod", FieldValue: "30"},
		},
	}

	svc.ApplyAttemptDetails(draft, data)

	assert.Equal(t, []string{"10"}, draft.CompanyIDList)
	assert.Equal(t, "Backend Engineer", draft.JobName)
	assert.Equal(t, "recruiter@acme.example", draft.RecruiterEmail)
	assert.Equal(t, "5", draft.Headcount)
	assert.Equal(t, "N", draft.Outstation)
	assert.Equal(t, []string{"1", "2", "3"}, draft.RequiredSkills)
	assert.Equal(t, []string{"2"}, draft.UltraMandatorySkills)
	assert.Empty(t, draft.GoodToHaveSkills)
	assert.Equal(t, "RAS", draft.ServiceType)
	assert.Equal(t, "7", draft.DomainRoleID)
	assert.Equal(t, []string{"12", "15"}, draft.CompetencySubjectIDs)
	assert.Equal(t, 3, draft.AttemptCount)

	// preferences
	assert.Equal(t, "2", draft.ExpMin)
	assert.Equal(t, "5", draft.ExpMax)
	assert.Equal(t, "300000", draft.SalaryMin)
	assert.Equal(t, "600000", draft.SalaryMax)
	assert.Equal(t, []string{"Day", "Night"}, draft.JobShift)
	assert.Equal(t, []string{"7", "9"}, draft.JobLocationIDs)
	assert.Equal(t, "30", draft.NoticePeriod)
}

func TestApplyAttemptDetailsUnknownOutstation(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	svc.ApplyAttemptDetails(draft, &AttemptDetailsData{
		JobForm: []map[string]interface{}{{"outstationFlag": "maybe"}},
	})
	assert.Equal(t, "", draft.Outstation)
}

func TestApplyEditDetailsOverwritesAttempt(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	svc.ApplyAttemptDetails(draft, &AttemptDetailsData{
		JobForm: []map[string]interface{}{{
			"interviewName":  "Old Name",
			"RecruiterEmail": "old@acme.example",
		}},
	})
	svc.ApplyEditDetails(draft, map[string]interface{}{
		"jobName": "New Name",
	})

	// later call wins where it has a value, earlier value survives otherwise
	assert.Equal(t, "New Name", draft.JobName)
	assert.Equal(t, "old@acme.example", draft.RecruiterEmail)
}

func TestApplyEditDetailsAlternateKeys(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	svc.ApplyEditDetails(draft, map[string]interface{}{
		"roleId":             "9",
		"subjectId":          "12,15",
		"interviewStartDate": "2025-07-01 00:00:00",
		"interviewEndDate":   "01-08-2025",
		"iJobLocation":       []interface{}{float64(7), "9"},
	})

	assert.Equal(t, "9", draft.DomainRoleID)
	assert.Equal(t, []string{"12", "15"}, draft.CompetencySubjectIDs)
	assert.Equal(t, "2025-07-01", draft.JobStartDate)
	assert.Equal(t, "2025-08-01", draft.JobExpireDate)
	assert.Equal(t, []string{"7", "9"}, draft.JobLocationIDs)
}

func TestApplyEditDetailsSkillObjects(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	svc.ApplyEditDetails(draft, map[string]interface{}{
		"requiredSkills": []interface{}{
			map[string]interface{}{"skillId": "4"},
			map[string]interface{}{"id": float64(5)},
			"6",
		},
	})

	assert.Equal(t, []string{"4", "5", "6"}, draft.RequiredSkills)
}

func TestApplyEditDetailsOutstationVariants(t *testing.T) {
	svc := NewDraftHydrationService()

	cases := []struct {
		raw  interface{}
		want string
	}{
		{true, "Y"},
		{false, "N"},
		{float64(1), "Y"},
		{float64(0), "N"},
		{"Yes", "Y"},
		{"Y", "Y"},
		{"N", "N"},
	}
	for _, tc := range cases {
		draft := models.NewJobDraft()
		svc.ApplyEditDetails(draft, map[string]interface{}{"outstation": tc.raw})
		assert.Equal(t, tc.want, draft.Outstation, "raw=%v", tc.raw)
	}
}

func TestApplyEditDetailsPromotionCodes(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	svc.ApplyEditDetails(draft, map[string]interface{}{
		"promoteValue": []interface{}{
			map[string]interface{}{"jobpromotion": "S"},
			map[string]interface{}{"jobpromotion": "NK"},
			map[string]interface{}{"jobpromotion": "G"},
		},
	})

	assert.True(t, draft.PromoteSocial)
	assert.True(t, draft.PromoteNaukri)
	assert.True(t, draft.PromoteGopracDB)
	assert.False(t, draft.PromoteLinkedIn)
	assert.False(t, draft.PromoteIST)
	assert.False(t, draft.DoNotPromote)

	draft = models.NewJobDraft()
	svc.ApplyEditDetails(draft, map[string]interface{}{
		"promoteValue": []interface{}{
			map[string]interface{}{"jobpromotion": "NONE"},
		},
	})
	assert.True(t, draft.DoNotPromote)
	assert.False(t, draft.HasPromotionSelected())
}

func TestApplyEditDetailsToggles(t *testing.T) {
	svc := NewDraftHydrationService()
	draft := models.NewJobDraft()

	svc.ApplyEditDetails(draft, map[string]interface{}{
		"declJobMode":      "N",
		"aCandidateResume": "N",
	})
	assert.Equal(t, "N", draft.DeclJobMode)
	assert.Equal(t, "N", draft.ACandidateResume)
	// untouched toggles keep their defaults
	assert.Equal(t, "Y", draft.DeclWorkingDays)
}

func TestFormatDateForInput(t *testing.T) {
	assert.Equal(t, "2025-07-01", FormatDateForInput("2025-07-01"))
	assert.Equal(t, "2025-07-01", FormatDateForInput("2025-07-01 10:30:00"))
	assert.Equal(t, "2025-07-01", FormatDateForInput("2025-07-01T10:30:00Z"))
	assert.Equal(t, "2025-07-01", FormatDateForInput("01-07-2025"))
	assert.Equal(t, "", FormatDateForInput("not a date"))
	assert.Equal(t, "", FormatDateForInput(""))
}

func TestBuildJobLink(t *testing.T) {
	assert.Equal(t, "https://app.example/job?p=42", BuildJobLink("https://app.example/", "42"))
	assert.Equal(t, "https://app.example/job?p=42", BuildJobLink("https://app.example", "42"))
}

// A built payload fed back through the modify-mode mapping, under the key
// names editInterviewDetails uses, must reproduce the draft's scalar values
// with dates normalized to YYYY-MM-DD.
func TestPayloadRoundTripThroughEditDetails(t *testing.T) {
	d := models.NewJobDraft()
	d.CompanyIDList = []string{"10"}
	d.ServiceType = models.ServiceTypeRAS
	d.DomainRoleID = "7"
	d.CompetencySubjectIDs = []string{"12", "15"}
	d.JobName = "Backend Engineer"
	d.RecruiterEmail = "recruiter@acme.example"
	d.CompanyURL = "https://acme.example"
	d.JobStartDate = "2999-07-01"
	d.JobExpireDate = "2999-08-01"
	d.JobIndustryType = []string{"IT"}
	d.Headcount = "5"
	d.Outstation = "Y"
	d.SetRequiredSkills([]string{"1", "2"})
	d.SetUltraMandatorySkills([]string{"2"})
	d.EmploymentType = "Full Time"
	d.BondAgreementRequired = "N"
	d.WorkingDays = "5"
	d.CompanyEmployeeStrength = "500"
	d.JobMode = []string{"WFO", "Hybrid"}
	d.JobShift = []string{"Day"}
	d.NoticePeriod = "30"
	d.JobDescriptionHTML = "<p>Build services</p>"
	d.JobLocationIDs = []string{"7", "9"}

	payload := NewPayloadService().BuildPayload(d, &InterviewStructureResult{ValidationState: 1}, "u-1", "recruiter")

	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &fields))

	edit := map[string]interface{}{
		"jobName":                 fields["interviewName"],
		"serviceType":             fields["serviceType"],
		"recruiterEmail":          fields["RecruiterEmail"],
		"companyUrl":              fields["companyUrl"],
		"roleId":                  fields["roleId"],
		"subjectId":               fields["subjectId"],
		"jobType":                 fields["jobType"],
		"interviewStartDate":      fields["interviewStartDate"],
		"interviewEndDate":        fields["interviewEndDate"],
		"headcount":               fields["iHeadcount"],
		"requiredSkills":          fields["requiredSkills"],
		"ultraMandatorySkill":     fields["ultraMandatorySkill"],
		"goodToHaveSkill":         fields["goodToHaveSkill"],
		"noticePeriod":            fields["inoticePeriod"],
		"jobDescription":          fields["jobDescription"],
		"iJobLocation":            fields["iJobLocation"],
		"employmentType":          fields["employmentType"],
		"workingDays":             fields["iWorkingDays"],
		"iJobMode":                fields["iJobMode"],
		"ishift":                  fields["ishift"],
		"outstation":              fields["outstation"],
		"bondAgreementRequired":   fields["bondAgreementRequired"],
		"companyEmployeeStrength": fields["iStrength"],
		"apmType":                 fields["apmType"],
		"companyIdList":           fields["companyId"],
	}

	hydrated := models.NewJobDraft()
	NewDraftHydrationService().ApplyEditDetails(hydrated, edit)

	assert.Equal(t, d.JobName, hydrated.JobName)
	assert.Equal(t, d.ServiceType, hydrated.ServiceType)
	assert.Equal(t, d.RecruiterEmail, hydrated.RecruiterEmail)
	assert.Equal(t, d.CompanyURL, hydrated.CompanyURL)
	assert.Equal(t, d.DomainRoleID, hydrated.DomainRoleID)
	assert.Equal(t, d.CompetencySubjectIDs, hydrated.CompetencySubjectIDs)
	assert.Equal(t, d.JobIndustryType, hydrated.JobIndustryType)
	assert.Equal(t, "2999-07-01", hydrated.JobStartDate)
	assert.Equal(t, "2999-08-01", hydrated.JobExpireDate)
	assert.Equal(t, d.Headcount, hydrated.Headcount)
	assert.Equal(t, d.RequiredSkills, hydrated.RequiredSkills)
	assert.Equal(t, d.UltraMandatorySkills, hydrated.UltraMandatorySkills)
	assert.Equal(t, d.NoticePeriod, hydrated.NoticePeriod)
	assert.Equal(t, d.JobDescriptionHTML, hydrated.JobDescriptionHTML)
	assert.Equal(t, d.JobLocationIDs, hydrated.JobLocationIDs)
	assert.Equal(t, d.EmploymentType, hydrated.EmploymentType)
	assert.Equal(t, d.WorkingDays, hydrated.WorkingDays)
	assert.Equal(t, d.JobMode, hydrated.JobMode)
	assert.Equal(t, d.JobShift, hydrated.JobShift)
	assert.Equal(t, d.Outstation, hydrated.Outstation)
	assert.Equal(t, d.BondAgreementRequired, hydrated.BondAgreementRequired)
	assert.Equal(t, d.CompanyEmployeeStrength, hydrated.CompanyEmployeeStrength)
	assert.Equal(t, "Tech", hydrated.ApmType)
	assert.Equal(t, d.CompanyIDList, hydrated.CompanyIDList)
}
