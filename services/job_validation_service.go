package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"recruitdash/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// JobValidationService gates submission of a JobDraft. Validators run in a
// fixed order and the first failure aborts with its message; the ordering is
// part of the observable contract, so new checks go at the end of the group
// they belong to.
type JobValidationService struct {
	structure *InterviewStructureService

	// Now is swappable for tests; date checks compare date-only values.
	Now func() time.Time
}

func NewJobValidationService() *JobValidationService {
	return &JobValidationService{
		structure: NewInterviewStructureService(),
		Now:       time.Now,
	}
}

type namedValidator struct {
	name  string
	check func(*models.JobDraft) error
}

// Validate runs the full pipeline and, when the draft passes, the holistic
// interview structure check. Returns the structure result needed by the
// payload assembler.
func (s *JobValidationService) Validate(draft *models.JobDraft) (*InterviewStructureResult, error) {
	for _, v := range s.validators() {
		if err := v.check(draft); err != nil {
			return nil, err
		}
	}
	return s.structure.ValidateStructure(draft)
}

func (s *JobValidationService) validators() []namedValidator {
	return []namedValidator{
		{"company", checkCompany},
		{"serviceType", checkServiceType},
		{"domainRole", checkDomainRole},
		{"competencySubject", checkCompetencySubject},
		{"jobName", checkJobName},
		{"recruiterEmail", checkRecruiterEmail},
		{"dates", s.checkDates},
		{"headcount", checkHeadcount},
		{"outstation", checkOutstation},
		{"employmentType", checkEmploymentType},
		{"bondAgreement", checkBondAgreement},
		{"skills", checkSkills},
		{"additionalDetails", checkAdditionalDetails},
		{"employeeStrength", checkEmployeeStrength},
		{"rasProfileMatch", checkRASProfileMatch},
		{"promotion", checkPromotion},
		{"interviewRequest", checkInterviewRequest},
	}
}

func checkCompany(d *models.JobDraft) error {
	if len(d.CompanyIDList) == 0 {
		return validationErr("Please select a company")
	}
	return nil
}

func checkServiceType(d *models.JobDraft) error {
	if d.ServiceType == "" {
		return validationErr("Please select service type (RAS or IAS)")
	}
	return nil
}

func checkDomainRole(d *models.JobDraft) error {
	if d.DomainRoleID == "" {
		return validationErr("Please select a domain/role")
	}
	return nil
}

func checkCompetencySubject(d *models.JobDraft) error {
	if len(d.CompetencySubjectIDs) == 0 {
		return validationErr("Please select competency subject")
	}
	return nil
}

func checkJobName(d *models.JobDraft) error {
	if strings.TrimSpace(d.JobName) == "" {
		return validationErr("Please enter job name")
	}
	return nil
}

func checkRecruiterEmail(d *models.JobDraft) error {
	if d.RecruiterEmail == "" || !emailPattern.MatchString(d.RecruiterEmail) {
		return validationErr("Please enter a valid recruiter email address")
	}
	return nil
}

func (s *JobValidationService) checkDates(d *models.JobDraft) error {
	if d.JobStartDate == "" {
		return validationErr("Please select job start date")
	}
	if d.JobExpireDate == "" {
		return validationErr("Please select job expire date")
	}

	start, errStart := time.Parse("2006-01-02", d.JobStartDate)
	expire, errExpire := time.Parse("2006-01-02", d.JobExpireDate)
	if errStart != nil || errExpire != nil {
		// unparseable dates fall through; presence was already checked
		return nil
	}

	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// past-start check only applies to brand-new jobs
	if d.Mode == models.ModeCreate && start.Before(today) {
		return validationErr("Job start date cannot be in the past")
	}
	if !expire.After(start) {
		return validationErr("Job expire date must be after start date")
	}
	return nil
}

func checkHeadcount(d *models.JobDraft) error {
	if d.Headcount == "" {
		return validationErr("Please enter headcount")
	}
	n, err := strconv.Atoi(d.Headcount)
	if err != nil || n <= 0 {
		return validationErr("Headcount must be a positive number")
	}
	return nil
}

func checkOutstation(d *models.JobDraft) error {
	if d.Outstation == "" {
		return validationErr("Please select outstation preference")
	}
	return nil
}

func checkEmploymentType(d *models.JobDraft) error {
	if d.EmploymentType == "" {
		return validationErr("Please select employment type")
	}
	return nil
}

func checkBondAgreement(d *models.JobDraft) error {
	if d.BondAgreementRequired == "" {
		return validationErr("Please select bond agreement requirement")
	}
	return nil
}

func checkSkills(d *models.JobDraft) error {
	if len(d.RequiredSkills) == 0 {
		return validationErr("Please select at least one mandatory skill")
	}
	if len(d.UltraMandatorySkills) == 0 {
		return validationErr("Please select at least one ultra-mandatory skill")
	}
	// redundant with the cascading removal on SetRequiredSkills, kept as a
	// defensive check since hydrated drafts bypass the setters
	for _, skill := range d.UltraMandatorySkills {
		if !containsID(d.RequiredSkills, skill) {
			return validationErr("Ultra-mandatory skills must be selected from mandatory skills")
		}
	}
	return nil
}

func checkAdditionalDetails(d *models.JobDraft) error {
	if d.AdditionalInfo != "Y" {
		return nil
	}

	if d.ExpMin == "" {
		return validationErr("Please enter minimum work experience")
	}
	if d.ExpMax == "" {
		return validationErr("Please enter maximum work experience")
	}
	minExp, errMin := strconv.Atoi(d.ExpMin)
	maxExp, errMax := strconv.Atoi(d.ExpMax)
	if errMin != nil || errMax != nil {
		return validationErr("Invalid work experience values")
	}
	if minExp < 0 || maxExp < 0 {
		return validationErr("Experience cannot be negative")
	}
	if minExp > maxExp {
		return validationErr("Maximum experience must be greater than or equal to minimum experience")
	}

	if d.SalaryRangeVisible == "Y" {
		if d.SalaryMin == "" || d.SalaryMax == "" {
			return validationErr("Please enter salary range")
		}
		minSal, errMin := strconv.Atoi(strings.ReplaceAll(d.SalaryMin, ",", ""))
		maxSal, errMax := strconv.Atoi(strings.ReplaceAll(d.SalaryMax, ",", ""))
		if errMin != nil || errMax != nil {
			return validationErr("Invalid salary values")
		}
		if minSal < 0 || maxSal < 0 {
			return validationErr("Salary cannot be negative")
		}
		if minSal != 0 && minSal < 100000 {
			return validationErr("Minimum salary should be at least 1 LPA (100000)")
		}
		if maxSal < 100000 {
			return validationErr("Maximum salary should be at least 1 LPA (100000)")
		}
		if maxSal <= minSal {
			return validationErr("Maximum salary must be greater than minimum salary")
		}
	}

	if len(d.JobLocationIDs) == 0 {
		return validationErr("Please select at least one job location")
	}
	if d.WorkingDays == "" {
		return validationErr("Please enter working days")
	}
	if len(d.JobMode) == 0 {
		return validationErr("Please select job mode (WFH/WFO/Hybrid)")
	}
	if len(d.JobShift) == 0 {
		return validationErr("Please select job shift")
	}
	if d.NoticePeriod == "" {
		return validationErr("Please select notice period")
	}
	if d.ShowJDSection == "Y" && d.JobDescriptionHTML == "" && d.JDFileName == "" {
		return validationErr("Please enter job description or upload JD file")
	}
	return nil
}

func checkEmployeeStrength(d *models.JobDraft) error {
	if d.CompanyEmployeeStrength == "" {
		return nil
	}
	n, err := strconv.Atoi(d.CompanyEmployeeStrength)
	if err != nil || n <= 0 {
		return validationErr("Company employee strength must be a positive number")
	}
	return nil
}

func checkRASProfileMatch(d *models.JobDraft) error {
	if d.ServiceType == models.ServiceTypeRAS && d.AdvancedProfileMatch != "Y" {
		return validationErr("Collect Candidate Information (Advanced Profile Match) is mandatory for RAS jobs")
	}
	return nil
}

func checkPromotion(d *models.JobDraft) error {
	if !d.HasPromotionSelected() && !d.DoNotPromote {
		return validationErr("Please select at least one job promotion option or check 'Do Not Promote'")
	}
	return nil
}

func checkInterviewRequest(d *models.JobDraft) error {
	if d.CreateInterviewOption == "now" && len(d.InterviewSections) == 0 && !d.IncludeBehavioral {
		return validationErr("Please add at least one interview section or select 'Request Goprac To Create'")
	}
	return nil
}
