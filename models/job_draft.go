package models

// Service type classifications for a job posting. Each carries different
// mandatory-field rules at submission time.
const (
	ServiceTypeRAS = "RAS"
	ServiceTypeIAS = "IAS"
)

// Draft modes
const (
	ModeCreate = "create"
	ModeModify = "modify"
)

// SectionRole identifies which payload slot an interview section fills.
type SectionRole string

const (
	RoleCore1  SectionRole = "core1"
	RoleCore2  SectionRole = "core2"
	RoleCoding SectionRole = "coding"
)

// RoleForSection maps a section ordinal ("3", "4", "5") to its payload slot.
func RoleForSection(section string) SectionRole {
	switch section {
	case "4":
		return RoleCore2
	case "5":
		return RoleCoding
	default:
		return RoleCore1
	}
}

// InterviewSection is one row of the interview structure. Sections are
// numbered 3, 4, 5; at most three exist per draft.
type InterviewSection struct {
	Section       string      `json:"section"`
	Role          SectionRole `json:"role"`
	Subject       string      `json:"subject"`
	Level         []string    `json:"level"`
	ASubject      []string    `json:"aSubject"`
	CutOff        string      `json:"cutOff"`
	Topics        []string    `json:"topics"`
	SpeakingSkill bool        `json:"speakingSkill"`
}

// JobDraft is the in-progress job/interview being created or edited. All
// cascading rules live on its update methods so they can run without any UI.
type JobDraft struct {
	PreInterviewID string `json:"preInterviewId,omitempty"`
	Mode           string `json:"mode"`
	ServiceType    string `json:"serviceType"`

	CompanyIDList        []string `json:"companyIdList"`
	CompanyURL           string   `json:"companyUrl"`
	DomainRoleID         string   `json:"domainRoleId"`
	CompetencySubjectIDs []string `json:"competencySubjectIds"`

	JobName         string   `json:"jobName"`
	RecruiterEmail  string   `json:"recruiterEmail"`
	JobStartDate    string   `json:"jobStartDate"`
	JobExpireDate   string   `json:"jobExpireDate"`
	JobIndustryType []string `json:"jobIndustryType"`
	Headcount       string   `json:"headcount"`
	Outstation      string   `json:"outstation"`

	EmploymentType          string   `json:"employmentType"`
	BondAgreementRequired   string   `json:"bondAgreementRequired"`
	CompanyEmployeeStrength string   `json:"companyEmployeeStrength"`
	WorkingDays             string   `json:"workingDays"`
	NoticePeriod            string   `json:"noticePeriod"`
	JobMode                 []string `json:"jobMode"`
	JobShift                []string `json:"jobShift"`
	JobLocationIDs          []string `json:"jobLocationIds"`

	SalaryMin          string `json:"salaryMin"`
	SalaryMax          string `json:"salaryMax"`
	SalaryRangeVisible string `json:"salaryRangeVisible"`
	ExpMin             string `json:"expMin"`
	ExpMax             string `json:"expMax"`

	RequiredSkills       []string `json:"requiredSkills"`
	UltraMandatorySkills []string `json:"ultraMandatorySkills"`
	GoodToHaveSkills     []string `json:"goodToHaveSkills"`
	SkillText            string   `json:"skillText"`

	JobDescriptionHTML string `json:"jobDescriptionHtml"`
	ShowJDSection      string `json:"showJDsection"`
	JDFileName         string `json:"jdFileName"`
	JDFileURL          string `json:"jdFileUrl"`
	JDFileType         string `json:"jdFileType"`

	RequestText string `json:"requestText"`
	ApmType     string `json:"apmType"`
	ApmReady    string `json:"apmReady"`

	AdditionalInfo       string `json:"additionalInfo"`
	CandidateDeclaration string `json:"candidateDeclaration"`
	AdvancedProfileMatch string `json:"advancedProfileMatch"`

	// Candidate declaration toggles (what the candidate must declare)
	DeclEmploymentType     string `json:"declEmploymentType"`
	DeclWorkingDays        string `json:"declWorkingDays"`
	DeclJobMode            string `json:"declJobMode"`
	DeclJobShift           string `json:"declJobShift"`
	DeclCompanyJobLocation string `json:"declCompanyJobLocation"`

	// Candidate collection toggles (what profile data is collected)
	ACandidateResume          string `json:"aCandidateResume"`
	ACandidateNoticePeriod    string `json:"aCandidateNoticePeriod"`
	ACandidateTotalWorkExp    string `json:"aCandidateTotalWorkExp"`
	ACandidateCurrentLocation string `json:"aCandidateCurrentLocation"`
	ACandidateCurrentSalary   string `json:"aCandidateCurrentSalary"`
	ACandidateExpectedSalary  string `json:"aCandidateExpectedSalary"`
	ACandidateCurrentCompany  string `json:"aCandidateCurrentCompany"`

	CreateInterviewOption string             `json:"createInterviewOption"`
	IncludeBehavioral     bool               `json:"includeBehavioral"`
	InterviewSections     []InterviewSection `json:"interviewSections"`

	// Promotion channels, mutually exclusive with DoNotPromote as a group
	PromoteGopracDB bool `json:"promoteGopracDB"`
	PromoteSocial   bool `json:"promoteSocial"`
	PromoteLinkedIn bool `json:"promoteLinkedIn"`
	PromoteNaukri   bool `json:"promoteNaukri"`
	PromoteIST      bool `json:"promoteIST"`
	DoNotPromote    bool `json:"doNotPromote"`

	// AttemptCount locks structural edits once a candidate has attempted
	AttemptCount    int `json:"attemptCount"`
	ValidationState int `json:"validationState"`
}

// NewJobDraft returns an empty draft with create-mode defaults.
func NewJobDraft() *JobDraft {
	d := &JobDraft{Mode: ModeCreate}
	d.Reset()
	return d
}

// Reset restores every field to its create-mode default.
func (d *JobDraft) Reset() {
	*d = JobDraft{
		Mode:                  d.Mode,
		Outstation:            "Y",
		ShowJDSection:         "Y",
		SalaryRangeVisible:    "N",
		AdditionalInfo:        "Y",
		CandidateDeclaration:  "Y",
		AdvancedProfileMatch:  "Y",
		CreateInterviewOption: "no",

		DeclEmploymentType:     "Y",
		DeclWorkingDays:        "Y",
		DeclJobMode:            "Y",
		DeclJobShift:           "Y",
		DeclCompanyJobLocation: "Y",

		ACandidateResume:          "Y",
		ACandidateNoticePeriod:    "Y",
		ACandidateTotalWorkExp:    "Y",
		ACandidateCurrentLocation: "Y",
		ACandidateCurrentSalary:   "Y",
		ACandidateExpectedSalary:  "Y",
		ACandidateCurrentCompany:  "Y",
	}
}

// SetRequiredSkills replaces the required set and cascades: ultra-mandatory is
// reduced to its intersection with the new set, and good-to-have loses
// anything now required. An empty required set forces ultra-mandatory empty.
func (d *JobDraft) SetRequiredSkills(newSet []string) {
	d.RequiredSkills = newSet
	if len(newSet) == 0 {
		d.UltraMandatorySkills = []string{}
	} else {
		d.UltraMandatorySkills = intersect(d.UltraMandatorySkills, newSet)
	}
	d.GoodToHaveSkills = subtract(d.GoodToHaveSkills, newSet)
}

// SetUltraMandatorySkills replaces the ultra-mandatory set and removes any
// skill now in required+ultra from good-to-have.
func (d *JobDraft) SetUltraMandatorySkills(newSet []string) {
	d.UltraMandatorySkills = newSet
	combined := append(append([]string{}, d.RequiredSkills...), newSet...)
	d.GoodToHaveSkills = subtract(d.GoodToHaveSkills, combined)
}

// SetGoodToHaveSkills replaces the good-to-have set. It is the most-derived
// tier, so no cascade runs.
func (d *JobDraft) SetGoodToHaveSkills(newSet []string) {
	d.GoodToHaveSkills = newSet
}

// SetServiceType switches the classification and applies its side effects:
// IAS disables promotion opt-out and candidate data collection, RAS turns
// collection back on.
func (d *JobDraft) SetServiceType(serviceType string) {
	d.ServiceType = serviceType
	switch serviceType {
	case ServiceTypeIAS:
		d.DoNotPromote = false
		d.AdvancedProfileMatch = "N"
		d.setCollectionToggles("N")
	case ServiceTypeRAS:
		d.AdvancedProfileMatch = "Y"
		d.setCollectionToggles("Y")
	}
}

func (d *JobDraft) setCollectionToggles(v string) {
	d.ACandidateResume = v
	d.ACandidateNoticePeriod = v
	d.ACandidateTotalWorkExp = v
	d.ACandidateCurrentLocation = v
	d.ACandidateCurrentSalary = v
	d.ACandidateExpectedSalary = v
	d.ACandidateCurrentCompany = v
}

// Promotion channel names accepted by SetPromotion.
const (
	PromoGopracDB     = "gopracDB"
	PromoSocial       = "social"
	PromoLinkedIn     = "linkedIn"
	PromoNaukri       = "naukri"
	PromoIST          = "ist"
	PromoDoNotPromote = "doNotPromote"
)

// SetPromotion toggles one promotion checkbox. Checking "do not promote"
// clears every channel; checking any channel clears "do not promote".
func (d *JobDraft) SetPromotion(channel string, value bool) {
	if channel == PromoDoNotPromote {
		if value {
			d.PromoteGopracDB = false
			d.PromoteSocial = false
			d.PromoteLinkedIn = false
			d.PromoteNaukri = false
			d.PromoteIST = false
		}
		d.DoNotPromote = value
		return
	}
	if value {
		d.DoNotPromote = false
	}
	switch channel {
	case PromoGopracDB:
		d.PromoteGopracDB = value
	case PromoSocial:
		d.PromoteSocial = value
	case PromoLinkedIn:
		d.PromoteLinkedIn = value
	case PromoNaukri:
		d.PromoteNaukri = value
	case PromoIST:
		d.PromoteIST = value
	}
}

// HasPromotionSelected reports whether any promotion channel is checked.
func (d *JobDraft) HasPromotionSelected() bool {
	return d.PromoteGopracDB || d.PromoteSocial || d.PromoteLinkedIn ||
		d.PromoteNaukri || d.PromoteIST
}

// PromotionCodes builds the backend promotion code string, e.g. "S,L,G".
func (d *JobDraft) PromotionCodes() string {
	codes := ""
	if d.PromoteSocial {
		codes += "S,"
	}
	if d.PromoteLinkedIn {
		codes += "L,"
	}
	if d.PromoteNaukri {
		codes += "N,"
	}
	if d.PromoteGopracDB {
		codes += "G,"
	}
	if d.PromoteIST {
		codes += "I,"
	}
	if len(codes) > 0 {
		codes = codes[:len(codes)-1]
	}
	return codes
}

// SetCandidateDeclaration toggles the declaration group. Unchecking it turns
// every declaration field off.
func (d *JobDraft) SetCandidateDeclaration(checked bool) {
	if checked {
		d.CandidateDeclaration = "Y"
		return
	}
	d.CandidateDeclaration = "N"
	d.DeclEmploymentType = "N"
	d.DeclWorkingDays = "N"
	d.DeclJobMode = "N"
	d.DeclJobShift = "N"
	d.DeclCompanyJobLocation = "N"
}

// SetAdvancedProfileMatch toggles candidate data collection. Unchecking it
// turns every collection field off.
func (d *JobDraft) SetAdvancedProfileMatch(checked bool) {
	if checked {
		d.AdvancedProfileMatch = "Y"
		return
	}
	d.AdvancedProfileMatch = "N"
	d.setCollectionToggles("N")
}

// SelectCompany records the chosen company and fills its URL from the master
// list. An empty id clears both.
func (d *JobDraft) SelectCompany(companyID string, urls []CompanyURL) {
	if companyID == "" || companyID == "none" {
		d.CompanyIDList = []string{}
		d.CompanyURL = ""
		return
	}
	d.CompanyIDList = []string{companyID}
	d.CompanyURL = ""
	for _, u := range urls {
		if u.CompanyID == companyID {
			d.CompanyURL = u.CompanyURL
			break
		}
	}
}

func intersect(a, b []string) []string {
	out := []string{}
	for _, v := range a {
		if containsStr(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func subtract(a, b []string) []string {
	out := []string{}
	for _, v := range a {
		if !containsStr(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func containsStr(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
