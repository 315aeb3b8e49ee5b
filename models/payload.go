package models

// InterviewPayload is the exact JSON body the createAdaptiveInterview_Goprac
// endpoint expects. Field names are fixed by the backend contract; do not
// rename them.
type InterviewPayload struct {
	UserID      string   `json:"userId"`
	UserType    string   `json:"userType"`
	ServiceType string   `json:"serviceType"`
	CompanyID   []string `json:"companyId"`
	RoleID      string   `json:"roleId"`
	SubjectID   string   `json:"subjectId"`

	InterviewName      string   `json:"interviewName"`
	RecruiterEmail     string   `json:"RecruiterEmail"`
	CompanyURL         string   `json:"companyUrl"`
	InterviewStartDate string   `json:"interviewStartDate"`
	InterviewEndDate   string   `json:"interviewEndDate"`
	JobType            []string `json:"jobType"`
	IHeadcount         string   `json:"iHeadcount"`
	Outstation         string   `json:"outstation"`
	ApmType            string   `json:"apmType"`

	RequiredSkills      []string `json:"requiredSkills"`
	UltraMandatorySkill []string `json:"ultraMandatorySkill"`
	GoodToHaveSkill     []string `json:"goodToHaveSkill"`

	ShowJDSectionCheck string `json:"showJDsectionCheck"`
	JobDescription     string `json:"jobDescription"`
	JDUpload           string `json:"JDupload"`
	Additional         string `json:"Additional"`

	IWorkingDays          string      `json:"iWorkingDays"`
	IStrength             string      `json:"iStrength"`
	IJobMode              []string    `json:"iJobMode"`
	IShift                []string    `json:"ishift"`
	INoticePeriod         string      `json:"inoticePeriod"`
	IEmploymentType       interface{} `json:"iEmploymentType"` // backend expects null here
	EmploymentType        string      `json:"employmentType"`
	BondAgreementRequired string      `json:"bondAgreementRequired"`
	ISalaryRange          string      `json:"iSalaryRange"`
	IJobWorkExperience    string      `json:"iJobWorkExperience"`
	VCompanySalaryRange   string      `json:"VcompanySalaryRange"`

	CEmployment    string `json:"cEmployment"`
	CWorkingDays   string `json:"cWorkingDays"`
	CJobMode       string `json:"cJobMode"`
	CJobShift      string `json:"cJobShift"`
	CCompanyJobLoc string `json:"cCompanyJobLoc"`

	ACandidateResume          string `json:"aCandidateResume"`
	ACandidateNoticePeriod    string `json:"aCandidateNoticePeriod"`
	ACandidateTotalWorkExp    string `json:"aCandidateTotalWorkExp"`
	ACandidateCurrentLocation string `json:"aCandidateCurrentLocation"`
	ACandidateCurrentSalary   string `json:"aCandidateCurrentSalary"`
	ACandidateExpectedSalary  string `json:"aCandidateExpectedSalary"`
	ACandidateCurrentCompany  string `json:"aCandidateCurrentCompany"`

	CandidateDeclaration string `json:"CandidateDeclaration"`
	AdvancedProfileMatch string `json:"AdvancedProfileMatch"`

	PromoteValue    string      `json:"promoteValue"`
	RequestText     string      `json:"requestText"`
	ValidationState int         `json:"validationState"`
	SkillText       string      `json:"skillText"`
	ApmReady        string      `json:"apmReady"`
	Behavioral      interface{} `json:"behavioral"` // ["178"] when included, "" otherwise

	CoreSubject1       string `json:"coreSubject1"`
	CoreSubject1Level  string `json:"coreSubject1Level"`
	Core1CutOff        string `json:"core1CutOff"`
	Core1Topics        string `json:"core1Topics"`
	CoreSubject2       string `json:"coreSubject2"`
	CoreSubject2Level  string `json:"coreSubject2Level"`
	Core2CutOff        string `json:"core2CutOff"`
	Core2Topics        string `json:"core2Topics"`
	CodingSubject      string `json:"codingSubject"`
	CodingSubjectLevel string `json:"codingSubjectLevel"`
	CodingCutOff       string `json:"codingCutOff"`
	CodingTopics       string `json:"codingTopics"`
	DifficultyLevel    string `json:"difficultyLevel"`

	IJobLocation      []string `json:"iJobLocation"`
	PendingInterviews string   `json:"pendingInterviews"`

	PreInterviewID string `json:"preInterviewId,omitempty"`
}
