package services

import (
	"strings"

	"recruitdash/models"
)

// PayloadService maps a validated draft plus the derived structure slots into
// the backend create/update body. Pure mapping, no I/O.
type PayloadService struct{}

func NewPayloadService() *PayloadService {
	return &PayloadService{}
}

// BuildPayload assembles the createAdaptiveInterview_Goprac request body.
// preInterviewId rides along only when modifying an existing interview.
func (s *PayloadService) BuildPayload(draft *models.JobDraft, structure *InterviewStructureResult, userID, userType string) *models.InterviewPayload {
	var behavioral interface{} = ""
	if draft.IncludeBehavioral {
		behavioral = []string{"178"}
	}

	salaryRange := ""
	if draft.SalaryMin != "" && draft.SalaryMax != "" {
		salaryRange = draft.SalaryMin + "-" + draft.SalaryMax
	}
	expRange := ""
	if draft.ExpMin != "" && draft.ExpMax != "" {
		expRange = draft.ExpMin + "-" + draft.ExpMax
	}

	jdUpload := draft.JDFileURL
	if jdUpload == "" {
		jdUpload = draft.JDFileName
	}

	pending := "Y"
	if draft.CreateInterviewOption == "now" {
		pending = "N"
	}

	p := &models.InterviewPayload{
		UserID:      userID,
		UserType:    userType,
		ServiceType: draft.ServiceType,
		CompanyID:   draft.CompanyIDList,
		RoleID:      draft.DomainRoleID,
		SubjectID:   strings.Join(draft.CompetencySubjectIDs, ","),

		InterviewName:      draft.JobName,
		RecruiterEmail:     draft.RecruiterEmail,
		CompanyURL:         draft.CompanyURL,
		InterviewStartDate: draft.JobStartDate,
		InterviewEndDate:   draft.JobExpireDate,
		JobType:            draft.JobIndustryType,
		IHeadcount:         draft.Headcount,
		Outstation:         draft.Outstation,
		ApmType:            "Tech",

		RequiredSkills:      draft.RequiredSkills,
		UltraMandatorySkill: draft.UltraMandatorySkills,
		GoodToHaveSkill:     draft.GoodToHaveSkills,

		ShowJDSectionCheck: draft.ShowJDSection,
		JobDescription:     draft.JobDescriptionHTML,
		JDUpload:           jdUpload,
		Additional:         draft.AdditionalInfo,

		IWorkingDays:          draft.WorkingDays,
		IStrength:             draft.CompanyEmployeeStrength,
		IJobMode:              draft.JobMode,
		IShift:                draft.JobShift,
		INoticePeriod:         draft.NoticePeriod,
		IEmploymentType:       nil,
		EmploymentType:        draft.EmploymentType,
		BondAgreementRequired: draft.BondAgreementRequired,
		ISalaryRange:          salaryRange,
		IJobWorkExperience:    expRange,
		VCompanySalaryRange:   draft.SalaryRangeVisible,

		CEmployment:    draft.DeclEmploymentType,
		CWorkingDays:   draft.DeclWorkingDays,
		CJobMode:       draft.DeclJobMode,
		CJobShift:      draft.DeclJobShift,
		CCompanyJobLoc: draft.DeclCompanyJobLocation,

		ACandidateResume:          draft.ACandidateResume,
		ACandidateNoticePeriod:    draft.ACandidateNoticePeriod,
		ACandidateTotalWorkExp:    draft.ACandidateTotalWorkExp,
		ACandidateCurrentLocation: draft.ACandidateCurrentLocation,
		ACandidateCurrentSalary:   draft.ACandidateCurrentSalary,
		ACandidateExpectedSalary:  draft.ACandidateExpectedSalary,
		ACandidateCurrentCompany:  draft.ACandidateCurrentCompany,

		CandidateDeclaration: draft.CandidateDeclaration,
		AdvancedProfileMatch: draft.AdvancedProfileMatch,

		PromoteValue:    draft.PromotionCodes(),
		RequestText:     draft.RequestText,
		ValidationState: structure.ValidationState,
		SkillText:       draft.SkillText,
		ApmReady:        draft.ApmReady,
		Behavioral:      behavioral,

		CoreSubject1:       structure.CoreSubject1,
		CoreSubject1Level:  structure.CoreSubject1Level,
		Core1CutOff:        structure.Core1CutOff,
		Core1Topics:        structure.Core1Topics,
		CoreSubject2:       structure.CoreSubject2,
		CoreSubject2Level:  structure.CoreSubject2Level,
		Core2CutOff:        structure.Core2CutOff,
		Core2Topics:        structure.Core2Topics,
		CodingSubject:      structure.CodingSubject,
		CodingSubjectLevel: structure.CodingSubjectLevel,
		CodingCutOff:       structure.CodingCutOff,
		CodingTopics:       structure.CodingTopics,
		DifficultyLevel:    structure.DifficultyLevel,

		IJobLocation:      draft.JobLocationIDs,
		PendingInterviews: pending,
	}

	if draft.Mode == models.ModeModify && draft.PreInterviewID != "" {
		p.PreInterviewID = draft.PreInterviewID
	}
	return p
}
