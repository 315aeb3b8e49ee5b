package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitdash/models"
)

func completeSection(section, subject string, level string, aSubject string) models.InterviewSection {
	return models.InterviewSection{
		Section:  section,
		Role:     models.RoleForSection(section),
		Subject:  subject,
		Level:    []string{level},
		ASubject: []string{aSubject},
		Topics:   []string{"t1", "t2", "t3"},
	}
}

func TestAddSectionNumbering(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()

	assert.NoError(t, svc.AddSection(draft))
	assert.Len(t, draft.InterviewSections, 1)
	assert.Equal(t, "3", draft.InterviewSections[0].Section)
	assert.Equal(t, models.RoleCore1, draft.InterviewSections[0].Role)

	draft.InterviewSections[0] = completeSection("3", "12", "Average", "1")
	assert.NoError(t, svc.AddSection(draft))
	assert.Equal(t, "4", draft.InterviewSections[1].Section)
	assert.Equal(t, models.RoleCore2, draft.InterviewSections[1].Role)

	draft.InterviewSections[1] = completeSection("4", "15", "Average", "1")
	assert.NoError(t, svc.AddSection(draft))
	assert.Equal(t, "5", draft.InterviewSections[2].Section)
	assert.Equal(t, models.RoleCoding, draft.InterviewSections[2].Role)
}

func TestAddSectionGateMessages(t *testing.T) {
	svc := NewInterviewStructureService()

	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{{Section: "3"}}
	err := svc.AddSection(draft)
	assert.EqualError(t, err, "Pls Select Min One Subject")

	draft.InterviewSections[0].Subject = "12"
	err = svc.AddSection(draft)
	assert.EqualError(t, err, "Pls Select Difficulty Level")

	draft.InterviewSections[0].Level = []string{"Basic"}
	err = svc.AddSection(draft)
	assert.EqualError(t, err, "Pls Select Assessment Subjects")
}

func TestAddSectionDifficultyMismatch(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "1"),
		completeSection("4", "15", "Advanced", "1"),
	}

	err := svc.AddSection(draft)
	assert.EqualError(t, err, "Pls re check Difficulty Level of the Section it should be same for all the sections")
}

func TestAddSectionTwoAssessmentOnlyOnce(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "2"),
		completeSection("4", "15", "Basic", "2"),
	}

	err := svc.AddSection(draft)
	assert.EqualError(t, err, "Pls select 2 assessment subjects for any section, but only once per interview.")
}

func TestAddSectionTotalAssessmentCap(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "2"),
		completeSection("4", "15", "Basic", "1"),
		completeSection("5", "16", "Basic", "1"),
	}

	err := svc.AddSection(draft)
	assert.EqualError(t, err, "Already Four Subjects are marked for this interview")
}

func TestAddSectionMaxThree(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "1"),
		completeSection("4", "15", "Basic", "1"),
		completeSection("5", "16", "Basic", "1"),
	}

	err := svc.AddSection(draft)
	assert.EqualError(t, err, "There is no other section")
}

func TestRemoveSection(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "1"),
		completeSection("4", "15", "Basic", "1"),
	}

	assert.NoError(t, svc.RemoveSection(draft, 0))
	assert.Len(t, draft.InterviewSections, 1)
	assert.Equal(t, "4", draft.InterviewSections[0].Section)

	assert.Error(t, svc.RemoveSection(draft, 5))
}

func TestAvailableSubjectsExcludesUsed(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "1"),
		completeSection("4", "", "Basic", "1"),
	}
	subjects := []models.CompetencySubject{{ID: "12"}, {ID: "15"}, {ID: "16"}}

	available := svc.AvailableSubjects(draft, subjects, 1)
	ids := []string{}
	for _, s := range available {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"15", "16"}, ids)

	// The row's own subject stays selectable
	available = svc.AvailableSubjects(draft, subjects, 0)
	assert.Len(t, available, 3)
}

func TestValidateStructureSkippedWithoutInterview(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.CreateInterviewOption = "no"
	draft.InterviewSections = []models.InterviewSection{{Section: "3"}}

	result, err := svc.ValidateStructure(draft)
	assert.NoError(t, err)
	assert.Empty(t, result.Structure)
	assert.Equal(t, 0, result.ValidationState)
	assert.Equal(t, "Basic,Average,Advanced", result.DifficultyLevel)
}

func TestValidateStructurePerSectionMessages(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.CreateInterviewOption = "now"

	draft.InterviewSections = []models.InterviewSection{{Section: "3"}}
	_, err := svc.ValidateStructure(draft)
	assert.EqualError(t, err, "Section 1: Please select at least one subject")

	draft.InterviewSections[0].Subject = "12"
	_, err = svc.ValidateStructure(draft)
	assert.EqualError(t, err, "Section 1: Please select difficulty level")

	draft.InterviewSections[0].Level = []string{"Basic"}
	_, err = svc.ValidateStructure(draft)
	assert.EqualError(t, err, "Section 1: Please select number of assessment subjects")

	draft.InterviewSections[0].ASubject = []string{"1"}
	draft.InterviewSections[0].Topics = []string{"t1", "t2"}
	_, err = svc.ValidateStructure(draft)
	assert.EqualError(t, err, "Section 1: Please select at least 3 topics")
}

func TestValidateStructureHolisticChecks(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.CreateInterviewOption = "now"

	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "1"),
		completeSection("4", "15", "Advanced", "1"),
	}
	_, err := svc.ValidateStructure(draft)
	assert.EqualError(t, err, "All sections must have the same difficulty level")

	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "2"),
		completeSection("4", "15", "Basic", "2"),
	}
	_, err = svc.ValidateStructure(draft)
	assert.EqualError(t, err, "Total assessment subjects cannot exceed 4")

	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "2"),
		completeSection("4", "15", "Basic", "2"),
		completeSection("5", "16", "Basic", "0"),
	}
	_, err = svc.ValidateStructure(draft)
	assert.EqualError(t, err, "Only one section can have 2 assessment subjects")
}

func TestValidateStructureValidationState(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.CreateInterviewOption = "now"

	// Only section 5 present: state 1
	draft.InterviewSections = []models.InterviewSection{
		completeSection("5", "16", "Basic", "1"),
	}
	result, err := svc.ValidateStructure(draft)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ValidationState)

	// A two-assessment core section bumps the state to 2 and it sticks
	draft.InterviewSections = []models.InterviewSection{
		completeSection("3", "12", "Basic", "2"),
		completeSection("5", "16", "Basic", "1"),
	}
	result, err = svc.ValidateStructure(draft)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.ValidationState)
}

func TestValidateStructureCoreSlots(t *testing.T) {
	svc := NewInterviewStructureService()
	draft := models.NewJobDraft()
	draft.CreateInterviewOption = "now"
	draft.InterviewSections = []models.InterviewSection{
		// deliberately out of order; rows are sorted by section first
		completeSection("5", "16", "Advanced", "1"),
		completeSection("3", "12", "Advanced", "1"),
	}
	draft.InterviewSections[0].CutOff = "60"
	draft.InterviewSections[1].CutOff = "40"

	result, err := svc.ValidateStructure(draft)
	assert.NoError(t, err)

	assert.Equal(t, "12", result.CoreSubject1)
	assert.Equal(t, "40", result.Core1CutOff)
	assert.Equal(t, "t1,t2,t3", result.Core1Topics)
	assert.Equal(t, "", result.CoreSubject2)
	assert.Equal(t, "16", result.CodingSubject)
	assert.Equal(t, "60", result.CodingCutOff)

	// The last slot assigned in section order owns the difficulty value
	assert.Equal(t, "Advanced", result.DifficultyLevel)
	assert.Equal(t, "3", result.Structure[0].Section)
	assert.Equal(t, "5", result.Structure[1].Section)
}
