package services

import (
	"fmt"
	"sort"
	"strconv"

	"recruitdash/models"
)

// StructureRow is one normalized interview section as sent to the backend.
type StructureRow struct {
	Section  string `json:"section"`
	Subject  string `json:"subject"`
	Level    string `json:"level"`
	ASubject string `json:"aSubject"`
	CutOff   string `json:"cutOff"`
	Topics   string `json:"topics"`
}

// InterviewStructureResult is the outcome of the holistic structure check:
// the normalized rows sorted by section plus the derived core-subject slots
// the payload assembler consumes.
type InterviewStructureResult struct {
	Structure       []StructureRow
	ValidationState int

	CoreSubject1      string
	CoreSubject1Level string
	Core1CutOff       string
	Core1Topics       string

	CoreSubject2      string
	CoreSubject2Level string
	Core2CutOff       string
	Core2Topics       string

	CodingSubject      string
	CodingSubjectLevel string
	CodingCutOff       string
	CodingTopics       string

	DifficultyLevel string
}

// InterviewStructureService validates the ordered section list, both
// incrementally (adding a row) and holistically (at submission).
type InterviewStructureService struct{}

func NewInterviewStructureService() *InterviewStructureService {
	return &InterviewStructureService{}
}

// AddSection gates appending a new interview section. The last existing row
// must be complete, difficulty must match across rows, at most one row may
// claim two assessment subjects and the running total stays under four.
// Sections are numbered 3, 4, 5; three rows is the ceiling.
func (s *InterviewStructureService) AddSection(draft *models.JobDraft) error {
	rowCount := len(draft.InterviewSections)

	if rowCount > 0 {
		last := draft.InterviewSections[rowCount-1]

		if last.Subject == "" {
			return validationErr("Pls Select Min One Subject")
		}
		if len(last.Level) == 0 {
			return validationErr("Pls Select Difficulty Level")
		}
		if len(last.ASubject) == 0 {
			return validationErr("Pls Select Assessment Subjects")
		}

		if rowCount > 1 {
			prev := draft.InterviewSections[rowCount-2]
			if prev.Level[0] != last.Level[0] {
				return validationErr("Pls re check Difficulty Level of the Section it should be same for all the sections")
			}
			if prev.ASubject[0] == "2" && last.ASubject[0] == "2" {
				return validationErr("Pls select 2 assessment subjects for any section, but only once per interview.")
			}
		}

		total := 0
		for _, sec := range draft.InterviewSections {
			if len(sec.ASubject) > 0 {
				n, _ := strconv.Atoi(sec.ASubject[0])
				total += n
			}
		}
		if total >= 4 {
			return validationErr("Already Four Subjects are marked for this interview")
		}
	}

	if rowCount >= 3 {
		return validationErr("There is no other section")
	}

	section := strconv.Itoa(rowCount + 3)
	draft.InterviewSections = append(draft.InterviewSections, models.InterviewSection{
		Section:  section,
		Role:     models.RoleForSection(section),
		Subject:  "",
		Level:    []string{},
		ASubject: []string{},
		Topics:   []string{},
	})
	return nil
}

// RemoveSection drops the section at index. Remaining rows keep their
// ordinals; the list is append/remove only, never reordered.
func (s *InterviewStructureService) RemoveSection(draft *models.JobDraft, index int) error {
	if index < 0 || index >= len(draft.InterviewSections) {
		return fmt.Errorf("section index %d out of range", index)
	}
	draft.InterviewSections = append(draft.InterviewSections[:index], draft.InterviewSections[index+1:]...)
	return nil
}

// AvailableSubjects filters the competency subject list down to subjects not
// already used by another section row.
func (s *InterviewStructureService) AvailableSubjects(draft *models.JobDraft, subjects []models.CompetencySubject, currentIdx int) []models.CompetencySubject {
	selected := map[string]bool{}
	for idx, sec := range draft.InterviewSections {
		if idx != currentIdx && sec.Subject != "" {
			selected[sec.Subject] = true
		}
	}
	out := []models.CompetencySubject{}
	for _, sub := range subjects {
		if !selected[sub.ID] {
			out = append(out, sub)
		}
	}
	return out
}

// ValidateStructure runs the submission-time structure check and derives the
// core-subject slots. The zero-section case yields an empty result with the
// default difficulty string.
func (s *InterviewStructureService) ValidateStructure(draft *models.JobDraft) (*InterviewStructureResult, error) {
	result := &InterviewStructureResult{
		DifficultyLevel: "Basic,Average,Advanced",
	}

	if draft.CreateInterviewOption != "now" || len(draft.InterviewSections) == 0 {
		return result, nil
	}

	for idx, row := range draft.InterviewSections {
		if row.Subject == "" {
			return nil, validationErr(fmt.Sprintf("Section %d: Please select at least one subject", idx+1))
		}
		if len(row.Level) == 0 {
			return nil, validationErr(fmt.Sprintf("Section %d: Please select difficulty level", idx+1))
		}
		if len(row.ASubject) == 0 {
			return nil, validationErr(fmt.Sprintf("Section %d: Please select number of assessment subjects", idx+1))
		}
		if len(row.Topics) < 3 {
			return nil, validationErr(fmt.Sprintf("Section %d: Please select at least 3 topics", idx+1))
		}

		if (row.Section == "3" || row.Section == "4") && containsID(row.ASubject, "2") {
			result.ValidationState = 2
		} else if result.ValidationState != 2 && (row.Section == "3" || row.Section == "4" || row.Section == "5") {
			result.ValidationState = 1
		}

		result.Structure = append(result.Structure, StructureRow{
			Section:  row.Section,
			Subject:  row.Subject,
			Level:    joinCSV(row.Level),
			ASubject: joinCSV(row.ASubject),
			CutOff:   row.CutOff,
			Topics:   joinCSV(row.Topics),
		})
	}

	if len(draft.InterviewSections) > 1 {
		first := draft.InterviewSections[0].Level[0]
		for _, sec := range draft.InterviewSections[1:] {
			if sec.Level[0] != first {
				return nil, validationErr("All sections must have the same difficulty level")
			}
		}
	}

	total := 0
	twoSubjectCount := 0
	for _, sec := range draft.InterviewSections {
		if len(sec.ASubject) > 0 {
			n, _ := strconv.Atoi(sec.ASubject[0])
			total += n
			if sec.ASubject[0] == "2" {
				twoSubjectCount++
			}
		}
	}
	if total > 4 {
		return nil, validationErr("Total assessment subjects cannot exceed 4")
	}
	if twoSubjectCount > 1 {
		return nil, validationErr("Only one section can have 2 assessment subjects")
	}

	sort.Slice(result.Structure, func(i, j int) bool {
		a, _ := strconv.Atoi(result.Structure[i].Section)
		b, _ := strconv.Atoi(result.Structure[j].Section)
		return a < b
	})

	// Section 3 fills core1, 4 fills core2, 5 fills coding. DifficultyLevel
	// keeps the value of whichever slot was assigned last in this fixed order;
	// the backend relies on that overwrite.
	for _, item := range result.Structure {
		switch item.Section {
		case "3":
			result.CoreSubject1 = item.Subject
			result.CoreSubject1Level = item.Level
			result.Core1Topics = item.Topics
			result.Core1CutOff = item.CutOff
			result.DifficultyLevel = item.Level
		case "4":
			result.CoreSubject2 = item.Subject
			result.CoreSubject2Level = item.Level
			result.Core2Topics = item.Topics
			result.Core2CutOff = item.CutOff
			result.DifficultyLevel = item.Level
		case "5":
			result.CodingSubject = item.Subject
			result.CodingSubjectLevel = item.Level
			result.CodingTopics = item.Topics
			result.CodingCutOff = item.CutOff
			result.DifficultyLevel = item.Level
		}
	}

	return result, nil
}

func joinCSV(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += v
	}
	return out
}
