package services

import (
	"strings"

	"recruitdash/models"
)

// SkillCatalogService derives the option lists offered for each skill tier
// and the role-dependent competency subject list. Pure derivations, no I/O.
type SkillCatalogService struct {
	Skills   []models.Skill
	Subjects []models.CompetencySubject
}

func NewSkillCatalogService(skills []models.Skill, subjects []models.CompetencySubject) *SkillCatalogService {
	return &SkillCatalogService{Skills: skills, Subjects: subjects}
}

// AvailableForUltraMandatory returns the catalog minus the required set. The
// required-subset invariant is enforced at validation time, not here; this
// list models the remaining pool a skill can be promoted from.
func (s *SkillCatalogService) AvailableForUltraMandatory(draft *models.JobDraft) []models.Skill {
	out := []models.Skill{}
	for _, skill := range s.Skills {
		if !containsID(draft.RequiredSkills, skill.ID) {
			out = append(out, skill)
		}
	}
	return out
}

// AvailableForGoodToHave returns the catalog minus required and
// ultra-mandatory skills.
func (s *SkillCatalogService) AvailableForGoodToHave(draft *models.JobDraft) []models.Skill {
	combined := append(append([]string{}, draft.RequiredSkills...), draft.UltraMandatorySkills...)
	out := []models.Skill{}
	for _, skill := range s.Skills {
		if !containsID(combined, skill.ID) {
			out = append(out, skill)
		}
	}
	return out
}

// FilteredCompetencySubjects returns subjects with no role restriction or a
// roleId matching the selected domain role. The literal "null" string is an
// upstream data artifact and counts as unrestricted.
func (s *SkillCatalogService) FilteredCompetencySubjects(domainRoleID string) []models.CompetencySubject {
	if domainRoleID == "" {
		return s.Subjects
	}
	out := []models.CompetencySubject{}
	for _, sub := range s.Subjects {
		if sub.RoleID == "" || sub.RoleID == domainRoleID || sub.RoleID == "null" {
			out = append(out, sub)
		}
	}
	return out
}

// SkillAddAllowed reports whether a custom skill name may be added to the
// master list: non-blank and not already present, case-insensitive.
func (s *SkillCatalogService) SkillAddAllowed(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, skill := range s.Skills {
		if strings.EqualFold(strings.TrimSpace(skill.Name), name) {
			return false
		}
	}
	return true
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
