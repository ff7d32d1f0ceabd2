package models

import (
	"fmt"
	"time"
)

// Family names one entity collection inside a snapshot. The values double
// as the JSON keys of the persisted snapshot, so they must stay stable
// across exports and imports.
type Family string

const (
	FamilyStyleSettings   Family = "styleSettings"
	FamilyHero            Family = "heroData"
	FamilyAbout           Family = "aboutData"
	FamilyWorkPhilosophy  Family = "workPhilosophy"
	FamilyExperiences     Family = "experiences"
	FamilyProjects        Family = "projects"
	FamilyStats           Family = "stats"
	FamilySkillCategories Family = "skillCategories"
	FamilyTechnologies    Family = "technologies"
	FamilyMessages        Family = "messages"
	FamilyPageViews       Family = "pageViews"
)

// Snapshot is the union of every entity family plus the write timestamp.
// It is the unit of local persistence: read wholesale, written wholesale or
// per family, exported and imported as one JSON document.
type Snapshot struct {
	StyleSettings   StyleSettings    `json:"styleSettings"`
	Hero            HeroProfile      `json:"heroData"`
	About           AboutProfile     `json:"aboutData"`
	WorkPhilosophy  []WorkPhilosophy `json:"workPhilosophy"`
	Experiences     []Experience     `json:"experiences"`
	Projects        []Project        `json:"projects"`
	Stats           []Stat           `json:"stats"`
	SkillCategories []SkillCategory  `json:"skillCategories"`
	Technologies    []Technology     `json:"technologies"`
	Messages        []ContactMessage `json:"messages"`
	PageViews       int              `json:"pageViews"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

// Apply replaces a single family's value, leaving every other family
// untouched. The value's concrete type must match the family.
func (s *Snapshot) Apply(f Family, value any) error {
	mismatch := func() error {
		return fmt.Errorf("snapshot: value of type %T does not belong to family %q", value, f)
	}
	switch f {
	case FamilyStyleSettings:
		v, ok := value.(StyleSettings)
		if !ok {
			return mismatch()
		}
		s.StyleSettings = v
	case FamilyHero:
		v, ok := value.(HeroProfile)
		if !ok {
			return mismatch()
		}
		s.Hero = v
	case FamilyAbout:
		v, ok := value.(AboutProfile)
		if !ok {
			return mismatch()
		}
		s.About = v
	case FamilyWorkPhilosophy:
		v, ok := value.([]WorkPhilosophy)
		if !ok {
			return mismatch()
		}
		s.WorkPhilosophy = v
	case FamilyExperiences:
		v, ok := value.([]Experience)
		if !ok {
			return mismatch()
		}
		s.Experiences = v
	case FamilyProjects:
		v, ok := value.([]Project)
		if !ok {
			return mismatch()
		}
		s.Projects = v
	case FamilyStats:
		v, ok := value.([]Stat)
		if !ok {
			return mismatch()
		}
		s.Stats = v
	case FamilySkillCategories:
		v, ok := value.([]SkillCategory)
		if !ok {
			return mismatch()
		}
		s.SkillCategories = v
	case FamilyTechnologies:
		v, ok := value.([]Technology)
		if !ok {
			return mismatch()
		}
		s.Technologies = v
	case FamilyMessages:
		v, ok := value.([]ContactMessage)
		if !ok {
			return mismatch()
		}
		s.Messages = v
	case FamilyPageViews:
		v, ok := value.(int)
		if !ok {
			return mismatch()
		}
		s.PageViews = v
	default:
		return fmt.Errorf("snapshot: unknown family %q", f)
	}
	return nil
}

// Clone returns a deep copy. Readers get clones so nothing outside the
// orchestrator can mutate its owned state through a shared slice.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.StyleSettings.AccentColors = append([]AccentColor(nil), s.StyleSettings.AccentColors...)
	out.WorkPhilosophy = append([]WorkPhilosophy(nil), s.WorkPhilosophy...)
	out.Experiences = append([]Experience(nil), s.Experiences...)
	for i, e := range out.Experiences {
		out.Experiences[i].Technologies = append([]string(nil), e.Technologies...)
	}
	out.Projects = append([]Project(nil), s.Projects...)
	for i, p := range out.Projects {
		out.Projects[i].Stack = append([]string(nil), p.Stack...)
	}
	out.Stats = append([]Stat(nil), s.Stats...)
	out.SkillCategories = append([]SkillCategory(nil), s.SkillCategories...)
	for i, cat := range out.SkillCategories {
		out.SkillCategories[i].Skills = append([]Skill(nil), cat.Skills...)
	}
	out.Technologies = append([]Technology(nil), s.Technologies...)
	out.Messages = append([]ContactMessage(nil), s.Messages...)
	return out
}
