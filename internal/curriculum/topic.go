package curriculum

// Subject identifies a taught subject.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectEnglish Subject = "english"
	SubjectHindi   Subject = "hindi"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectEnglish, SubjectHindi}
}

// RequiresScript reports whether a subject is written in a non-Latin
// script. Generation prompts for these subjects carry an explicit
// script-fidelity directive.
func (s Subject) RequiresScript() bool {
	return s == SubjectHindi
}

// ScriptName returns the name of the subject's writing system, or ""
// for Latin-script subjects.
func (s Subject) ScriptName() string {
	if s == SubjectHindi {
		return "Devanagari"
	}
	return ""
}

// Stage is the coarse schooling stage a grade belongs to.
type Stage string

const (
	StageFoundation Stage = "foundation" // grades 1-2
	StagePrimary    Stage = "primary"    // grades 3-5
)

// StageForGrade maps a grade to its schooling stage.
func StageForGrade(grade int) Stage {
	if grade <= 2 {
		return StageFoundation
	}
	return StagePrimary
}

// CanonicalTopic is the immutable identity of a curriculum topic.
// All lookups across the system key on this record; resolving a raw
// topic string to the wrong grade is a correctness defect.
type CanonicalTopic struct {
	Name    string
	Subject Subject
	Grade   int
	Stage   Stage
}

// RecipeItem is one row of a topic's baseline question distribution.
type RecipeItem struct {
	SlotType string `yaml:"slot_type"`
	SkillTag string `yaml:"skill_tag"`
	Count    int    `yaml:"count"`
}

// RecipeTotal is the canonical baseline worksheet size every recipe
// must sum to. Plans for other sizes are scaled from this baseline.
const RecipeTotal = 10

// TopicProfile holds the per-topic generation constraints.
type TopicProfile struct {
	// SkillTags is the set of skill tags questions may target.
	SkillTags []string

	// SlotTypes is the ordered set of pedagogical slot types this
	// topic supports.
	SlotTypes []string

	// DisallowedKeywords are vocabulary that must never appear in a
	// question for this topic. Guards against cross-topic and
	// cross-subject contamination.
	DisallowedKeywords []string

	// Recipe is the baseline distribution of slots; counts sum to
	// RecipeTotal and every skill tag appears in SkillTags.
	Recipe []RecipeItem
}

// AllowsSkillTag reports whether tag is valid for this topic.
func (p TopicProfile) AllowsSkillTag(tag string) bool {
	for _, t := range p.SkillTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AllowsSlotType reports whether st is a declared slot type.
func (p TopicProfile) AllowsSlotType(st string) bool {
	for _, t := range p.SlotTypes {
		if t == st {
			return true
		}
	}
	return false
}

// Topic is a full curriculum entry as authored in the canon data file.
type Topic struct {
	Name               string       `yaml:"name"`
	Subject            Subject      `yaml:"subject"`
	Grade              int          `yaml:"grade"`
	Chapter            string       `yaml:"chapter"`
	Subtopics          []string     `yaml:"subtopics"`
	Objectives         []string     `yaml:"objectives"`
	Aliases            []string     `yaml:"aliases"`
	SkillTags          []string     `yaml:"skill_tags"`
	SlotTypes          []string     `yaml:"slot_types"`
	DisallowedKeywords []string     `yaml:"disallowed_keywords"`
	Recipe             []RecipeItem `yaml:"recipe"`
}

// Canonical returns the topic's identity record.
func (t Topic) Canonical() CanonicalTopic {
	return CanonicalTopic{
		Name:    t.Name,
		Subject: t.Subject,
		Grade:   t.Grade,
		Stage:   StageForGrade(t.Grade),
	}
}

// Profile returns the topic's generation constraints.
func (t Topic) Profile() TopicProfile {
	return TopicProfile{
		SkillTags:          t.SkillTags,
		SlotTypes:          t.SlotTypes,
		DisallowedKeywords: t.DisallowedKeywords,
		Recipe:             t.Recipe,
	}
}
