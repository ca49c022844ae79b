package curriculum

import (
	"errors"
	"fmt"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return reg
}

func TestResolve_ExactName(t *testing.T) {
	reg := testRegistry(t)

	ct, err := reg.Resolve("Fractions", 4, SubjectMath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ct.Name != "Fractions" || ct.Grade != 4 || ct.Subject != SubjectMath {
		t.Errorf("got %+v", ct)
	}
	if ct.Stage != StagePrimary {
		t.Errorf("Stage = %s, want primary", ct.Stage)
	}
}

func TestResolve_Alias(t *testing.T) {
	reg := testRegistry(t)

	ct, err := reg.Resolve("times tables", 3, SubjectMath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ct.Name != "Multiplication Tables" {
		t.Errorf("Name = %q, want Multiplication Tables", ct.Name)
	}
}

func TestResolve_Normalized(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		raw     string
		grade   int
		subject Subject
		want    string
	}{
		{"  fractions ", 4, SubjectMath, "Fractions"},
		{"TIMES_TABLES", 3, SubjectMath, "Multiplication Tables"},
		{"add within 100", 2, SubjectMath, "Addition within 100"},
		{"telling-time", 4, SubjectMath, "Time and Calendar"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ct, err := reg.Resolve(tt.raw, tt.grade, tt.subject)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.raw, err)
			}
			if ct.Name != tt.want {
				t.Errorf("Name = %q, want %q", ct.Name, tt.want)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	reg := testRegistry(t)

	_, err := reg.Resolve("quantum mechanics", 3, SubjectMath)
	if !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("err = %v, want ErrTopicNotFound", err)
	}
}

// A raw string carrying an explicit grade marker must never resolve to
// a different grade's profile, across the whole topic universe.
func TestResolve_NoCrossGradeLeakage(t *testing.T) {
	reg := testRegistry(t)

	for _, topic := range reg.Topics() {
		for grade := 1; grade <= 5; grade++ {
			if grade == topic.Grade {
				continue
			}
			raw := fmt.Sprintf("grade %d %s", topic.Grade, topic.Name)
			ct, err := reg.Resolve(raw, grade, topic.Subject)
			if err == nil && ct.Grade != topic.Grade {
				t.Errorf("Resolve(%q, grade=%d) leaked to grade %d", raw, grade, ct.Grade)
			}
			if err == nil {
				t.Errorf("Resolve(%q, grade=%d) = %+v, want error", raw, grade, ct)
			}
		}
	}
}

func TestResolve_GradeMarkerMatchingRequestedGrade(t *testing.T) {
	reg := testRegistry(t)

	ct, err := reg.Resolve("grade 4 fractions", 4, SubjectMath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ct.Name != "Fractions" || ct.Grade != 4 {
		t.Errorf("got %+v", ct)
	}
}

func TestResolve_SameNameDifferentSubject(t *testing.T) {
	reg := testRegistry(t)

	// "nouns" is an english alias; it must not resolve under math.
	if _, err := reg.Resolve("nouns", 3, SubjectMath); err == nil {
		t.Error("english alias resolved under math")
	}
	if _, err := reg.Resolve("nouns", 3, SubjectEnglish); err != nil {
		t.Errorf("Resolve under english: %v", err)
	}
}

func TestProfileOf_Invariants(t *testing.T) {
	reg := testRegistry(t)

	for _, topic := range reg.Topics() {
		p, ok := reg.ProfileOf(topic.Canonical())
		if !ok {
			t.Fatalf("ProfileOf(%q) missing", topic.Name)
		}

		sum := 0
		for _, item := range p.Recipe {
			sum += item.Count
			if !p.AllowsSkillTag(item.SkillTag) {
				t.Errorf("%s: recipe tag %q undeclared", topic.Name, item.SkillTag)
			}
			if !p.AllowsSlotType(item.SlotType) {
				t.Errorf("%s: recipe slot type %q undeclared", topic.Name, item.SlotType)
			}
		}
		if sum != RecipeTotal {
			t.Errorf("%s: recipe sums to %d, want %d", topic.Name, sum, RecipeTotal)
		}
	}
}

func TestNewRegistry_RejectsBadRecipe(t *testing.T) {
	bad := Topic{
		Name:      "Broken",
		Subject:   SubjectMath,
		Grade:     3,
		SkillTags: []string{"a"},
		SlotTypes: []string{"recall"},
		Recipe: []RecipeItem{
			{SlotType: "recall", SkillTag: "a", Count: 7},
		},
	}
	if _, err := NewRegistry([]Topic{bad}); err == nil {
		t.Error("registry accepted a recipe that does not sum to 10")
	}
}

func TestNormalizeTopicName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Two-Digit  Addition", "two digit addition"},
		{"grade 3 fractions", "fractions"},
		{"  TIMES_TABLES ", "times tables"},
	}
	for _, tt := range tests {
		if got := normalizeTopicName(tt.in); got != tt.want {
			t.Errorf("normalizeTopicName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubject_Script(t *testing.T) {
	if !SubjectHindi.RequiresScript() {
		t.Error("hindi should require a script directive")
	}
	if SubjectMath.RequiresScript() {
		t.Error("math should not require a script directive")
	}
	if SubjectHindi.ScriptName() != "Devanagari" {
		t.Errorf("ScriptName = %q", SubjectHindi.ScriptName())
	}
}
