package planner

import (
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
)

func testRegistry(t *testing.T) *curriculum.Registry {
	t.Helper()
	reg, err := curriculum.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return reg
}

// For every topic and every supported count, a plan has exactly the
// requested length and uses only declared slot types and skill tags.
func TestPlan_LengthAndMembership(t *testing.T) {
	reg := testRegistry(t)
	p := New(reg)

	for _, topic := range reg.Topics() {
		profile := topic.Profile()
		for _, count := range []int{5, 10, 15, 20} {
			plan := p.Plan(count, topic.Canonical())
			if len(plan) != count {
				t.Fatalf("%s/%d: plan length %d", topic.Name, count, len(plan))
			}
			for _, slot := range plan {
				if !profile.AllowsSlotType(string(slot.Type)) {
					t.Errorf("%s/%d: undeclared slot type %s", topic.Name, count, slot.Type)
				}
				if !profile.AllowsSkillTag(slot.SkillTag) {
					t.Errorf("%s/%d: undeclared skill tag %s", topic.Name, count, slot.SkillTag)
				}
			}
		}
	}
}

// Plans of size >= 5 keep at least one thinking slot, and one
// error-detection slot when the topic's recipe has one. Foundation
// topics without error_detection are the documented exception.
func TestPlan_ProtectsHardSlotTypes(t *testing.T) {
	reg := testRegistry(t)
	p := New(reg)

	for _, topic := range reg.Topics() {
		baselineED := false
		for _, row := range topic.Recipe {
			if SlotType(row.SlotType) == SlotErrorDetection && row.Count > 0 {
				baselineED = true
			}
		}

		for _, count := range []int{5, 10, 15, 20} {
			plan := p.Plan(count, topic.Canonical())
			var thinking, errorDetection int
			for _, slot := range plan {
				switch slot.Type {
				case SlotThinking:
					thinking++
				case SlotErrorDetection:
					errorDetection++
				}
			}
			if thinking == 0 {
				t.Errorf("%s/%d: no thinking slot", topic.Name, count)
			}
			if baselineED && errorDetection == 0 {
				t.Errorf("%s/%d: no error-detection slot", topic.Name, count)
			}
		}
	}
}

func TestPlan_ExactRecipeAtBaselineSize(t *testing.T) {
	reg := testRegistry(t)
	p := New(reg)

	ct, err := reg.Resolve("Fractions", 4, curriculum.SubjectMath)
	if err != nil {
		t.Fatal(err)
	}
	topic, _ := reg.TopicOf(ct)

	plan := p.Plan(10, ct)
	got := make(map[string]int)
	for _, slot := range plan {
		got[string(slot.Type)+"/"+slot.SkillTag]++
	}
	for _, row := range topic.Recipe {
		if got[row.SlotType+"/"+row.SkillTag] != row.Count {
			t.Errorf("row %s/%s: got %d, want %d",
				row.SlotType, row.SkillTag, got[row.SlotType+"/"+row.SkillTag], row.Count)
		}
	}
}

// An unknown topic falls back to the generic recipe instead of failing.
func TestPlan_FallbackForUnknownTopic(t *testing.T) {
	p := New(testRegistry(t))

	unknown := curriculum.CanonicalTopic{
		Name:    "Astrophysics",
		Subject: curriculum.SubjectMath,
		Grade:   3,
		Stage:   curriculum.StagePrimary,
	}

	plan := p.Plan(10, unknown)
	if len(plan) != 10 {
		t.Fatalf("plan length %d, want 10", len(plan))
	}

	allowed := make(map[string]bool)
	for _, tag := range FallbackSkillTags() {
		allowed[tag] = true
	}
	for _, slot := range plan {
		if !allowed[slot.SkillTag] {
			t.Errorf("fallback plan used unexpected tag %s", slot.SkillTag)
		}
	}
}

func TestPlan_NilRegistry(t *testing.T) {
	p := New(nil)
	plan := p.Plan(5, curriculum.CanonicalTopic{Name: "anything", Grade: 2})
	if len(plan) != 5 {
		t.Fatalf("plan length %d, want 5", len(plan))
	}
}

func TestPlan_ZeroCount(t *testing.T) {
	p := New(nil)
	if plan := p.Plan(0, curriculum.CanonicalTopic{}); len(plan) != 0 {
		t.Errorf("plan length %d, want 0", len(plan))
	}
}

// A recipe with two rows of the same slot type must not crowd out a
// distinct type when the requested count is small. With four distinct
// types and count 4, every type keeps exactly one slot.
func TestPlan_SmallCountKeepsEveryType(t *testing.T) {
	reg := testRegistry(t)
	p := New(reg)

	ct, err := reg.Resolve("counting", 1, curriculum.SubjectMath)
	if err != nil {
		t.Fatal(err)
	}

	plan := p.Plan(4, ct)
	if len(plan) != 4 {
		t.Fatalf("plan length %d, want 4", len(plan))
	}

	byType := make(map[SlotType]int)
	for _, slot := range plan {
		byType[slot.Type]++
	}
	for _, st := range []SlotType{SlotRecall, SlotApplication, SlotRepresentation, SlotThinking} {
		if byType[st] != 1 {
			t.Errorf("slot type %s count = %d, want 1 (got %v)", st, byType[st], byType)
		}
	}
}

// Below the distinct-type count, types are dropped lowest priority
// first: representation goes before recall, and thinking survives to
// the very end.
func TestScaleCounts_BelowTypeCountDropsByPriority(t *testing.T) {
	recipe := []curriculum.RecipeItem{
		{SlotType: string(SlotRecall), SkillTag: "a", Count: 4},
		{SlotType: string(SlotRecall), SkillTag: "b", Count: 2},
		{SlotType: string(SlotApplication), SkillTag: "c", Count: 2},
		{SlotType: string(SlotRepresentation), SkillTag: "d", Count: 1},
		{SlotType: string(SlotThinking), SkillTag: "e", Count: 1},
	}

	counts := scaleCounts(recipe, 3)
	byType := make(map[SlotType]int)
	for i, c := range counts {
		byType[SlotType(recipe[i].SlotType)] += c
	}
	want := map[SlotType]int{SlotThinking: 1, SlotApplication: 1, SlotRecall: 1}
	for st, n := range want {
		if byType[st] != n {
			t.Errorf("type %s count = %d, want %d", st, byType[st], n)
		}
	}
	if byType[SlotRepresentation] != 0 {
		t.Errorf("representation count = %d, want 0 at total 3", byType[SlotRepresentation])
	}
}

func TestScaleCounts_RemainderPriority(t *testing.T) {
	// Two rows tie on remainder; the thinking row must win the
	// leftover unit.
	recipe := []curriculum.RecipeItem{
		{SlotType: string(SlotRecall), SkillTag: "a", Count: 4},
		{SlotType: string(SlotApplication), SkillTag: "b", Count: 3},
		{SlotType: string(SlotRepresentation), SkillTag: "c", Count: 2},
		{SlotType: string(SlotThinking), SkillTag: "d", Count: 1},
	}
	counts := scaleCounts(recipe, 15)
	if counts[3] != 2 {
		t.Errorf("thinking count = %d, want 2 (priority tie-break)", counts[3])
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 15 {
		t.Errorf("total = %d, want 15", total)
	}
}
