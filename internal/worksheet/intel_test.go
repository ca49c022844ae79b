package worksheet

import (
	"context"
	"errors"
	"testing"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
)

// memMasteryRepo is a minimal in-memory store.MasteryRepo for
// context-builder tests.
type memMasteryRepo struct {
	records map[string]*store.MasteryRecordData
	failing bool
}

func newMemMasteryRepo() *memMasteryRepo {
	return &memMasteryRepo{records: make(map[string]*store.MasteryRecordData)}
}

func (m *memMasteryRepo) Get(_ context.Context, studentID, skillTag string) (*store.MasteryRecordData, error) {
	if m.failing {
		return nil, errors.New("repo down")
	}
	return m.records[studentID+"|"+skillTag], nil
}

func (m *memMasteryRepo) Upsert(_ context.Context, d *store.MasteryRecordData) error {
	m.records[d.StudentID+"|"+d.SkillTag] = d
	return nil
}

func (m *memMasteryRepo) ListByStudent(_ context.Context, _ string) ([]*store.MasteryRecordData, error) {
	return nil, nil
}

func (m *memMasteryRepo) Reset(_ context.Context, _ string) error { return nil }

func testTopic(t *testing.T, reg *curriculum.Registry) curriculum.CanonicalTopic {
	t.Helper()
	ct, err := reg.Resolve("Fractions", 4, curriculum.SubjectMath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return ct
}

func loadRegistry(t *testing.T) *curriculum.Registry {
	t.Helper()
	reg, err := curriculum.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return reg
}

func seedLevel(t *testing.T, repo *memMasteryRepo, studentID string, tags []string, level mastery.Level) {
	t.Helper()
	for _, tag := range tags {
		err := repo.Upsert(context.Background(), &store.MasteryRecordData{
			StudentID: studentID,
			SkillTag:  tag,
			Level:     string(level),
		})
		if err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}
}

func fractionTags() []string {
	return []string{"equivalent-fractions", "compare-fractions", "fraction-of-set", "fraction-on-line"}
}

func TestBuildContext_NilDependenciesSafeDefaults(t *testing.T) {
	b := NewContextBuilder(nil, nil, nil, nil)
	ct := curriculum.CanonicalTopic{Name: "Fractions", Subject: curriculum.SubjectMath, Grade: 4}

	gc := b.BuildContext(context.Background(), "kid-1", ct)

	if gc.BloomLevel != BloomRecall {
		t.Errorf("BloomLevel = %q, want recall", gc.BloomLevel)
	}
	if !gc.Scaffolding || gc.Challenge {
		t.Errorf("flags = scaffolding %t challenge %t, want true/false", gc.Scaffolding, gc.Challenge)
	}
	if gc.FormatMix[mastery.FormatMCQ] != 40 || gc.FormatMix[mastery.FormatFillBlank] != 30 || gc.FormatMix[mastery.FormatWordProblem] != 30 {
		t.Errorf("FormatMix = %v, want default 40/30/30", gc.FormatMix)
	}
	if len(gc.ValidSkillTags) == 0 {
		t.Error("no fallback skill tags with nil registry")
	}
}

func TestBuildContext_CurriculumFields(t *testing.T) {
	reg := loadRegistry(t)
	b := NewContextBuilder(reg, nil, nil, nil)

	gc := b.BuildContext(context.Background(), "", testTopic(t, reg))

	if gc.Chapter != "Fractions" {
		t.Errorf("Chapter = %q", gc.Chapter)
	}
	if len(gc.Subtopics) == 0 || len(gc.Objectives) == 0 {
		t.Error("subtopics or objectives not populated from curriculum")
	}
	if len(gc.ValidSkillTags) != 4 {
		t.Errorf("ValidSkillTags = %v", gc.ValidSkillTags)
	}
}

func TestBuildContext_NoStudentSkipsMastery(t *testing.T) {
	reg := loadRegistry(t)
	repo := newMemMasteryRepo()
	seedLevel(t, repo, "kid-1", fractionTags(), mastery.LevelMastered)
	b := NewContextBuilder(reg, mastery.NewService(repo, nil), nil, nil)

	gc := b.BuildContext(context.Background(), "", testTopic(t, reg))

	if gc.BloomLevel != BloomRecall || gc.Challenge {
		t.Error("mastery data consulted without a student id")
	}
}

func TestBuildContext_MasteredStudent(t *testing.T) {
	reg := loadRegistry(t)
	repo := newMemMasteryRepo()
	seedLevel(t, repo, "kid-1", fractionTags(), mastery.LevelMastered)
	b := NewContextBuilder(reg, mastery.NewService(repo, nil), nil, nil)

	gc := b.BuildContext(context.Background(), "kid-1", testTopic(t, reg))

	if gc.BloomLevel != BloomReasoning {
		t.Errorf("BloomLevel = %q, want reasoning", gc.BloomLevel)
	}
	if !gc.Challenge || gc.Scaffolding {
		t.Errorf("flags = scaffolding %t challenge %t, want false/true", gc.Scaffolding, gc.Challenge)
	}
	if gc.FormatMix[mastery.FormatWordProblem] != 50 {
		t.Errorf("FormatMix = %v, want mastered mix", gc.FormatMix)
	}
}

func TestBuildContext_WeakestTagGoverns(t *testing.T) {
	reg := loadRegistry(t)
	repo := newMemMasteryRepo()
	tags := fractionTags()
	seedLevel(t, repo, "kid-1", tags[:3], mastery.LevelMastered)
	seedLevel(t, repo, "kid-1", tags[3:], mastery.LevelLearning)
	b := NewContextBuilder(reg, mastery.NewService(repo, nil), nil, nil)

	gc := b.BuildContext(context.Background(), "kid-1", testTopic(t, reg))

	if gc.BloomLevel != BloomRecall {
		t.Errorf("BloomLevel = %q, want recall for a learning-level gap", gc.BloomLevel)
	}
	if gc.Challenge {
		t.Error("challenge enabled despite a learning-level tag")
	}
	if !gc.Scaffolding {
		t.Error("scaffolding disabled despite a learning-level tag")
	}
}

func TestBuildContext_MasteryFailureFailsOpen(t *testing.T) {
	reg := loadRegistry(t)
	repo := newMemMasteryRepo()
	repo.failing = true
	b := NewContextBuilder(reg, mastery.NewService(repo, nil), nil, nil)

	gc := b.BuildContext(context.Background(), "kid-1", testTopic(t, reg))

	if gc.BloomLevel != BloomRecall || !gc.Scaffolding || gc.Challenge {
		t.Error("mastery failure did not fall back to difficulty defaults")
	}
	if gc.FormatMix[mastery.FormatMCQ] != 40 {
		t.Errorf("FormatMix = %v, want default", gc.FormatMix)
	}
}

func TestBuildContext_HistoryAttached(t *testing.T) {
	reg := loadRegistry(t)
	hist := history.NewService(nil, nil)
	b := NewContextBuilder(reg, nil, hist, nil)

	gc := b.BuildContext(context.Background(), "", testTopic(t, reg))

	// Nil-repo history fails open to an empty avoid state.
	if len(gc.Avoid.UsedContexts) != 0 || len(gc.Avoid.UsedQuestionHashes) != 0 {
		t.Errorf("Avoid = %+v, want empty", gc.Avoid)
	}
}
