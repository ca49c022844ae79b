package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
)

// memRepo is an in-memory store.MasteryRepo.
type memRepo struct {
	rows map[string]*store.MasteryRecordData
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]*store.MasteryRecordData)}
}

func key(studentID, skillTag string) string { return studentID + "|" + skillTag }

func (m *memRepo) Get(_ context.Context, studentID, skillTag string) (*store.MasteryRecordData, error) {
	return m.rows[key(studentID, skillTag)], nil
}

func (m *memRepo) Upsert(_ context.Context, d *store.MasteryRecordData) error {
	m.rows[key(d.StudentID, d.SkillTag)] = d
	return nil
}

func (m *memRepo) ListByStudent(_ context.Context, studentID string) ([]*store.MasteryRecordData, error) {
	var out []*store.MasteryRecordData
	for _, d := range m.rows {
		if d.StudentID == studentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memRepo) Reset(_ context.Context, studentID string) error {
	for k, d := range m.rows {
		if d.StudentID == studentID {
			delete(m.rows, k)
		}
	}
	return nil
}

func testService(t *testing.T) (*Service, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	return NewService(repo, nil), repo
}

func attempt(score int) Attempt { return Attempt{ScorePct: score} }

func TestRecordAttempt_UnknownFirstPass(t *testing.T) {
	svc, _ := testService(t)

	rec, transitions, err := svc.RecordAttempt(context.Background(), "s1", "times-tables", attempt(80))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Level != LevelLearning {
		t.Errorf("Level = %s, want learning", rec.Level)
	}
	if rec.Streak != 1 {
		t.Errorf("Streak = %d, want 1", rec.Streak)
	}
	if len(transitions) != 1 || transitions[0].Trigger != "first-pass" {
		t.Errorf("transitions = %+v, want single first-pass", transitions)
	}
}

func TestRecordAttempt_LearningToImproving(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	var rec *Record
	// First pass: unknown -> learning (streak 1). Two more reach 3.
	for i := 0; i < 3; i++ {
		var err error
		rec, _, err = svc.RecordAttempt(ctx, "s1", "carry-over", attempt(80))
		if err != nil {
			t.Fatal(err)
		}
	}
	if rec.Level != LevelImproving {
		t.Errorf("Level = %s, want improving", rec.Level)
	}
	if rec.Streak != 3 {
		t.Errorf("Streak = %d, want 3", rec.Streak)
	}
}

func TestRecordAttempt_ImprovingToMastered(t *testing.T) {
	svc, repo := testService(t)
	ctx := context.Background()

	seed := &store.MasteryRecordData{
		StudentID: "s1", SkillTag: "inference", Level: string(LevelImproving),
	}
	if err := repo.Upsert(ctx, seed); err != nil {
		t.Fatal(err)
	}

	var rec *Record
	for i := 0; i < 5; i++ {
		var err error
		rec, _, err = svc.RecordAttempt(ctx, "s1", "inference", attempt(80))
		if err != nil {
			t.Fatal(err)
		}
	}
	if rec.Level != LevelMastered {
		t.Errorf("Level = %s, want mastered", rec.Level)
	}
	if rec.Streak != 5 {
		t.Errorf("Streak = %d, want 5", rec.Streak)
	}
}

func TestRecordAttempt_MasteredStaysMasteredOnSuccess(t *testing.T) {
	svc, repo := testService(t)
	ctx := context.Background()

	_ = repo.Upsert(ctx, &store.MasteryRecordData{
		StudentID: "s1", SkillTag: "main-idea", Level: string(LevelMastered), Streak: 9,
	})
	rec, transitions, err := svc.RecordAttempt(ctx, "s1", "main-idea", attempt(100))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Level != LevelMastered {
		t.Errorf("Level = %s, want mastered", rec.Level)
	}
	if len(transitions) != 0 {
		t.Errorf("transitions = %+v, want none", transitions)
	}
}

func TestRecordAttempt_LowScoreDemotes(t *testing.T) {
	svc, repo := testService(t)
	ctx := context.Background()

	_ = repo.Upsert(ctx, &store.MasteryRecordData{
		StudentID: "s1", SkillTag: "read-clock", Level: string(LevelMastered), Streak: 5,
	})
	rec, transitions, err := svc.RecordAttempt(ctx, "s1", "read-clock", attempt(40))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Level != LevelImproving {
		t.Errorf("Level = %s, want improving", rec.Level)
	}
	if rec.Streak != 0 {
		t.Errorf("Streak = %d, want 0", rec.Streak)
	}
	if len(transitions) != 1 || transitions[0].Trigger != "demotion" {
		t.Errorf("transitions = %+v", transitions)
	}
}

func TestRecordAttempt_ScoreBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wantLevel Level
	}{
		{"70 counts as pass", 70, LevelImproving}, // improving holds, streak grows
		{"50 holds", 50, LevelImproving},
		{"49 demotes", 49, LevelLearning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := testService(t)
			ctx := context.Background()
			_ = repo.Upsert(ctx, &store.MasteryRecordData{
				StudentID: "s1", SkillTag: "x", Level: string(LevelImproving),
			})
			rec, _, err := svc.RecordAttempt(ctx, "s1", "x", attempt(tt.score))
			if err != nil {
				t.Fatal(err)
			}
			if rec.Level != tt.wantLevel {
				t.Errorf("score %d: Level = %s, want %s", tt.score, rec.Level, tt.wantLevel)
			}
		})
	}
}

func TestRecordAttempt_UnknownIsDemotionFloor(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec, _, err := svc.RecordAttempt(ctx, "s1", "y", attempt(10))
		if err != nil {
			t.Fatal(err)
		}
		if rec.Level != LevelUnknown {
			t.Fatalf("Level = %s, want unknown", rec.Level)
		}
	}
}

func TestRecordAttempt_DecayBeforeScore(t *testing.T) {
	tests := []struct {
		name        string
		level       Level
		daysAgo     int
		wantDecayTo Level
		wantDecay   bool
	}{
		{"mastered 15 days decays", LevelMastered, 15, LevelImproving, true},
		{"mastered 13 days holds", LevelMastered, 13, "", false},
		{"improving 22 days decays", LevelImproving, 22, LevelLearning, true},
		{"improving 20 days holds", LevelImproving, 20, "", false},
		{"learning never decays", LevelLearning, 100, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := testService(t)
			ctx := context.Background()

			now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			svc.now = func() time.Time { return now }
			last := now.AddDate(0, 0, -tt.daysAgo)

			_ = repo.Upsert(ctx, &store.MasteryRecordData{
				StudentID: "s1", SkillTag: "z", Level: string(tt.level),
				Streak: 2, LastPracticedAt: &last,
			})

			// Score of 60 holds, so the final level isolates decay.
			rec, transitions, err := svc.RecordAttempt(ctx, "s1", "z", attempt(60))
			if err != nil {
				t.Fatal(err)
			}

			if tt.wantDecay {
				if rec.Level != tt.wantDecayTo {
					t.Errorf("Level = %s, want %s", rec.Level, tt.wantDecayTo)
				}
				if len(transitions) != 1 || transitions[0].Trigger != "decay" {
					t.Errorf("transitions = %+v, want decay", transitions)
				}
			} else {
				if rec.Level != tt.level {
					t.Errorf("Level = %s, want %s (no decay)", rec.Level, tt.level)
				}
				if len(transitions) != 0 {
					t.Errorf("transitions = %+v, want none", transitions)
				}
			}
		})
	}
}

func TestRecordAttempt_NeverPracticedSkipsDecay(t *testing.T) {
	svc, repo := testService(t)
	ctx := context.Background()

	// Seeded record with no last-practiced timestamp.
	_ = repo.Upsert(ctx, &store.MasteryRecordData{
		StudentID: "s1", SkillTag: "w", Level: string(LevelMastered),
	})
	rec, transitions, err := svc.RecordAttempt(ctx, "s1", "w", attempt(60))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Level != LevelMastered || len(transitions) != 0 {
		t.Errorf("Level = %s, transitions = %+v", rec.Level, transitions)
	}
}

func TestRecordAttempt_FormatStats(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	_, _, _ = svc.RecordAttempt(ctx, "s1", "f", Attempt{ScorePct: 80, Format: FormatMCQ})
	_, _, _ = svc.RecordAttempt(ctx, "s1", "f", Attempt{ScorePct: 40, Format: FormatMCQ, ErrorType: "careless"})
	rec, _, err := svc.RecordAttempt(ctx, "s1", "f", Attempt{ScorePct: 90, Format: FormatWordProblem})
	if err != nil {
		t.Fatal(err)
	}

	if st := rec.FormatStats[FormatMCQ]; st.Total != 2 || st.Correct != 1 {
		t.Errorf("mcq stats = %+v", st)
	}
	if st := rec.FormatStats[FormatWordProblem]; st.Total != 1 || st.Correct != 1 {
		t.Errorf("word_problem stats = %+v", st)
	}
	if rec.LastErrorType != "careless" {
		t.Errorf("LastErrorType = %q", rec.LastErrorType)
	}
	if rec.TotalAttempts != 3 || rec.CorrectAttempts != 2 {
		t.Errorf("attempts = %d/%d", rec.CorrectAttempts, rec.TotalAttempts)
	}
}

func TestLevelFor_FailOpen(t *testing.T) {
	svc := NewService(nil, nil)
	if got := svc.LevelFor(context.Background(), "s1", "anything"); got != LevelUnknown {
		t.Errorf("LevelFor = %s, want unknown", got)
	}
}

func TestReset(t *testing.T) {
	svc, repo := testService(t)
	ctx := context.Background()

	_, _, _ = svc.RecordAttempt(ctx, "s1", "a", attempt(80))
	_, _, _ = svc.RecordAttempt(ctx, "s2", "a", attempt(80))

	if err := svc.Reset(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if len(repo.rows) != 1 {
		t.Errorf("rows = %d, want 1 (only s2 remains)", len(repo.rows))
	}
	if got := svc.LevelFor(ctx, "s1", "a"); got != LevelUnknown {
		t.Errorf("LevelFor after reset = %s, want unknown", got)
	}
}
