package mastery

import (
	"context"
	"log/slog"
	"time"

	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
)

// Decay windows: how long a level survives without practice before
// demotion. Learning and unknown never decay.
const (
	MasteredDecayAfter  = 14 * 24 * time.Hour
	ImprovingDecayAfter = 21 * 24 * time.Hour
)

// PassScore is the minimum score counted as a qualifying attempt.
const PassScore = 70

// DemoteScore is the score below which an attempt demotes one level.
// Scores in [50, 70) hold: streak resets, level unchanged.
const DemoteScore = 50

// Attempt is one scored practice result for a (student, skill) pair.
type Attempt struct {
	ScorePct  int    // 0-100
	Format    string // question format practiced, "" when not tracked
	ErrorType string // classifier label for a failed attempt, optional
}

// Service owns mastery records. Concurrent updates to the same
// (student, skill) key are serialized by the repo's upsert; distinct
// keys are independent.
type Service struct {
	repo   store.MasteryRepo
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a mastery service over the given repo. A nil repo
// yields a service whose reads return safe defaults and whose writes
// are dropped.
func NewService(repo store.MasteryRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// RecordAttempt applies one scored attempt to the (student, skill)
// record: decay pre-step first, then the score-based transition, then
// counter updates. Returns the updated record and any transitions that
// occurred (decay and score-based may both fire on one call).
func (s *Service) RecordAttempt(ctx context.Context, studentID, skillTag string, a Attempt) (*Record, []Transition, error) {
	rec, err := s.load(ctx, studentID, skillTag)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	var transitions []Transition

	if t := applyDecay(rec, now); t != nil {
		transitions = append(transitions, *t)
	}
	if t := applyScore(rec, a.ScorePct); t != nil {
		transitions = append(transitions, *t)
	}

	rec.TotalAttempts++
	pass := a.ScorePct >= PassScore
	if pass {
		rec.CorrectAttempts++
	}
	if a.Format != "" {
		st := rec.FormatStats[a.Format]
		st.Total++
		if pass {
			st.Correct++
		}
		rec.FormatStats[a.Format] = st
	}
	if a.ErrorType != "" {
		rec.LastErrorType = a.ErrorType
	}
	rec.LastPracticedAt = &now
	rec.UpdatedAt = now

	if err := s.save(ctx, rec); err != nil {
		return nil, nil, err
	}

	for _, t := range transitions {
		s.logger.Info("mastery transition",
			"student", t.StudentID, "skill", t.SkillTag,
			"from", t.From, "to", t.To, "trigger", t.Trigger)
	}

	return rec, transitions, nil
}

// applyDecay demotes a stale record before the score transition is
// computed. Records that have never been practiced skip decay.
func applyDecay(rec *Record, now time.Time) *Transition {
	if rec.LastPracticedAt == nil {
		return nil
	}
	elapsed := now.Sub(*rec.LastPracticedAt)

	var to Level
	switch {
	case rec.Level == LevelMastered && elapsed > MasteredDecayAfter:
		to = LevelImproving
	case rec.Level == LevelImproving && elapsed > ImprovingDecayAfter:
		to = LevelLearning
	default:
		return nil
	}

	t := &Transition{
		StudentID: rec.StudentID,
		SkillTag:  rec.SkillTag,
		From:      rec.Level,
		To:        to,
		Trigger:   "decay",
	}
	rec.Level = to
	rec.Streak = 0
	return t
}

// applyScore runs the score-based state machine step.
func applyScore(rec *Record, scorePct int) *Transition {
	switch {
	case scorePct >= PassScore:
		rec.Streak++

		if rec.Level == LevelUnknown {
			t := &Transition{
				StudentID: rec.StudentID,
				SkillTag:  rec.SkillTag,
				From:      LevelUnknown,
				To:        LevelLearning,
				Trigger:   "first-pass",
			}
			rec.Level = LevelLearning
			rec.Streak = 1
			return t
		}

		threshold := promotionStreak(rec.Level)
		if threshold > 0 && rec.Streak >= threshold {
			t := &Transition{
				StudentID: rec.StudentID,
				SkillTag:  rec.SkillTag,
				From:      rec.Level,
				To:        nextLevel(rec.Level),
				Trigger:   "streak-promotion",
			}
			rec.Level = nextLevel(rec.Level)
			return t
		}
		return nil

	case scorePct >= DemoteScore:
		rec.Streak = 0
		return nil

	default:
		rec.Streak = 0
		if rec.Level == LevelUnknown {
			return nil
		}
		t := &Transition{
			StudentID: rec.StudentID,
			SkillTag:  rec.SkillTag,
			From:      rec.Level,
			To:        prevLevel(rec.Level),
			Trigger:   "demotion",
		}
		rec.Level = prevLevel(rec.Level)
		return t
	}
}

// LevelFor returns the current level for a (student, skill) pair,
// with decay applied read-only. Missing records and repo errors both
// read as unknown.
func (s *Service) LevelFor(ctx context.Context, studentID, skillTag string) Level {
	rec, err := s.load(ctx, studentID, skillTag)
	if err != nil {
		s.logger.Warn("mastery lookup failed, defaulting to unknown",
			"student", studentID, "skill", skillTag, "error", err)
		return LevelUnknown
	}
	applyDecay(rec, s.now())
	return rec.Level
}

// Get returns the record for a (student, skill) pair, a fresh unknown
// record when none exists.
func (s *Service) Get(ctx context.Context, studentID, skillTag string) (*Record, error) {
	return s.load(ctx, studentID, skillTag)
}

// ListByStudent returns all mastery records for a student.
func (s *Service) ListByStudent(ctx context.Context, studentID string) ([]*Record, error) {
	if s.repo == nil {
		return nil, nil
	}
	rows, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromData(row))
	}
	return out, nil
}

// Reset deletes all mastery records for a student. This is the only
// deletion path.
func (s *Service) Reset(ctx context.Context, studentID string) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Reset(ctx, studentID)
}

func (s *Service) load(ctx context.Context, studentID, skillTag string) (*Record, error) {
	if s.repo == nil {
		return NewRecord(studentID, skillTag), nil
	}
	data, err := s.repo.Get(ctx, studentID, skillTag)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return NewRecord(studentID, skillTag), nil
	}
	return fromData(data), nil
}

func (s *Service) save(ctx context.Context, rec *Record) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Upsert(ctx, toData(rec))
}

func fromData(d *store.MasteryRecordData) *Record {
	rec := &Record{
		StudentID:       d.StudentID,
		SkillTag:        d.SkillTag,
		Level:           Level(d.Level),
		Streak:          d.Streak,
		TotalAttempts:   d.TotalAttempts,
		CorrectAttempts: d.CorrectAttempts,
		LastErrorType:   d.LastErrorType,
		FormatStats:     make(map[string]FormatStat, len(d.FormatStats)),
		LastPracticedAt: d.LastPracticedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if rec.Level == "" {
		rec.Level = LevelUnknown
	}
	for f, st := range d.FormatStats {
		rec.FormatStats[f] = FormatStat{Correct: st.Correct, Total: st.Total}
	}
	return rec
}

func toData(rec *Record) *store.MasteryRecordData {
	d := &store.MasteryRecordData{
		StudentID:       rec.StudentID,
		SkillTag:        rec.SkillTag,
		Level:           string(rec.Level),
		Streak:          rec.Streak,
		TotalAttempts:   rec.TotalAttempts,
		CorrectAttempts: rec.CorrectAttempts,
		LastErrorType:   rec.LastErrorType,
		FormatStats:     make(map[string]store.FormatStatData, len(rec.FormatStats)),
		LastPracticedAt: rec.LastPracticedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	for f, st := range rec.FormatStats {
		d.FormatStats[f] = store.FormatStatData{Correct: st.Correct, Total: st.Total}
	}
	return d
}
