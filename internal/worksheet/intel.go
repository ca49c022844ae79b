package worksheet

import (
	"context"
	"log/slog"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

// ContextBuilder assembles a GenerationContext from the curriculum
// registry, the mastery engine and the history store. Every dependency
// call is fail-open: a miss or error substitutes the safe default for
// that piece and the build always succeeds.
type ContextBuilder struct {
	registry *curriculum.Registry
	mastery  *mastery.Service
	history  *history.Service
	logger   *slog.Logger
}

// NewContextBuilder creates a ContextBuilder. Any dependency may be
// nil; the corresponding context fields then keep their safe defaults.
func NewContextBuilder(reg *curriculum.Registry, ms *mastery.Service, hs *history.Service, logger *slog.Logger) *ContextBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContextBuilder{registry: reg, mastery: ms, history: hs, logger: logger}
}

// BuildContext assembles the generation context for one request.
// studentID may be empty, in which case no mastery data is consulted
// and the difficulty defaults apply.
func (b *ContextBuilder) BuildContext(ctx context.Context, studentID string, topic curriculum.CanonicalTopic) GenerationContext {
	gc := DefaultContext(topic)

	tags := b.applyCurriculum(&gc, topic)
	if studentID != "" {
		b.applyMastery(ctx, &gc, studentID, tags)
	}
	b.applyHistory(ctx, &gc, topic)

	return gc
}

// applyCurriculum fills chapter, subtopics, objectives and skill tags
// from the registry. Returns the tags consulted for mastery lookup.
func (b *ContextBuilder) applyCurriculum(gc *GenerationContext, ct curriculum.CanonicalTopic) []string {
	if b.registry == nil {
		gc.ValidSkillTags = planner.FallbackSkillTags()
		return gc.ValidSkillTags
	}

	t, ok := b.registry.TopicOf(ct)
	if !ok {
		b.logger.Warn("topic has no curriculum entry, using fallback skill tags",
			"topic", ct.Name, "grade", ct.Grade)
		gc.ValidSkillTags = planner.FallbackSkillTags()
		return gc.ValidSkillTags
	}

	gc.Chapter = t.Chapter
	gc.Subtopics = t.Subtopics
	gc.Objectives = t.Objectives
	gc.ValidSkillTags = t.SkillTags
	return t.SkillTags
}

// applyMastery derives bloom level, format mix and the scaffolding /
// challenge flags from the student's mastery across the topic's skill
// tags. The weakest tag governs difficulty so the worksheet never
// outpaces a gap.
func (b *ContextBuilder) applyMastery(ctx context.Context, gc *GenerationContext, studentID string, tags []string) {
	if b.mastery == nil || len(tags) == 0 {
		return
	}

	lowest := mastery.LevelMastered
	found := false
	merged := make(map[string]mastery.FormatStat)

	for _, tag := range tags {
		rec, err := b.mastery.Get(ctx, studentID, tag)
		if err != nil {
			b.logger.Warn("mastery lookup failed, using difficulty defaults",
				"student", studentID, "skill_tag", tag, "error", err)
			return
		}
		// Get returns a fresh unknown record when the pair has never
		// been practiced; only real history counts as data.
		if rec.TotalAttempts == 0 && rec.Level == mastery.LevelUnknown {
			lowest = mastery.LevelUnknown
			continue
		}
		found = true
		if levelBelow(rec.Level, lowest) {
			lowest = rec.Level
		}
		for f, st := range rec.FormatStats {
			m := merged[f]
			m.Correct += st.Correct
			m.Total += st.Total
			merged[f] = m
		}
	}

	if !found {
		return
	}

	gc.BloomLevel = bloomForLevel(lowest)
	gc.FormatMix = mastery.FormatMix(lowest, merged)
	gc.Scaffolding = lowest == mastery.LevelUnknown || lowest == mastery.LevelLearning
	gc.Challenge = lowest == mastery.LevelMastered
}

// applyHistory attaches the anti-repetition state for this stream.
// The history service already fails open, so a nil check is all
// that's needed here.
func (b *ContextBuilder) applyHistory(ctx context.Context, gc *GenerationContext, ct curriculum.CanonicalTopic) {
	if b.history == nil {
		return
	}
	gc.Avoid = b.history.AvoidState(ctx, ct.Grade, ct.Name)
}

// levelBelow reports whether a sits strictly below b in the mastery
// ladder.
func levelBelow(a, b mastery.Level) bool {
	order := map[mastery.Level]int{
		mastery.LevelUnknown:   0,
		mastery.LevelLearning:  1,
		mastery.LevelImproving: 2,
		mastery.LevelMastered:  3,
	}
	return order[a] < order[b]
}
