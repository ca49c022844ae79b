package worksheet

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/nirajyt2022-source/edTech-sub001/internal/curriculum"
	"github.com/nirajyt2022-source/edTech-sub001/internal/history"
	"github.com/nirajyt2022-source/edTech-sub001/internal/planner"
)

// Request is one worksheet generation request.
type Request struct {
	Grade   int
	Subject curriculum.Subject

	// Topic is the raw topic string; it is resolved through the
	// registry before anything else happens.
	Topic string

	// Count is the number of questions. Defaults to the recipe
	// baseline of 10 when zero.
	Count int

	// StudentID enables mastery-adaptive difficulty when set.
	StudentID string
}

// Pipeline wires the planning, context, generation, review,
// calibration, gate and history stages into the worksheet entry point.
type Pipeline struct {
	registry   *curriculum.Registry
	planner    *planner.Planner
	contexts   *ContextBuilder
	generator  *SlotGenerator
	reviewer   *Reviewer
	calibrator *Calibrator
	history    *history.Service
	logger     *slog.Logger
	maxTries   int
}

// NewPipeline assembles the full generation pipeline. The history
// service may be nil, which disables anti-repetition recording.
func NewPipeline(reg *curriculum.Registry, gen *SlotGenerator, contexts *ContextBuilder, hs *history.Service, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		registry:   reg,
		planner:    planner.New(reg),
		contexts:   contexts,
		generator:  gen,
		reviewer:   NewReviewer(),
		calibrator: NewCalibrator(logger, gen.GenerateBonus),
		history:    hs,
		logger:     logger,
		maxTries:   gen.config.MaxAttempts,
	}
}

// GenerateWorksheet runs the full pipeline for one request. The only
// hard failures are an unresolvable or wrong-grade topic and an
// invalid request; every downstream signal degrades instead of
// aborting.
func (p *Pipeline) GenerateWorksheet(ctx context.Context, req Request) (*Worksheet, error) {
	if req.Count == 0 {
		req.Count = curriculum.RecipeTotal
	}
	if req.Count < 0 {
		return nil, fmt.Errorf("invalid question count %d", req.Count)
	}

	topic, err := p.registry.Resolve(req.Topic, req.Grade, req.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve topic %q: %w", req.Topic, err)
	}

	profile, _ := p.registry.ProfileOf(topic)

	plan := p.planner.Plan(req.Count, topic)
	gc := p.contexts.BuildContext(ctx, req.StudentID, topic)
	assignFormatHints(plan, gc.FormatMix)

	questions := make([]Question, 0, len(plan))
	for _, slot := range plan {
		questions = append(questions, p.fillSlot(ctx, slot, gc, profile))
	}

	questions = p.calibrator.Calibrate(ctx, questions, gc)

	ws := &Worksheet{
		ID:        uuid.NewString(),
		StudentID: req.StudentID,
		Grade:     topic.Grade,
		Subject:   topic.Subject,
		Topic:     topic.Name,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}

	ws.Audit = Audit(ws, req.Count)
	if !ws.Audit.Passed {
		p.logger.Warn("quality gate reported failures",
			"worksheet", ws.ID, "failures", ws.Audit.Failures)
	}

	p.recordHistory(ctx, ws)

	return ws, nil
}

// fillSlot generates one question with review and retry; when every
// attempt is rejected or errors, the fallback stub fills the slot so
// the plan length is preserved.
func (p *Pipeline) fillSlot(ctx context.Context, slot planner.SlotSpec, gc GenerationContext, profile curriculum.TopicProfile) Question {
	for attempt := 1; attempt <= p.maxTries; attempt++ {
		q, err := p.generator.Generate(ctx, slot, gc)
		if err != nil {
			p.logger.Warn("slot generation failed",
				"slot_type", slot.Type, "skill_tag", slot.SkillTag,
				"attempt", attempt, "error", err)
			continue
		}

		if reasons := p.reviewer.ValidateOne(*q, gc.Grade, profile); len(reasons) > 0 {
			p.logger.Warn("question rejected by reviewer",
				"slot_type", slot.Type, "attempt", attempt, "reasons", reasons)
			continue
		}

		return *q
	}

	p.logger.Warn("slot exhausted retries, substituting fallback",
		"slot_type", slot.Type, "skill_tag", slot.SkillTag)
	return Fallback(slot, gc)
}

// recordHistory appends this worksheet's anti-repetition signals to
// its (grade, topic) stream. Fail-open: a recording error is logged
// and the worksheet is returned regardless.
func (p *Pipeline) recordHistory(ctx context.Context, ws *Worksheet) {
	if p.history == nil {
		return
	}

	rec := history.Record{
		WorksheetID: ws.ID,
		Grade:       ws.Grade,
		Topic:       ws.Topic,
		CreatedAt:   ws.CreatedAt,
	}
	for _, q := range ws.Questions {
		if q.IsFallback {
			continue
		}
		if q.Context != "" {
			rec.UsedContexts = append(rec.UsedContexts, q.Context)
		}
		if q.ErrorID != "" {
			rec.UsedErrorIDs = append(rec.UsedErrorIDs, q.ErrorID)
		}
		if q.ThinkingStyle != "" {
			rec.UsedThinkingStyles = append(rec.UsedThinkingStyles, q.ThinkingStyle)
		}
		if pair := extractNumberPair(q.Text); pair != "" {
			rec.UsedNumberPairs = append(rec.UsedNumberPairs, pair)
		}
		rec.UsedQuestionHashes = append(rec.UsedQuestionHashes,
			history.QuestionHash(q.Text), history.StructuralHash(q.Text))
	}

	if err := p.history.Record(ctx, rec); err != nil {
		p.logger.Warn("history recording failed",
			"worksheet", ws.ID, "error", err)
	}
}

var numberRe = regexp.MustCompile(`\d+`)

// extractNumberPair returns the first two numbers in a question as
// "a,b", or "" when the question has fewer than two.
func extractNumberPair(text string) string {
	nums := numberRe.FindAllString(text, 2)
	if len(nums) < 2 {
		return ""
	}
	return nums[0] + "," + nums[1]
}
