package worksheet

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/nirajyt2022-source/edTech-sub001/internal/mastery"
)

// hintInjectCount is how many hint-less questions receive the
// deterministic scaffolding hint.
const hintInjectCount = 2

// driftThreshold is the format-mix deviation, in percentage points,
// above which a drift warning is logged.
const driftThreshold = 20

// BonusFunc produces the extra challenge-mode question. Returning an
// error skips the bonus; it never fails the calibration.
type BonusFunc func(ctx context.Context, gc GenerationContext) (*Question, error)

// Calibrator applies the deterministic post-processing steps to an
// accepted question list: difficulty ramp, hint injection, bonus
// question, and drift observation. Every step fails open; a step that
// cannot run leaves the list as it was.
type Calibrator struct {
	logger *slog.Logger
	bonus  BonusFunc
}

// NewCalibrator creates a Calibrator. bonus may be nil, which disables
// the challenge-mode bonus step.
func NewCalibrator(logger *slog.Logger, bonus BonusFunc) *Calibrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calibrator{logger: logger, bonus: bonus}
}

// Calibrate runs the four steps in order and returns the adjusted
// list. The input slice is not mutated.
func (c *Calibrator) Calibrate(ctx context.Context, questions []Question, gc GenerationContext) []Question {
	out := make([]Question, len(questions))
	copy(out, questions)

	if gc.Scaffolding {
		scaffoldSort(out)
		injectHints(out, gc.Topic)
	}
	if gc.Challenge {
		out = c.appendBonus(ctx, out, gc)
	}
	c.observeDrift(out, gc)

	return out
}

// scaffoldSort orders questions into a difficulty ramp: ascending by
// word count, with the harder formats pushed later on ties. Stable so
// equal questions keep their plan order.
func scaffoldSort(questions []Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		wi, wj := questions[i].WordCount(), questions[j].WordCount()
		if wi != wj {
			return wi < wj
		}
		return !isHardFormat(questions[i].Format) && isHardFormat(questions[j].Format)
	})
}

// isHardFormat reports whether a format demands more of the learner
// than recognition or completion.
func isHardFormat(format string) bool {
	return format == mastery.FormatWordProblem
}

// injectHints writes the deterministic scaffolding hint into the first
// hintInjectCount questions that lack one.
func injectHints(questions []Question, topic string) {
	word := firstWord(topic)
	if word == "" {
		return
	}

	injected := 0
	for i := range questions {
		if injected == hintInjectCount {
			return
		}
		if strings.TrimSpace(questions[i].Hint) != "" {
			continue
		}
		questions[i].Hint = "Think about: " + word
		injected++
	}
}

// appendBonus adds exactly one bonus question in challenge mode. The
// bonus is exempt from slot-plan validation, and a failed bonus
// generation is logged and skipped.
func (c *Calibrator) appendBonus(ctx context.Context, questions []Question, gc GenerationContext) []Question {
	if c.bonus == nil {
		return questions
	}

	q, err := c.bonus(ctx, gc)
	if err != nil || q == nil {
		c.logger.Warn("bonus question generation failed, skipping",
			"topic", gc.Topic, "error", err)
		return questions
	}

	q.IsBonus = true
	return append(questions, *q)
}

// observeDrift compares the actual format distribution to the target
// mix and warns on any format off by more than driftThreshold points.
// Observability only; the list is never changed.
func (c *Calibrator) observeDrift(questions []Question, gc GenerationContext) {
	if len(questions) == 0 || len(gc.FormatMix) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Format]++
	}

	for _, format := range mastery.FormatOrder {
		target, ok := gc.FormatMix[format]
		if !ok {
			continue
		}
		actual := counts[format] * 100 / len(questions)
		if diff := abs(actual - target); diff > driftThreshold {
			c.logger.Warn("format mix drift",
				"topic", gc.Topic,
				"format", format,
				"target_pct", target,
				"actual_pct", actual)
		}
	}
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
