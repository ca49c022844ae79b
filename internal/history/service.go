package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/nirajyt2022-source/edTech-sub001/internal/store"
)

// Window is the number of recent worksheets retained per
// (grade, topic) stream. Older records are pruned on append.
const Window = 30

// Record is one completed worksheet's anti-repetition signals.
type Record struct {
	WorksheetID        string
	Grade              int
	Topic              string
	UsedContexts       []string
	UsedErrorIDs       []string
	UsedThinkingStyles []string
	UsedNumberPairs    []string
	UsedQuestionHashes []string
	CreatedAt          time.Time
}

// AvoidState is the union of all signals across the retained window.
// Generation biases away from everything listed here.
type AvoidState struct {
	UsedContexts       []string
	UsedErrorIDs       []string
	UsedThinkingStyles []string
	UsedNumberPairs    []string
	UsedQuestionHashes []string
}

// Service owns the rolling worksheet history. Reads fail open: a
// broken history store degrades to an empty avoid state, never a
// failed generation.
type Service struct {
	repo   store.HistoryRepo
	logger *slog.Logger
}

// NewService creates a history service over the given repo. A nil
// repo disables recording and returns empty avoid states.
func NewService(repo store.HistoryRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Record appends a worksheet record and prunes the stream to the most
// recent Window entries.
func (s *Service) Record(ctx context.Context, rec Record) error {
	if s.repo == nil {
		return nil
	}
	data := &store.WorksheetRecordData{
		WorksheetID:        rec.WorksheetID,
		Grade:              rec.Grade,
		Topic:              rec.Topic,
		UsedContexts:       rec.UsedContexts,
		UsedErrorIDs:       rec.UsedErrorIDs,
		UsedThinkingStyles: rec.UsedThinkingStyles,
		UsedNumberPairs:    rec.UsedNumberPairs,
		UsedQuestionHashes: rec.UsedQuestionHashes,
		CreatedAt:          rec.CreatedAt,
	}
	if err := s.repo.Append(ctx, data); err != nil {
		return err
	}
	return s.repo.Prune(ctx, rec.Grade, rec.Topic, Window)
}

// AvoidState unions all anti-repetition signals across the retained
// window for a (grade, topic) stream. Repo failures return an empty
// state with a warning.
func (s *Service) AvoidState(ctx context.Context, grade int, topic string) AvoidState {
	if s.repo == nil {
		return AvoidState{}
	}

	rows, err := s.repo.Recent(ctx, grade, topic, Window)
	if err != nil {
		s.logger.Warn("history lookup failed, generating without avoid state",
			"grade", grade, "topic", topic, "error", err)
		return AvoidState{}
	}

	var state AvoidState
	state.UsedContexts = unionField(rows, func(r *store.WorksheetRecordData) []string { return r.UsedContexts })
	state.UsedErrorIDs = unionField(rows, func(r *store.WorksheetRecordData) []string { return r.UsedErrorIDs })
	state.UsedThinkingStyles = unionField(rows, func(r *store.WorksheetRecordData) []string { return r.UsedThinkingStyles })
	state.UsedNumberPairs = unionField(rows, func(r *store.WorksheetRecordData) []string { return r.UsedNumberPairs })
	state.UsedQuestionHashes = unionField(rows, func(r *store.WorksheetRecordData) []string { return r.UsedQuestionHashes })
	return state
}

// Reset removes all history for a (grade, topic) stream; a topic of
// "" clears every stream for the grade.
func (s *Service) Reset(ctx context.Context, grade int, topic string) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Reset(ctx, grade, topic)
}

// unionField merges one signal field across records, deduplicated,
// preserving first-seen order.
func unionField(rows []*store.WorksheetRecordData, get func(*store.WorksheetRecordData) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rows {
		for _, v := range get(r) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
