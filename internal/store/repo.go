package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// FormatStatData counts attempts for one question format.
type FormatStatData struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// MasteryRecordData is the persisted mastery state for one
// (student, skill tag) pair.
type MasteryRecordData struct {
	StudentID       string
	SkillTag        string
	Level           string
	Streak          int
	TotalAttempts   int
	CorrectAttempts int
	LastErrorType   string
	FormatStats     map[string]FormatStatData
	LastPracticedAt *time.Time
	UpdatedAt       time.Time
}

// MasteryRepo persists per-skill mastery records.
type MasteryRepo interface {
	// Get returns the record for (studentID, skillTag), or nil if none exists.
	Get(ctx context.Context, studentID, skillTag string) (*MasteryRecordData, error)

	// Upsert inserts or replaces the record keyed by (StudentID, SkillTag).
	Upsert(ctx context.Context, data *MasteryRecordData) error

	// ListByStudent returns all records for a student, ordered by skill tag.
	ListByStudent(ctx context.Context, studentID string) ([]*MasteryRecordData, error)

	// Reset deletes all records for a student.
	Reset(ctx context.Context, studentID string) error
}

// WorksheetRecordData is one entry in a (grade, topic) history stream.
type WorksheetRecordData struct {
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

// HistoryRepo persists worksheet history streams for anti-repetition.
type HistoryRepo interface {
	// Append stores a new worksheet record.
	Append(ctx context.Context, data *WorksheetRecordData) error

	// Recent returns up to limit records for (grade, topic), newest first.
	Recent(ctx context.Context, grade int, topic string, limit int) ([]*WorksheetRecordData, error)

	// Prune deletes all but the keep most recent records for (grade, topic).
	Prune(ctx context.Context, grade int, topic string, keep int) error

	// Reset deletes all records for (grade, topic); topic "" matches
	// every stream in the grade.
	Reset(ctx context.Context, grade int, topic string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event with its sequence metadata.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one request purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given sequence number,
	// or nil if none exists.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose returns aggregated usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel returns aggregated usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
