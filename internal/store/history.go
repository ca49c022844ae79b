package store

import (
	"context"
	"fmt"

	"github.com/nirajyt2022-source/edTech-sub001/ent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/predicate"
	"github.com/nirajyt2022-source/edTech-sub001/ent/worksheetrecord"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, data *WorksheetRecordData) error {
	builder := r.client.WorksheetRecord.Create().
		SetWorksheetID(data.WorksheetID).
		SetGrade(data.Grade).
		SetTopic(data.Topic).
		SetUsedContexts(data.UsedContexts).
		SetUsedErrorIds(data.UsedErrorIDs).
		SetUsedThinkingStyles(data.UsedThinkingStyles).
		SetUsedNumberPairs(data.UsedNumberPairs).
		SetUsedQuestionHashes(data.UsedQuestionHashes)
	if !data.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(data.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save worksheet record: %w", err)
	}
	return nil
}

func (r *historyRepo) Recent(ctx context.Context, grade int, topic string, limit int) ([]*WorksheetRecordData, error) {
	recs, err := r.client.WorksheetRecord.Query().
		Where(
			worksheetrecord.Grade(grade),
			worksheetrecord.Topic(topic),
		).
		Order(ent.Desc(worksheetrecord.FieldCreatedAt), ent.Desc(worksheetrecord.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query worksheet records: %w", err)
	}

	out := make([]*WorksheetRecordData, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entWorksheetToData(rec))
	}
	return out, nil
}

func (r *historyRepo) Prune(ctx context.Context, grade int, topic string, keep int) error {
	// Find the cutoff: the Nth most recent record for this stream.
	recs, err := r.client.WorksheetRecord.Query().
		Where(
			worksheetrecord.Grade(grade),
			worksheetrecord.Topic(topic),
		).
		Order(ent.Desc(worksheetrecord.FieldCreatedAt), ent.Desc(worksheetrecord.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query worksheet records for prune: %w", err)
	}
	if len(recs) == 0 {
		return nil // fewer than keep records exist
	}

	_, err = r.client.WorksheetRecord.Delete().
		Where(
			worksheetrecord.Grade(grade),
			worksheetrecord.Topic(topic),
			worksheetrecord.IDLTE(recs[0].ID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune worksheet records: %w", err)
	}
	return nil
}

func (r *historyRepo) Reset(ctx context.Context, grade int, topic string) error {
	preds := []predicate.WorksheetRecord{worksheetrecord.Grade(grade)}
	if topic != "" {
		preds = append(preds, worksheetrecord.Topic(topic))
	}
	_, err := r.client.WorksheetRecord.Delete().
		Where(preds...).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset worksheet records: %w", err)
	}
	return nil
}

// entWorksheetToData converts an ent WorksheetRecord to repo data.
func entWorksheetToData(rec *ent.WorksheetRecord) *WorksheetRecordData {
	return &WorksheetRecordData{
		WorksheetID:        rec.WorksheetID,
		Grade:              rec.Grade,
		Topic:              rec.Topic,
		UsedContexts:       rec.UsedContexts,
		UsedErrorIDs:       rec.UsedErrorIds,
		UsedThinkingStyles: rec.UsedThinkingStyles,
		UsedNumberPairs:    rec.UsedNumberPairs,
		UsedQuestionHashes: rec.UsedQuestionHashes,
		CreatedAt:          rec.CreatedAt,
	}
}
