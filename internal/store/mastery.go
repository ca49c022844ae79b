package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nirajyt2022-source/edTech-sub001/ent"
	"github.com/nirajyt2022-source/edTech-sub001/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, studentID, skillTag string) (*MasteryRecordData, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.StudentID(studentID),
			masteryrecord.SkillTag(skillTag),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return entMasteryToData(rec)
}

func (r *masteryRepo) Upsert(ctx context.Context, data *MasteryRecordData) error {
	stats, err := formatStatsToMap(data.FormatStats)
	if err != nil {
		return fmt.Errorf("marshal format stats: %w", err)
	}

	existing, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.StudentID(data.StudentID),
			masteryrecord.SkillTag(data.SkillTag),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query mastery record: %w", err)
	}

	if existing == nil {
		builder := r.client.MasteryRecord.Create().
			SetStudentID(data.StudentID).
			SetSkillTag(data.SkillTag).
			SetLevel(data.Level).
			SetStreak(data.Streak).
			SetTotalAttempts(data.TotalAttempts).
			SetCorrectAttempts(data.CorrectAttempts).
			SetLastErrorType(data.LastErrorType).
			SetFormatStats(stats)
		if data.LastPracticedAt != nil {
			builder = builder.SetLastPracticedAt(*data.LastPracticedAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create mastery record: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetLevel(data.Level).
		SetStreak(data.Streak).
		SetTotalAttempts(data.TotalAttempts).
		SetCorrectAttempts(data.CorrectAttempts).
		SetLastErrorType(data.LastErrorType).
		SetFormatStats(stats)
	if data.LastPracticedAt != nil {
		builder = builder.SetLastPracticedAt(*data.LastPracticedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	return nil
}

func (r *masteryRepo) ListByStudent(ctx context.Context, studentID string) ([]*MasteryRecordData, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.StudentID(studentID)).
		Order(ent.Asc(masteryrecord.FieldSkillTag)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}

	out := make([]*MasteryRecordData, 0, len(recs))
	for _, rec := range recs {
		data, err := entMasteryToData(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func (r *masteryRepo) Reset(ctx context.Context, studentID string) error {
	_, err := r.client.MasteryRecord.Delete().
		Where(masteryrecord.StudentID(studentID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset mastery records: %w", err)
	}
	return nil
}

// formatStatsToMap converts format stats to map[string]any for ent JSON storage.
func formatStatsToMap(stats map[string]FormatStatData) (map[string]any, error) {
	b, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entMasteryToData converts an ent MasteryRecord to repo data.
func entMasteryToData(rec *ent.MasteryRecord) (*MasteryRecordData, error) {
	data := &MasteryRecordData{
		StudentID:       rec.StudentID,
		SkillTag:        rec.SkillTag,
		Level:           rec.Level,
		Streak:          rec.Streak,
		TotalAttempts:   rec.TotalAttempts,
		CorrectAttempts: rec.CorrectAttempts,
		LastErrorType:   rec.LastErrorType,
		LastPracticedAt: rec.LastPracticedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	if len(rec.FormatStats) > 0 {
		b, err := json.Marshal(rec.FormatStats)
		if err != nil {
			return nil, fmt.Errorf("marshal ent format stats: %w", err)
		}
		if err := json.Unmarshal(b, &data.FormatStats); err != nil {
			return nil, fmt.Errorf("unmarshal format stats: %w", err)
		}
	}
	return data, nil
}
