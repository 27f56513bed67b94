package store

import (
	"context"
	"fmt"

	"github.com/cuentaconmigo/conmigo/ent"
	entlesson "github.com/cuentaconmigo/conmigo/ent/lesson"
)

// lessonRepo implements LessonRepo using the ent client.
type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Create(ctx context.Context, l *LessonRecord) (*LessonRecord, error) {
	builder := r.client.Lesson.Create().
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetCategory(l.Category).
		SetDifficulty(l.Difficulty).
		SetPoints(l.Points).
		SetPosition(l.Position)

	if l.Content != nil {
		builder = builder.SetContent(l.Content)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	return lessonFromEnt(row), nil
}

func (r *lessonRepo) Update(ctx context.Context, l *LessonRecord) (*LessonRecord, error) {
	builder := r.client.Lesson.UpdateOneID(l.ID).
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetCategory(l.Category).
		SetDifficulty(l.Difficulty).
		SetPoints(l.Points).
		SetPosition(l.Position)

	if l.Content != nil {
		builder = builder.SetContent(l.Content)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	return lessonFromEnt(row), nil
}

func (r *lessonRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Lesson.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) ByID(ctx context.Context, id int) (*LessonRecord, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return lessonFromEnt(row), nil
}

func (r *lessonRepo) List(ctx context.Context) ([]LessonRecord, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Asc(entlesson.FieldCategory), ent.Asc(entlesson.FieldPosition), ent.Asc(entlesson.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	lessons := make([]LessonRecord, len(rows))
	for i, row := range rows {
		lessons[i] = *lessonFromEnt(row)
	}
	return lessons, nil
}

func lessonFromEnt(row *ent.Lesson) *LessonRecord {
	return &LessonRecord{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		Difficulty:  row.Difficulty,
		Points:      row.Points,
		Content:     row.Content,
		Position:    row.Position,
	}
}
