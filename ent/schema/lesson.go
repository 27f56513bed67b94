package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is one catalog entry learners can complete.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("category").
			NotEmpty().
			Comment("Operation family, e.g. addition, subtraction"),
		field.String("difficulty").
			Default("beginner").
			Comment("Tier: beginner, intermediate or advanced"),
		field.Int("points").
			Default(100).
			Comment("Score awarded for a full completion"),
		field.JSON("content", map[string]any{}).
			Optional().
			Comment("Exercise payload rendered by the client"),
		field.Int("position").
			Default(0).
			Comment("Display order within the category"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("difficulty"),
	}
}
