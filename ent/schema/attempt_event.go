package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AttemptEvent records a single answered problem. The success-rate
// window reads the most recent events per user.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.String("operation").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.Int("operand1"),
		field.Int("operand2"),
		field.Int("given").
			Comment("Answer the learner submitted"),
		field.Int("answer").
			Comment("Correct answer for the problem"),
		field.Bool("is_correct"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "timestamp"),
	}
}
