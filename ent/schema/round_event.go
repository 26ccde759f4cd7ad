package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one played round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{ArchiveMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("match_id").
			NotEmpty(),
		field.Int("round").
			Positive(),
		field.String("human_move"),
		field.String("computer_move"),
		field.String("outcome").
			Comment("win, lose or tie from the human side"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("match_id", "round").
			Unique(),
	}
}
