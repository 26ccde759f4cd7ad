package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MatchEvent records a match lifecycle transition: start, finish or abandon.
type MatchEvent struct {
	ent.Schema
}

func (MatchEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{ArchiveMixin{}}
}

func (MatchEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("match_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, finish or abandon"),
		field.Int("target").
			Default(0),
		field.Int("human_score").
			Default(0),
		field.Int("computer_score").
			Default(0),
		field.Int("ties").
			Default(0),
		field.String("winner").
			Default("").
			Comment("human or computer on finish"),
	}
}

func (MatchEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("match_id"),
		index.Fields("action"),
	}
}
