package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	matchEventsTable = "match_events"
	roundEventsTable = "round_events"
)

var (
	// MatchEventsColumns holds the columns for the "match_events" table.
	MatchEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "match_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "target", Type: field.TypeInt, Default: 0},
		{Name: "human_score", Type: field.TypeInt, Default: 0},
		{Name: "computer_score", Type: field.TypeInt, Default: 0},
		{Name: "ties", Type: field.TypeInt, Default: 0},
		{Name: "winner", Type: field.TypeString, Default: ""},
	}
	// MatchEventsTable holds the schema information for the "match_events" table.
	MatchEventsTable = &schema.Table{
		Name:       matchEventsTable,
		Columns:    MatchEventsColumns,
		PrimaryKey: []*schema.Column{MatchEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "matchevent_match_id", Columns: []*schema.Column{MatchEventsColumns[3]}},
			{Name: "matchevent_action", Columns: []*schema.Column{MatchEventsColumns[4]}},
		},
	}

	// RoundEventsColumns holds the columns for the "round_events" table.
	RoundEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "match_id", Type: field.TypeString},
		{Name: "round", Type: field.TypeInt},
		{Name: "human_move", Type: field.TypeString},
		{Name: "computer_move", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
	}
	// RoundEventsTable holds the schema information for the "round_events" table.
	RoundEventsTable = &schema.Table{
		Name:       roundEventsTable,
		Columns:    RoundEventsColumns,
		PrimaryKey: []*schema.Column{RoundEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "roundevent_match_id_round", Unique: true, Columns: []*schema.Column{RoundEventsColumns[3], RoundEventsColumns[4]}},
		},
	}

	// Tables holds all the tables in the archive schema.
	Tables = []*schema.Table{
		MatchEventsTable,
		RoundEventsTable,
	}
)
