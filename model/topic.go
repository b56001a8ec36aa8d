// Package model contains the domain records persisted by the learning logs store.
package model

import (
	"database/sql"
	"fmt"
	"time"
)

// MaxTopicNameLength is the longest topic name the topics table accepts.
const MaxTopicNameLength = 100

// TopicsTable is the default table topics are stored in.
const TopicsTable = "topics"

// createdAtLayout is the layout used when rendering a topic's creation time.
const createdAtLayout = "2006-01-02 15:04:05"

// Topic represents a subject the user is learning about.
// It maps one row of the topics table.
//
// A Topic built with NewTopic has not been stored yet: its ID is 0 and both
// timestamps are null until the row is read back. A Topic built with
// NewStoredTopic (or scanned by a repository) carries all four fields.
type Topic struct {
	ID        int64        `json:"id" db:"id"`                // Assigned by the database
	Name      string       `json:"name" db:"name"`            // Topic name, at most MaxTopicNameLength characters
	CreatedAt sql.NullTime `json:"createdAt" db:"created_at"` // Set by the database on insert
	UpdatedAt sql.NullTime `json:"updatedAt" db:"updated_at"` // Maintained by the database
}

// TableName returns the database table name for Topic.
func (t Topic) TableName() string {
	return TopicsTable
}

// NewTopic creates a topic that is about to be inserted.
// Only the name is set; the database assigns the ID and timestamps.
func NewTopic(name string) Topic {
	return Topic{Name: name}
}

// NewStoredTopic creates a topic from the values of a stored row.
func NewStoredTopic(id int64, name string, createdAt, updatedAt time.Time) Topic {
	return Topic{
		ID:        id,
		Name:      name,
		CreatedAt: sql.NullTime{Time: createdAt, Valid: true},
		UpdatedAt: sql.NullTime{Time: updatedAt, Valid: true},
	}
}

// IsPersisted reports whether the topic was read back from the database.
func (t Topic) IsPersisted() bool {
	return t.ID > 0 && t.CreatedAt.Valid
}

// String renders the topic as "[<id>] <name> (Created: <createdAt>)".
func (t Topic) String() string {
	return fmt.Sprintf("[%d] %s (Created: %s)", t.ID, t.Name, formatTimestamp(t.CreatedAt))
}

func formatTimestamp(ts sql.NullTime) string {
	if !ts.Valid {
		return "-"
	}
	return ts.Time.Format(createdAtLayout)
}
