package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopic_TableName(t *testing.T) {
	topic := Topic{}
	assert.Equal(t, "topics", topic.TableName())
}

func TestNewTopic(t *testing.T) {
	topic := NewTopic("Go Concurrency")

	assert.Equal(t, int64(0), topic.ID)
	assert.Equal(t, "Go Concurrency", topic.Name)
	assert.False(t, topic.CreatedAt.Valid)
	assert.False(t, topic.UpdatedAt.Valid)
	assert.False(t, topic.IsPersisted())
}

func TestNewStoredTopic(t *testing.T) {
	created := time.Date(2026, 2, 24, 10, 30, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	topic := NewStoredTopic(7, "SQL Joins", created, updated)

	assert.Equal(t, int64(7), topic.ID)
	assert.Equal(t, "SQL Joins", topic.Name)
	assert.True(t, topic.CreatedAt.Valid)
	assert.Equal(t, created, topic.CreatedAt.Time)
	assert.True(t, topic.UpdatedAt.Valid)
	assert.Equal(t, updated, topic.UpdatedAt.Time)
	assert.True(t, topic.IsPersisted())
}

func TestTopic_String(t *testing.T) {
	t1 := time.Date(2026, 2, 24, 10, 30, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 25, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		topic    Topic
		expected string
	}{
		{
			name:     "Stored topic",
			topic:    NewStoredTopic(1, "Java Basics", t1, t2),
			expected: "[1] Java Basics (Created: 2026-02-24 10:30:00)",
		},
		{
			name:     "Unsaved topic",
			topic:    NewTopic("Rust Ownership"),
			expected: "[0] Rust Ownership (Created: -)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.topic.String())
		})
	}
}

func TestTopic_String_UsesCreatedAtOnly(t *testing.T) {
	t1 := time.Date(2026, 2, 24, 10, 30, 0, 0, time.UTC)

	a := NewStoredTopic(1, "Java Basics", t1, t1)
	b := NewStoredTopic(1, "Java Basics", t1, t1.Add(48*time.Hour))

	assert.Equal(t, a.String(), b.String())
}
