package learninglogs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/learninglogs/learninglogs/model"
)

type mockTopicRepository struct {
	mock.Mock
}

func (m *mockTopicRepository) Insert(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockTopicRepository) FetchAll(ctx context.Context) ([]model.Topic, error) {
	args := m.Called(ctx)
	topics, _ := args.Get(0).([]model.Topic)
	return topics, args.Error(1)
}

func newTestJournal(t *testing.T) (*Journal, *mockTopicRepository, *recordingLogger) {
	t.Helper()
	repo := &mockTopicRepository{}
	logger := &recordingLogger{}

	journal, err := NewJournal(WithTopicRepository(repo), WithJournalLogger(logger))
	require.NoError(t, err)

	return journal, repo, logger
}

func TestNewJournal_RequiresDependencies(t *testing.T) {
	_, err := NewJournal(WithJournalLogger(&NoopLogger{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TopicRepository is required")

	_, err = NewJournal(WithTopicRepository(&mockTopicRepository{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Logger is required")

	_, err = NewJournal(WithTopicRepository(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic repository cannot be nil")
}

func TestJournal_AddTopic(t *testing.T) {
	journal, repo, _ := newTestJournal(t)
	ctx := context.Background()

	repo.On("Insert", ctx, "Go Generics").Return(nil).Once()

	topic, err := journal.AddTopic(ctx, "  Go Generics \n")
	require.NoError(t, err)
	assert.Equal(t, "Go Generics", topic.Name)
	assert.Equal(t, int64(0), topic.ID)
	assert.False(t, topic.IsPersisted())

	repo.AssertExpectations(t)
}

func TestJournal_AddTopic_RejectsInvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Spaces", "   "},
		{"Tabs and newlines", "\t\n"},
		{"Too long", strings.Repeat("x", model.MaxTopicNameLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal, repo, _ := newTestJournal(t)

			_, err := journal.AddTopic(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestJournal_AddTopic_MaxLengthAccepted(t *testing.T) {
	journal, repo, _ := newTestJournal(t)
	name := strings.Repeat("é", model.MaxTopicNameLength)

	repo.On("Insert", mock.Anything, name).Return(nil).Once()

	_, err := journal.AddTopic(context.Background(), name)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestJournal_AddTopic_RepositoryFailure(t *testing.T) {
	journal, repo, logger := newTestJournal(t)
	cause := NewErrorWithCause(ErrCodePersistence, "failed to insert topic", errors.New("no such table: topics"))

	repo.On("Insert", mock.Anything, "Kubernetes").Return(cause).Once()

	_, err := journal.AddTopic(context.Background(), "Kubernetes")
	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "Kubernetes")
}

func TestJournal_ListTopics(t *testing.T) {
	journal, repo, logger := newTestJournal(t)
	now := time.Date(2026, 2, 24, 10, 30, 0, 0, time.UTC)
	stored := []model.Topic{
		model.NewStoredTopic(1, "Java Basics", now, now),
		model.NewStoredTopic(2, "Go Basics", now, now),
	}

	repo.On("FetchAll", mock.Anything).Return(stored, nil).Once()

	topics, err := journal.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, topics)
	assert.Empty(t, logger.errors)
}

func TestJournal_ListTopics_Empty(t *testing.T) {
	journal, repo, _ := newTestJournal(t)

	repo.On("FetchAll", mock.Anything).Return([]model.Topic{}, nil).Once()

	topics, err := journal.ListTopics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestJournal_ListTopics_FailureIsDistinguishable(t *testing.T) {
	journal, repo, logger := newTestJournal(t)
	cause := NewErrorWithCause(ErrCodeConnection, "failed to connect", errors.New("connection refused"))

	repo.On("FetchAll", mock.Anything).Return(nil, cause).Once()

	topics, err := journal.ListTopics(context.Background())
	require.Error(t, err)
	assert.True(t, IsConnection(err))
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "failed to fetch topics")
}
