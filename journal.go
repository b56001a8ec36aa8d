package learninglogs

import (
	"context"

	"github.com/learninglogs/learninglogs/model"
)

// Journal is the entry point for adding and listing topics.
// It validates input before anything reaches the repository and reports
// repository failures to the logger as well as to the caller.
//
// Thread safety: Safe for concurrent use.
type Journal struct {
	topics TopicRepository
	logger Logger
}

// NewJournal creates a new Journal with the provided options.
//
// Required options:
//   - WithTopicRepository: where topics are stored
//   - WithJournalLogger: logger instance
func NewJournal(opts ...JournalOption) (*Journal, error) {
	j := &Journal{}

	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply journal option", err)
		}
	}

	if j.topics == nil {
		return nil, NewError(ErrCodeConfiguration, "TopicRepository is required")
	}
	if j.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required")
	}

	return j, nil
}

// AddTopic stores a new topic named name (surrounding whitespace removed).
//
// An empty, whitespace-only or too long name returns ErrCodeValidation
// without touching the repository. On success the unsaved topic that was
// inserted is returned; its ID and timestamps are only known after ListTopics.
func (j *Journal) AddTopic(ctx context.Context, name string) (model.Topic, error) {
	req := NewAddTopicRequest(name)
	if err := req.Validate(); err != nil {
		return model.Topic{}, NewErrorWithCause(ErrCodeValidation, "invalid topic", err)
	}

	topic := model.NewTopic(req.Name)
	if err := j.topics.Insert(ctx, topic.Name); err != nil {
		j.logger.Warnf("failed to add topic %q: %v", topic.Name, err)
		return model.Topic{}, err
	}

	j.logger.Debugf("topic %q added", topic.Name)
	return topic, nil
}

// ListTopics returns all stored topics in backend order.
//
// The slice is never nil. A failed read is logged and returned as an error
// alongside an empty slice, so callers may choose to degrade to "no topics".
func (j *Journal) ListTopics(ctx context.Context) ([]model.Topic, error) {
	topics, err := j.topics.FetchAll(ctx)
	if topics == nil {
		topics = []model.Topic{}
	}
	if err != nil {
		j.logger.Errorf("failed to fetch topics: %v", err)
		return topics, err
	}
	return topics, nil
}
