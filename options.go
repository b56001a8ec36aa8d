package learninglogs

import "fmt"

// JournalOption is a function that configures a Journal.
//
// Example:
//
//	journal, err := learninglogs.NewJournal(
//	    learninglogs.WithTopicRepository(repo),
//	    learninglogs.WithJournalLogger(logger),
//	)
type JournalOption func(*Journal) error

// WithTopicRepository sets the repository topics are stored in.
// The repository is required and must not be nil.
//
// This is a required option for NewJournal.
func WithTopicRepository(repo TopicRepository) JournalOption {
	return func(j *Journal) error {
		if repo == nil {
			return fmt.Errorf("topic repository cannot be nil")
		}
		j.topics = repo
		return nil
	}
}

// WithJournalLogger sets the logger failed operations are reported to.
// Logger is required and must not be nil.
//
// This is a required option for NewJournal.
//
// Use NoopLogger for silent operation.
func WithJournalLogger(logger Logger) JournalOption {
	return func(j *Journal) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		j.logger = logger
		return nil
	}
}
