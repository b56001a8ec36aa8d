package learninglogs

import (
	"context"

	"github.com/learninglogs/learninglogs/model"
)

// TopicRepository defines the persistence interface for topics.
// It is the only writer of the topics table.
//
// Implementations open one connection per call and release it before
// returning, on every path.
type TopicRepository interface {
	// Insert stores a new topic with the given name. The database assigns
	// the ID and timestamps. The name is bound as a statement parameter.
	//
	// Returns an error with code ErrCodeConnection if no connection could be
	// obtained, or ErrCodePersistence if the statement failed.
	Insert(ctx context.Context, name string) error

	// FetchAll returns every stored topic in the order the backend yields
	// them; callers must not rely on any ordering.
	//
	// The returned slice is never nil. On failure it is empty and the error
	// carries ErrCodeConnection or ErrCodePersistence, so callers can tell
	// an empty table from a failed read.
	FetchAll(ctx context.Context) ([]model.Topic, error)
}
