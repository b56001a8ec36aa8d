package relica

import (
	"context"

	"github.com/coregx/relica"

	"github.com/learninglogs/learninglogs"
	"github.com/learninglogs/learninglogs/model"
)

// TopicRepository implements learninglogs.TopicRepository using Relica.
//
// Every call opens its own connection through the ConnectionProvider and
// closes it before returning. No statement runs inside an explicit
// transaction, so each one is autocommitted.
type TopicRepository struct {
	provider *learninglogs.ConnectionProvider
	table    string
}

// NewTopicRepository creates a new TopicRepository over the default topics table.
func NewTopicRepository(provider *learninglogs.ConnectionProvider) *TopicRepository {
	return &TopicRepository{provider: provider, table: model.TopicsTable}
}

// NewTopicRepositoryWithTable creates a new TopicRepository with a custom table name.
func NewTopicRepositoryWithTable(provider *learninglogs.ConnectionProvider, table string) *TopicRepository {
	return &TopicRepository{provider: provider, table: table}
}

func (r *TopicRepository) tableName() string {
	return r.table
}

// Insert stores a new topic; the name is the only bound column.
func (r *TopicRepository) Insert(ctx context.Context, name string) error {
	conn, err := r.provider.Open(ctx)
	if err != nil {
		return err
	}
	defer r.provider.Close(conn)

	db := relica.WrapDB(conn.DB(), conn.Dialect())
	_, err = db.WithContext(ctx).Insert(r.tableName(), map[string]interface{}{
		"name": name,
	}).Execute()
	if err != nil {
		return learninglogs.NewErrorWithCause(learninglogs.ErrCodePersistence, "failed to insert topic", err)
	}
	return nil
}

// FetchAll retrieves every stored topic in backend order.
func (r *TopicRepository) FetchAll(ctx context.Context) ([]model.Topic, error) {
	topics := []model.Topic{}

	conn, err := r.provider.Open(ctx)
	if err != nil {
		return topics, err
	}
	defer r.provider.Close(conn)

	db := relica.WrapDB(conn.DB(), conn.Dialect())
	err = db.WithContext(ctx).Select("*").From(r.tableName()).All(&topics)
	if err != nil {
		return []model.Topic{}, learninglogs.NewErrorWithCause(learninglogs.ErrCodePersistence, "failed to fetch topics", err)
	}
	if topics == nil {
		topics = []model.Topic{}
	}
	return topics, nil
}
