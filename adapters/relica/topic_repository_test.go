package relica

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/learninglogs/learninglogs"
	"github.com/learninglogs/learninglogs/model"
)

var sqliteDrivers = []string{learninglogs.DriverSQLite3, learninglogs.DriverSQLite}

// newSQLiteRepository creates a fresh database file with the topics schema
// and returns a repository bound to it.
func newSQLiteRepository(t *testing.T, driver string) (*TopicRepository, *sql.DB) {
	t.Helper()

	cfg := learninglogs.DatabaseConfig{
		Driver:   driver,
		Database: filepath.Join(t.TempDir(), "learning_logs.db"),
	}

	schema, err := learninglogs.Schema(cfg.Dialect())
	require.NoError(t, err)

	admin, err := sql.Open(cfg.Driver, cfg.DSN())
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	_, err = admin.Exec(schema)
	require.NoError(t, err)

	provider, err := learninglogs.NewConnectionProvider(cfg)
	require.NoError(t, err)

	return NewTopicRepository(provider), admin
}

func forEachDriver(t *testing.T, fn func(t *testing.T, repo *TopicRepository, admin *sql.DB)) {
	for _, driver := range sqliteDrivers {
		t.Run(driver, func(t *testing.T) {
			repo, admin := newSQLiteRepository(t, driver)
			fn(t, repo, admin)
		})
	}
}

func TestTopicRepository_FetchAll_Empty(t *testing.T) {
	forEachDriver(t, func(t *testing.T, repo *TopicRepository, _ *sql.DB) {
		topics, err := repo.FetchAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, topics)
		assert.Empty(t, topics)
	})
}

func TestTopicRepository_InsertThenFetch(t *testing.T) {
	forEachDriver(t, func(t *testing.T, repo *TopicRepository, _ *sql.DB) {
		ctx := context.Background()

		require.NoError(t, repo.Insert(ctx, "Java Basics"))

		topics, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, topics, 1)

		topic := topics[0]
		assert.Equal(t, "Java Basics", topic.Name)
		assert.Positive(t, topic.ID)
		assert.True(t, topic.CreatedAt.Valid)
		assert.False(t, topic.CreatedAt.Time.IsZero())
		assert.True(t, topic.UpdatedAt.Valid)
		assert.True(t, topic.IsPersisted())
	})
}

func TestTopicRepository_InsertMany(t *testing.T) {
	forEachDriver(t, func(t *testing.T, repo *TopicRepository, _ *sql.DB) {
		ctx := context.Background()
		names := []string{"Go Basics", "SQL Joins", "Docker", "Kubernetes", "gRPC"}

		for _, name := range names {
			require.NoError(t, repo.Insert(ctx, name))
		}

		topics, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, topics, len(names))

		got := make([]string, 0, len(topics))
		ids := make(map[int64]bool, len(topics))
		for _, topic := range topics {
			got = append(got, topic.Name)
			ids[topic.ID] = true
		}
		assert.ElementsMatch(t, names, got)
		assert.Len(t, ids, len(names), "ids must be unique")
	})
}

func TestTopicRepository_InsertBindsNameAsParameter(t *testing.T) {
	forEachDriver(t, func(t *testing.T, repo *TopicRepository, _ *sql.DB) {
		ctx := context.Background()
		name := "Robert'); DROP TABLE topics;--"

		require.NoError(t, repo.Insert(ctx, name))

		topics, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, name, topics[0].Name)
	})
}

func TestTopicRepository_StatementFailure(t *testing.T) {
	forEachDriver(t, func(t *testing.T, repo *TopicRepository, admin *sql.DB) {
		ctx := context.Background()

		_, err := admin.Exec("DROP TABLE topics")
		require.NoError(t, err)

		err = repo.Insert(ctx, "Lost Topic")
		require.Error(t, err)
		assert.True(t, learninglogs.IsPersistence(err))

		topics, err := repo.FetchAll(ctx)
		require.Error(t, err)
		assert.True(t, learninglogs.IsPersistence(err))
		assert.NotNil(t, topics)
		assert.Empty(t, topics)
	})
}

func TestTopicRepository_BrokenTarget(t *testing.T) {
	cfg := learninglogs.DatabaseConfig{
		Driver:   learninglogs.DriverSQLite3,
		Database: filepath.Join(t.TempDir(), "no", "such", "dir", "learning_logs.db"),
	}
	provider, err := learninglogs.NewConnectionProvider(cfg)
	require.NoError(t, err)
	repo := NewTopicRepository(provider)
	ctx := context.Background()

	var insertErr error
	assert.NotPanics(t, func() {
		insertErr = repo.Insert(ctx, "Java Basics")
	})
	require.Error(t, insertErr)
	assert.True(t, learninglogs.IsConnection(insertErr))

	var (
		topics   []model.Topic
		fetchErr error
	)
	assert.NotPanics(t, func() {
		topics, fetchErr = repo.FetchAll(ctx)
	})
	require.Error(t, fetchErr)
	assert.True(t, learninglogs.IsConnection(fetchErr))
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestTopicRepository_CustomTable(t *testing.T) {
	cfg := learninglogs.DatabaseConfig{
		Driver:   learninglogs.DriverSQLite3,
		Database: filepath.Join(t.TempDir(), "learning_logs.db"),
	}

	admin, err := sql.Open(cfg.Driver, cfg.DSN())
	require.NoError(t, err)
	defer admin.Close()

	_, err = admin.Exec(`CREATE TABLE course_topics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)

	provider, err := learninglogs.NewConnectionProvider(cfg)
	require.NoError(t, err)
	repo := NewTopicRepositoryWithTable(provider, "course_topics")

	require.NoError(t, repo.Insert(context.Background(), "Compilers"))

	var count int
	require.NoError(t, admin.QueryRow("SELECT COUNT(*) FROM course_topics").Scan(&count))
	assert.Equal(t, 1, count)
}
