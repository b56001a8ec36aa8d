// Package relica provides the Relica query builder implementation of the
// learning logs TopicRepository.
//
// Relica (github.com/coregx/relica) builds dialect-correct, parameterized
// SQL for MySQL, PostgreSQL and SQLite and maps rows onto structs through
// their db tags.
//
// Example usage:
//
//	import (
//	    "github.com/learninglogs/learninglogs"
//	    "github.com/learninglogs/learninglogs/adapters/relica"
//	    _ "github.com/go-sql-driver/mysql"
//	)
//
//	provider, err := learninglogs.NewConnectionProvider(learninglogs.DefaultDatabaseConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	repo := relica.NewTopicRepository(provider)
//	if err := repo.Insert(ctx, "Java Basics"); err != nil {
//	    log.Printf("topic not stored: %v", err)
//	}
//
//	topics, err := repo.FetchAll(ctx)
package relica
