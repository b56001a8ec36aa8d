// Package learninglogs keeps a journal of learning topics in a relational
// database and exposes it as a small library and a terminal application.
//
// # Features
//
//   - Add topics by name and list everything stored
//   - MySQL, PostgreSQL and SQLite through the Relica query builder
//   - One short-lived connection per operation, no pool to manage
//   - Optional connect retries with exponential backoff
//   - Typed errors that separate connection, persistence, validation and configuration failures
//   - Pluggable Logger, with a zerolog adapter in adapters/zlog
//   - Embedded DDL for every supported dialect
//
// # Quick Start
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
//	journal, err := learninglogs.NewJournal(
//	    learninglogs.WithTopicRepository(relica.NewTopicRepository(provider)),
//	)
//
//	topic, err := journal.AddTopic(ctx, "Java Basics")
//	topics, err := journal.ListTopics(ctx)
//
// The default configuration points at MySQL on localhost:3306, database
// learning_logs, user root with an empty password.
//
// # Architecture
//
//   - model: the Topic record and its display form
//   - TopicRepository: storage port, implemented by adapters/relica
//   - ConnectionProvider: opens and closes one connection per call
//   - Journal: validates input and coordinates the repository
//   - cmd/learning-logs: interactive menu plus add and ls subcommands
//
// # Error Handling
//
// Every failure is an *Error carrying one of ErrCodeConnection,
// ErrCodePersistence, ErrCodeValidation or ErrCodeConfiguration. Use
// IsConnection, IsPersistence and IsValidation to branch on them. ListTopics
// returns an empty slice together with the error, so an empty journal and a
// failed read are never confused.
//
// # Database Schema
//
//	CREATE TABLE topics (
//	    id         INT AUTO_INCREMENT PRIMARY KEY,
//	    name       VARCHAR(100) NOT NULL,
//	    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
//	    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	);
//
// The DDL for each dialect is embedded in MigrationFiles and returned by
// Schema. Creating the table is left to the operator.
//
// # Examples
//
// See examples/basic for a runnable program against SQLite.
package learninglogs
