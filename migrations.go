package learninglogs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// MigrationFiles contains the DDL for the topics table, one directory per
// dialect (mysql, postgres, sqlite3). Applying them is left to the
// operator's migration tool of choice.
//
// Example with golang-migrate:
//
//	source, err := iofs.New(learninglogs.MigrationFiles, "migrations/mysql")
//	m, err := migrate.NewWithSourceInstance("iofs", source, "mysql://root@tcp(localhost:3306)/learning_logs")
//	m.Up()
//
//go:embed migrations/*/*.sql
var MigrationFiles embed.FS

// Schema returns the concatenated DDL for dialect, files in name order.
func Schema(dialect string) (string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(MigrationFiles, dir)
	if err != nil {
		return "", NewErrorWithCause(ErrCodeConfiguration, fmt.Sprintf("no schema for dialect %q", dialect), err)
	}

	var b strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		data, err := fs.ReadFile(MigrationFiles, path.Join(dir, e.Name()))
		if err != nil {
			return "", NewErrorWithCause(ErrCodeConfiguration, "failed to read schema file", err)
		}
		b.Write(data)
		b.WriteString("\n")
	}
	return b.String(), nil
}
