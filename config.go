package learninglogs

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-sql-driver/mysql"
)

// Supported database driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite3  = "sqlite3" // github.com/mattn/go-sqlite3 (cgo)
	DriverSQLite   = "sqlite"  // modernc.org/sqlite (pure Go)
)

// DatabaseConfig describes the database a ConnectionProvider connects to.
// The driver must be registered with database/sql by the binary (blank import).
type DatabaseConfig struct {
	Driver   string            `yaml:"driver"`   // mysql, postgres, sqlite3, sqlite
	Host     string            `yaml:"host"`     // Ignored by SQLite drivers
	Port     int               `yaml:"port"`     // Ignored by SQLite drivers
	User     string            `yaml:"user"`     // Ignored by SQLite drivers
	Password string            `yaml:"password"` // May be empty
	Database string            `yaml:"database"` // Database name, or file path for SQLite
	Params   map[string]string `yaml:"params"`   // Extra driver parameters
}

// DefaultDatabaseConfig returns the local development target: the
// learning_logs database on a MySQL server at localhost:3306, user root,
// no password.
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:   DriverMySQL,
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "",
		Database: "learning_logs",
	}
}

// Validate checks that the configuration can produce a usable DSN.
func (c DatabaseConfig) Validate() error {
	network := c.isNetwork()
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required,
			validation.In(DriverMySQL, DriverPostgres, DriverSQLite3, DriverSQLite)),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.Host, validation.When(network, validation.Required)),
		validation.Field(&c.Port, validation.When(network, validation.Required, validation.Min(1), validation.Max(65535))),
	)
}

// Dialect returns the SQL dialect name for the configured driver.
// Both SQLite drivers share the sqlite3 dialect.
func (c DatabaseConfig) Dialect() string {
	if c.Driver == DriverSQLite {
		return DriverSQLite3
	}
	return c.Driver
}

// DSN returns the driver-specific connection string.
func (c DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Database
		mc.ParseTime = true
		if len(c.Params) > 0 {
			mc.Params = c.Params
		}
		return mc.FormatDSN()
	case DriverPostgres:
		pairs := []string{
			"host=" + quotePQ(c.Host),
			"port=" + strconv.Itoa(c.Port),
			"dbname=" + quotePQ(c.Database),
		}
		if c.User != "" {
			pairs = append(pairs, "user="+quotePQ(c.User))
		}
		if c.Password != "" {
			pairs = append(pairs, "password="+quotePQ(c.Password))
		}
		if _, ok := c.Params["sslmode"]; !ok {
			pairs = append(pairs, "sslmode=disable")
		}
		for _, k := range sortedKeys(c.Params) {
			pairs = append(pairs, k+"="+quotePQ(c.Params[k]))
		}
		return strings.Join(pairs, " ")
	case DriverSQLite3, DriverSQLite:
		if len(c.Params) == 0 {
			return c.Database
		}
		query := make([]string, 0, len(c.Params))
		for _, k := range sortedKeys(c.Params) {
			query = append(query, k+"="+c.Params[k])
		}
		return c.Database + "?" + strings.Join(query, "&")
	default:
		return ""
	}
}

// String describes the target without credentials, for logging.
func (c DatabaseConfig) String() string {
	if c.isNetwork() {
		return fmt.Sprintf("%s://%s@%s/%s", c.Driver, c.User, net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), c.Database)
	}
	return fmt.Sprintf("%s://%s", c.Driver, c.Database)
}

func (c DatabaseConfig) isNetwork() bool {
	return c.Driver == DriverMySQL || c.Driver == DriverPostgres
}

// quotePQ quotes a lib/pq key=value parameter when it contains spaces,
// quotes or backslashes, or is empty.
func quotePQ(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
