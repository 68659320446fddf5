package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/fleetseed/internal/config"
	_ "github.com/go-sql-driver/mysql"
)

var (
	// ErrConnect is returned when the database cannot be reached with the
	// configured credentials.
	ErrConnect = errors.New("database connection failed")

	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Connection is a single database connection used for a whole run.
type Connection struct {
	DB *sql.DB
	qb squirrel.StatementBuilderType
}

// Open connects to MySQL and verifies the credentials with a ping. No
// connection is returned on failure.
func Open(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrConnect, cfg.Addr(), err)
	}
	return New(db), nil
}

// New wraps an open handle. Statements use ? placeholders.
func New(db *sql.DB) *Connection {
	return &Connection{
		DB: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (c *Connection) Close() error {
	return c.DB.Close()
}

// Insert runs one parameterised INSERT. Each statement commits on its own.
func (c *Connection) Insert(ctx context.Context, table string, columns []string, values []any) error {
	if len(columns) != len(values) {
		return fmt.Errorf("insert into %s: %d columns but %d values", table, len(columns), len(values))
	}
	into, err := quote(table)
	if err != nil {
		return err
	}
	cols := make([]string, len(columns))
	for i, col := range columns {
		if cols[i], err = quote(col); err != nil {
			return err
		}
	}

	query, args, err := c.qb.Insert(into).Columns(cols...).Values(values...).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert into %s: %w", table, err)
	}
	if _, err := c.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// FetchIDs returns every value of an integer column.
func (c *Connection) FetchIDs(ctx context.Context, table, column string) ([]int, error) {
	from, err := quote(table)
	if err != nil {
		return nil, err
	}
	col, err := quote(column)
	if err != nil {
		return nil, err
	}

	query, args, err := c.qb.Select(col).From(from).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select on %s: %w", table, err)
	}
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s.%s: %w", table, column, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (c *Connection) CountRows(ctx context.Context, table string) (int, error) {
	from, err := quote(table)
	if err != nil {
		return 0, err
	}
	query, args, err := c.qb.Select("COUNT(*)").From(from).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count on %s: %w", table, err)
	}

	var count int
	if err := c.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", table, err)
	}
	return count, nil
}

// quote validates name and wraps it in backticks, which MySQL and SQLite
// both accept.
func quote(name string) (string, error) {
	if !validIdentifier.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return "`" + name + "`", nil
}
