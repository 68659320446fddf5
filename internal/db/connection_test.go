package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Rana718/fleetseed/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(t *testing.T) *Connection {
	t.Helper()
	handle, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	handle.SetMaxOpenConns(1)

	_, err = handle.Exec(`CREATE TABLE Booking (bookingNo INTEGER PRIMARY KEY, bookingDate DATE, bookedBy INTEGER)`)
	require.NoError(t, err)

	conn := New(handle)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestInsertAndFetch(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()
	cols := []string{"bookingNo", "bookingDate", "bookedBy"}
	date := time.Date(2022, 5, 17, 0, 0, 0, 0, time.UTC)

	require.NoError(t, conn.Insert(ctx, "Booking", cols, []any{10, date, 1}))
	require.NoError(t, conn.Insert(ctx, "Booking", cols, []any{20, date, 2}))

	err := conn.Insert(ctx, "Booking", cols, []any{10, date, 3})
	require.Error(t, err, "duplicate key")
	assert.Contains(t, err.Error(), "insert into Booking")

	ids, err := conn.FetchIDs(ctx, "Booking", "bookingNo")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{10, 20}, ids)

	n, err := conn.CountRows(ctx, "Booking")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInsertArity(t *testing.T) {
	conn := newTestConnection(t)
	err := conn.Insert(context.Background(), "Booking", []string{"bookingNo", "bookedBy"}, []any{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 columns but 1 values")
}

func TestIdentifierValidation(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()

	bad := []string{"", "Booking; DROP TABLE Booking", "1table", "book-ing", "`Booking`"}
	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			err := conn.Insert(ctx, name, []string{"bookingNo"}, []any{1})
			assert.ErrorIs(t, err, ErrInvalidIdentifier)

			_, err = conn.FetchIDs(ctx, "Booking", name)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)

			_, err = conn.CountRows(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
		})
	}

	err := conn.Insert(ctx, "Booking", []string{"bookingNo", "x y"}, []any{1, 2})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestFetchIDsMissingTable(t *testing.T) {
	conn := newTestConnection(t)
	_, err := conn.FetchIDs(context.Background(), "Passenger", "passengerNo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Passenger.passengerNo")
}

func TestOpenUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := config.Database{Host: "127.0.0.1", Port: 1, User: "fleet", Password: "wrong", Name: "fleet"}
	conn, err := Open(ctx, cfg)
	require.ErrorIs(t, err, ErrConnect)
	assert.Nil(t, conn)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
