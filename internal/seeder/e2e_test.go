package seeder_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/Rana718/fleetseed/internal/db"
	"github.com/Rana718/fleetseed/internal/seeder"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *db.Connection {
	t.Helper()

	handle, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	handle.SetMaxOpenConns(1)
	t.Cleanup(func() { handle.Close() })

	schema, err := os.ReadFile("testdata/populate_schema.sql")
	require.NoError(t, err)
	_, err = handle.Exec(string(schema))
	require.NoError(t, err)

	return db.New(handle)
}

func count(t *testing.T, conn *db.Connection, query string) int {
	t.Helper()
	var n int
	require.NoError(t, conn.DB.QueryRow(query).Scan(&n))
	return n
}

func TestPopulateCustomersAndDrivers(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	plan, err := seeder.PopulatePlan().Select([]string{"Customer", "Driver"}, true)
	require.NoError(t, err)

	s := seeder.New(conn, seeder.NewDataGenerator(2024), seeder.Options{Dedupe: seeder.DedupeKey})
	summary, err := s.Run(ctx, plan)
	require.NoError(t, err)
	assert.Zero(t, summary.Totals.Failed)

	customers, err := conn.CountRows(ctx, "Customer")
	require.NoError(t, err)
	assert.Equal(t, 1000, customers)
	assert.Equal(t, 1000, count(t, conn, "SELECT COUNT(DISTINCT customerNo) FROM Customer"))
	assert.Zero(t, count(t, conn, "SELECT COUNT(*) FROM Customer WHERE customerNo < 1 OR customerNo > 100000"))

	drivers, err := conn.CountRows(ctx, "Driver")
	require.NoError(t, err)
	assert.Equal(t, 100, drivers)
	assert.Zero(t, count(t, conn,
		"SELECT COUNT(*) FROM Driver d LEFT JOIN Staff s ON s.staffNo = d.staffNo WHERE s.staffNo IS NULL"))

	ids, err := conn.FetchIDs(ctx, "Staff", "staffNo")
	require.NoError(t, err)
	assert.ElementsMatch(t, s.IDs("staff"), ids)
}

func TestPopulateDefaultOptions(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 2024} {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			conn := setupDB(t)
			ctx := context.Background()

			plan, err := seeder.PopulatePlan().Select([]string{"Customer", "Driver"}, true)
			require.NoError(t, err)

			summary, err := seeder.New(conn, seeder.NewDataGenerator(seed), seeder.Options{}).Run(ctx, plan)
			require.NoError(t, err)
			assert.Zero(t, summary.Totals.Failed, "%v", summary.Table("Driver").Errors)

			customers, err := conn.CountRows(ctx, "Customer")
			require.NoError(t, err)
			assert.Equal(t, 1000, customers)

			drivers, err := conn.CountRows(ctx, "Driver")
			require.NoError(t, err)
			assert.Equal(t, 100, drivers)
		})
	}
}

func TestPopulateWholeSchema(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()

	plan, err := seeder.PopulatePlan().WithCounts(map[string]int{
		"Customer": 50, "Staff": 30, "Driver": 10, "Depot": 5, "Vehicle": 10, "Route": 60,
		"Stop": 100, "Booking": 60, "Trip": 60, "Invoice": 60, "Trip_Stop": 80, "Driver_Vehicle_Route": 80,
	})
	require.NoError(t, err)

	s := seeder.New(conn, seeder.NewDataGenerator(7), seeder.Options{Dedupe: seeder.DedupeKey})
	summary, err := s.Run(ctx, plan)
	require.NoError(t, err)
	require.Len(t, summary.Tables, 12)

	for _, ts := range summary.Tables {
		assert.Empty(t, ts.Errors, ts.Table)
		n, err := conn.CountRows(ctx, ts.Table)
		require.NoError(t, err)
		assert.Equal(t, ts.Succeeded, n, ts.Table)
		assert.Equal(t, ts.Generated, ts.Succeeded, ts.Table)
	}

	orphans := []string{
		"SELECT COUNT(*) FROM Stop s LEFT JOIN Route r ON r.routeNo = s.routeNo WHERE r.routeNo IS NULL",
		"SELECT COUNT(*) FROM Invoice i LEFT JOIN Booking b ON b.bookingNo = i.relatedBooking WHERE b.bookingNo IS NULL",
		"SELECT COUNT(*) FROM Trip_Stop ts LEFT JOIN Trip t ON t.tripNo = ts.tripNo WHERE t.tripNo IS NULL",
		"SELECT COUNT(*) FROM Driver_Vehicle_Route x LEFT JOIN Driver d ON d.staffNo = x.driver WHERE d.staffNo IS NULL",
	}
	for _, q := range orphans {
		assert.Zero(t, count(t, conn, q), q)
	}
	assert.Zero(t, count(t, conn, "SELECT COUNT(*) FROM Staff WHERE salary < 30000 OR salary > 100000"))
}
