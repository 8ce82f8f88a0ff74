//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the subset of pgxpool.Pool the fixture helpers need, so they
// work against both pools and transactions.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, name) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, "Test "+role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO wallets (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING", userID)
	require.NoError(t, err)

	return userID
}

func FundWallet(t *testing.T, db DBLike, userID uuid.UUID, amount int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE wallets SET balance = $2, updated_at = now() WHERE user_id = $1", userID, amount)
	require.NoError(t, err)
}

func WalletBalance(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT balance FROM wallets WHERE user_id = $1", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func AnyAmenityID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM amenities ORDER BY category, name LIMIT 1").Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestListing(t *testing.T, db DBLike, hostID uuid.UUID, costPerNight int64) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO listings (id, host_id, title, description, photo_thumbnail,
		                      num_of_beds, cost_per_night, location_type, latitude, longitude)
		VALUES ($1, $2, 'Test Listing', 'A fine place', '', 2, $3, 'HOUSE', 12.3, 45.6)`,
		listingID, hostID, costPerNight)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO listing_amenities (listing_id, amenity_id) VALUES ($1, $2)",
		listingID, AnyAmenityID(t, db))
	require.NoError(t, err)

	return listingID
}

func CreateTestBooking(t *testing.T, db DBLike, listingID, guestID uuid.UUID, checkIn, checkOut string, totalCost int64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, listing_id, guest_id, check_in_date, check_out_date, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bookingID, listingID, guestID, checkIn, checkOut, totalCost)
	require.NoError(t, err)

	return bookingID
}

func CreateTestReview(t *testing.T, db DBLike, bookingID, targetID, authorID uuid.UUID, targetType string, rating int32) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reviews (id, booking_id, target_type, target_id, author_id, rating, text)
		VALUES ($1, $2, $3, $4, $5, $6, 'A lovely stay.')`,
		reviewID, bookingID, targetType, targetID, authorID, rating)
	require.NoError(t, err)

	return reviewID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO amenities (id, category, name) VALUES
		    (gen_random_uuid(), 'Accessibility and safety', 'Oxygen'),
		    (gen_random_uuid(), 'Accessibility and safety', 'Emergency life support'),
		    (gen_random_uuid(), 'Space survival', 'Water recycler'),
		    (gen_random_uuid(), 'Outdoors', 'Meteor shower view')
		ON CONFLICT (category, name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
