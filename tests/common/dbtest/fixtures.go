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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCategory(t *testing.T, db DBLike, name, slug string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING", categoryID, name, slug)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM categories WHERE slug = $1", slug).Scan(&categoryID)
	}

	return categoryID
}

func CreateTestChildCategory(t *testing.T, db DBLike, name, slug string, parentID uuid.UUID) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO categories (id, name, slug, parent_id) VALUES ($1, $2, $3, $4) ON CONFLICT (slug) DO NOTHING", categoryID, name, slug, parentID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM categories WHERE slug = $1", slug).Scan(&categoryID)
	}

	return categoryID
}

// ProductFixture carries the columns a catalog test may care about.
// Zero-value fields fall back to storefront defaults.
type ProductFixture struct {
	Name             string
	Slug             string
	PriceCents       int64
	Metal            string
	Gender           string
	Stone            string
	Color            string
	NecklaceStyle    string
	Brand            string
	Featured         bool
	Available        bool
	RingSizeRequired bool
}

func CreateTestProduct(t *testing.T, db DBLike, categoryID uuid.UUID, fixture ProductFixture) uuid.UUID {
	t.Helper()

	if fixture.Name == "" {
		fixture.Name = "Test Ring"
	}
	if fixture.Slug == "" {
		fixture.Slug = "test-ring-" + uuid.NewString()[:8]
	}
	if fixture.PriceCents == 0 {
		fixture.PriceCents = 149900
	}

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO products (id, category_id, name, slug, price_cents, metal, gender, stone, color, necklace_style, brand, featured, available, ring_size_required)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		productID, categoryID, fixture.Name, fixture.Slug, fixture.PriceCents,
		fixture.Metal, fixture.Gender, fixture.Stone, fixture.Color,
		fixture.NecklaceStyle, fixture.Brand,
		fixture.Featured, fixture.Available, fixture.RingSizeRequired)
	require.NoError(t, err)

	return productID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name, slug) VALUES
		    (gen_random_uuid(), 'Rings', 'rings'),
		    (gen_random_uuid(), 'Necklaces', 'necklaces'),
		    (gen_random_uuid(), 'Earrings', 'earrings')
		ON CONFLICT (slug) DO NOTHING;
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
