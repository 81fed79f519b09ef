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

	"dynamic-pricing/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type Product struct {
	SKU        string
	Name       string
	BasePrice  int64
	StockLevel int
}

// CreateTestProduct inserts a product whose current price equals its base price.
func CreateTestProduct(t *testing.T, conn db.DBTX, p Product) uuid.UUID {
	t.Helper()

	if p.SKU == "" {
		p.SKU = "SKU-" + uuid.NewString()[:8]
	}
	if p.Name == "" {
		p.Name = "Test product"
	}

	id := uuid.New()
	_, err := conn.Exec(context.Background(),
		`INSERT INTO products (id, sku, name, base_price, current_price, stock_level)
		 VALUES ($1, $2, $3, $4, $4, $5)`,
		id, p.SKU, p.Name, p.BasePrice, p.StockLevel)
	require.NoError(t, err)

	return id
}

func CreateTestCompetitorPrice(t *testing.T, conn db.DBTX, productID uuid.UUID, competitor string, price int64, observedAt time.Time) {
	t.Helper()

	_, err := conn.Exec(context.Background(),
		`INSERT INTO competitor_prices (product_id, competitor, price, observed_at) VALUES ($1, $2, $3, $4)`,
		productID, competitor, price, observedAt)
	require.NoError(t, err)
}

func CountRows(t *testing.T, conn db.DBTX, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, conn.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
