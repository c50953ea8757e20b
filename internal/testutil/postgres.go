// Package testutil provisions isolated PostgreSQL schemas for tests.
// Tests run against a real database only: there is no SQLite fallback.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/enttest"
)

const maxPostgresIdentLen = 63

var nonIdentChars = regexp.MustCompile(`[^a-z0-9_]+`)

// provisionSchema creates a throwaway schema on the configured test
// database and returns a DSN whose search_path points at it. The schema
// is dropped on test cleanup, so parallel packages never collide.
func provisionSchema(t *testing.T, prefix string) string {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_DATABASE_URL"))
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if dsn == "" {
		t.Fatalf("PostgreSQL test DSN is required: set TEST_DATABASE_URL or DATABASE_URL")
	}

	schema := newSchemaName(prefix)
	ctx := context.Background()

	admin, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open postgres admin connection: %v", err)
	}
	t.Cleanup(func() { _ = admin.Close() })

	if _, err := admin.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA %q`, schema)); err != nil {
		t.Fatalf("create test schema %q: %v", schema, err)
	}
	t.Cleanup(func() {
		_, _ = admin.ExecContext(ctx, fmt.Sprintf(`DROP SCHEMA IF EXISTS %q CASCADE`, schema))
	})

	scoped, err := dsnWithSearchPath(dsn, schema)
	if err != nil {
		t.Fatalf("scope DSN to schema %q: %v", schema, err)
	}
	return scoped
}

// OpenEntPostgres returns an Ent client on a fresh schema with the full
// Sentinel schema migrated in.
func OpenEntPostgres(t *testing.T, prefix string) *ent.Client {
	t.Helper()
	client, _ := openEnt(t, provisionSchema(t, prefix))
	return client
}

// OpenEntWithPool returns an Ent client and a pgxpool sharing one
// isolated schema, for code paths that mix ORM reads with raw guarded
// updates.
func OpenEntWithPool(t *testing.T, prefix string) (*ent.Client, *pgxpool.Pool) {
	t.Helper()
	dsn := provisionSchema(t, prefix)
	client, _ := openEnt(t, dsn)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open postgres test pool: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping postgres test pool: %v", err)
	}
	return client, pool
}

func openEnt(t *testing.T, dsn string) (*ent.Client, *sql.DB) {
	t.Helper()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open postgres test connection: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(entsql.OpenDB(dialect.Postgres, db))))
	t.Cleanup(func() { _ = client.Close() })
	return client, db
}

// dsnWithSearchPath rewrites a URL or keyword/value DSN so connections
// land on the given schema.
func dsnWithSearchPath(dsn, schema string) (string, error) {
	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse DSN: %w", err)
		}
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	if strings.Contains(dsn, "search_path=") {
		return regexp.MustCompile(`search_path=\S+`).ReplaceAllString(dsn, "search_path="+schema), nil
	}
	return dsn + " search_path=" + schema, nil
}

// newSchemaName derives a valid, unique Postgres identifier from a
// test-supplied prefix.
func newSchemaName(prefix string) string {
	base := nonIdentChars.ReplaceAllString(strings.ReplaceAll(strings.ToLower(prefix), "-", "_"), "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "test"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	if max := maxPostgresIdentLen - len("t__") - len(suffix); len(base) > max {
		base = base[:max]
	}
	return "t_" + base + "_" + suffix
}
