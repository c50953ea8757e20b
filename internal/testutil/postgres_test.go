package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDsnWithSearchPath(t *testing.T) {
	t.Parallel()

	got, err := dsnWithSearchPath("postgres://u:p@localhost:5432/sentinel?sslmode=disable", "tenant_a")
	require.NoError(t, err)
	require.Contains(t, got, "search_path=tenant_a")
	require.Contains(t, got, "sslmode=disable")

	got, err = dsnWithSearchPath("host=localhost dbname=sentinel sslmode=disable", "tenant_b")
	require.NoError(t, err)
	require.Contains(t, got, "search_path=tenant_b")

	got, err = dsnWithSearchPath("host=localhost dbname=sentinel search_path=public", "tenant_c")
	require.NoError(t, err)
	require.Contains(t, got, "search_path=tenant_c")
	require.NotContains(t, got, "search_path=public")
}

func TestNewSchemaName(t *testing.T) {
	t.Parallel()

	got := newSchemaName("Batch-Scan/Lifecycle@Test")
	require.True(t, strings.HasPrefix(got, "t_"))
	require.LessOrEqual(t, len(got), maxPostgresIdentLen)
	require.Equal(t, strings.ToLower(got), got)
	require.NotContains(t, got, "-")
	require.NotContains(t, got, "/")

	require.NotEqual(t, newSchemaName("same"), newSchemaName("same"))
}
