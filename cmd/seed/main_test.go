package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"a11ysentinel.io/sentinel/internal/api/middleware"
)

func TestAdminPermissions(t *testing.T) {
	t.Parallel()

	perms := adminPermissions()
	if !slices.Contains(perms, middleware.PermPlatformAdmin) {
		t.Fatalf("admin permissions missing %s", middleware.PermPlatformAdmin)
	}
	for _, perm := range middleware.AllPermissions() {
		if !slices.Contains(perms, perm) {
			t.Fatalf("admin permissions missing %s", perm)
		}
	}
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `admin:
  username: ops
  password: s3cret
campaign:
  name: Q3 Audit
  token_budget: 250000
  starts_at: 2026-09-01T00:00:00Z
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	sf, err := loadSeedFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sf.Admin.Username != "ops" || sf.Admin.Password != "s3cret" {
		t.Fatalf("unexpected admin overrides: %+v", sf.Admin)
	}
	if sf.Campaign.Name != "Q3 Audit" || sf.Campaign.TokenBudget != 250000 {
		t.Fatalf("unexpected campaign overrides: %+v", sf.Campaign)
	}
	if sf.Campaign.StartsAt.IsZero() || !sf.Campaign.EndsAt.IsZero() {
		t.Fatalf("unexpected campaign window: %+v", sf.Campaign)
	}
}

func TestLoadSeedFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := loadSeedFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestAdminPermissions_NoWildcards(t *testing.T) {
	t.Parallel()

	for _, perm := range adminPermissions() {
		if strings.Contains(perm, "*") {
			t.Fatalf("wildcard permission %q", perm)
		}
	}
}
