package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func useSQLite(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "wahlctl.db"))
}

func TestMigrateAndCreateAdmin(t *testing.T) {
	useSQLite(t)

	out, err := runCommand(t, "migrate")
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !strings.Contains(out, "schema is up to date") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCommand(t, "create-admin", "--username", "admin", "--email", "admin@example.org", "--generate-password")
	if err != nil {
		t.Fatalf("create-admin: %v", err)
	}
	if !strings.Contains(out, "created manager admin") || !strings.Contains(out, "generated password: ") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := runCommand(t, "create-admin", "--username", "admin2", "--email", "ADMIN@example.org", "--password", "long-enough-pw"); err == nil {
		t.Fatalf("expected duplicate email to fail")
	}
}

func TestCreateAdminValidatesPasswordFlags(t *testing.T) {
	useSQLite(t)

	if _, err := runCommand(t, "create-admin", "--username", "a", "--email", "a@example.org"); err == nil {
		t.Fatalf("expected error without password flags")
	}
	if _, err := runCommand(t, "create-admin", "--username", "a", "--email", "a@example.org", "--password", "x", "--generate-password"); err == nil {
		t.Fatalf("expected error for conflicting password flags")
	}
	if _, err := runCommand(t, "create-admin", "--email", "a@example.org", "--password", "long-enough-pw"); err == nil {
		t.Fatalf("expected error without username")
	}
}

func TestAdminRejectsMemoryDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_DRIVER", "memory")
	if _, err := runCommand(t, "migrate"); err == nil {
		t.Fatalf("expected memory driver to be rejected")
	}
}
