package db

import (
	"path/filepath"
	"testing"
)

func TestConnectSQLite(t *testing.T) {
	database, err := Connect("sqlite", filepath.Join(t.TempDir(), "wahlfang.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer database.Close()

	var one int
	if err := database.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if one != 1 {
		t.Fatalf("expected 1, got %d", one)
	}
}

func TestConnectValidatesInput(t *testing.T) {
	if _, err := Connect("postgres", ""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	if _, err := Connect("mysql", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
	var nilDB *Database
	if err := nilDB.Close(); err != nil {
		t.Fatalf("expected nil close to succeed, got %v", err)
	}
}
