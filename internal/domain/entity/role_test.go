package entity

import (
	"os"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// The schema is managed by SQL migrations, so the column names GORM derives
// from the struct must exist in the DDL or role lookups scan empty values.
func TestRoleColumnsExistInMigration(t *testing.T) {
	parsed, err := schema.Parse(&Role{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse Role schema: %v", err)
	}

	sql, err := os.ReadFile("../../../migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("failed to read migration: %v", err)
	}

	start := strings.Index(string(sql), "CREATE TABLE roles (")
	if start < 0 {
		t.Fatal("migration does not create the roles table")
	}
	rest := string(sql)[start:]
	end := strings.Index(rest, ");")
	if end < 0 {
		t.Fatal("unterminated roles table definition")
	}
	rolesDDL := rest[:end]

	for _, field := range parsed.Fields {
		if field.DBName == "" {
			continue
		}
		if !strings.Contains(rolesDDL, field.DBName) {
			t.Errorf("column %q mapped from Role.%s is missing from the roles table", field.DBName, field.Name)
		}
	}
}
