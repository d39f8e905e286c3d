package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// The repositories and seeders embed their SQL as raw strings; these tests
// parse the migration and assert every table and column those statements
// reference actually exists in the migrated schema.

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ([a-z_]+) \((.*?)\n\);`)
	columnLineRe  = regexp.MustCompile(`(?m)^\s*([a-z_]+)\s`)
	bareTableRe   = regexp.MustCompile(`(?:FROM|JOIN|INTO)\s+([a-z_.]+)`)
	tableAliasRe  = regexp.MustCompile(`(?:FROM|JOIN)\s+([a-z_]+)\s+([a-z_]+)\b`)
	qualifiedRe   = regexp.MustCompile(`\b([a-z_]+)\.([a-z_]+)\b`)
	insertRe      = regexp.MustCompile(`INSERT INTO ([a-z_]+)\s*\(([^)]*)\)`)
	conflictRe    = regexp.MustCompile(`ON CONFLICT \(([^)]*)\)`)
)

func migrationSchema(t *testing.T) map[string]map[string]bool {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", "V1__init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	tables := make(map[string]map[string]bool)
	for _, m := range createTableRe.FindAllStringSubmatch(string(raw), -1) {
		cols := make(map[string]bool)
		for _, c := range columnLineRe.FindAllStringSubmatch(m[2], -1) {
			cols[c[1]] = true
		}
		tables[m[1]] = cols
	}
	if len(tables) == 0 {
		t.Fatal("no tables parsed from migration")
	}
	return tables
}

func dataLayerStatements(t *testing.T, dirs ...string) []string {
	t.Helper()

	rawStringRe := regexp.MustCompile("`[^`]*`")
	var out []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir %s: %v", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") || strings.HasSuffix(e.Name(), "_test.go") {
				continue
			}
			src, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				t.Fatalf("read %s: %v", e.Name(), err)
			}
			for _, lit := range rawStringRe.FindAllString(string(src), -1) {
				stmt := strings.Trim(lit, "`")
				if strings.Contains(stmt, "SELECT") || strings.Contains(stmt, "INSERT") ||
					strings.Contains(stmt, "DELETE") || strings.Contains(stmt, "UPDATE") {
					out = append(out, stmt)
				}
			}
		}
	}
	return out
}

func TestDataLayerSQLMatchesMigration(t *testing.T) {
	schema := migrationSchema(t)
	stmts := dataLayerStatements(t, ".", filepath.Join("..", "database", "seeder"))
	if len(stmts) == 0 {
		t.Fatal("no SQL statements found in data layer")
	}

	checkColumn := func(stmt, table, col string) {
		t.Helper()
		col = strings.TrimSpace(col)
		if col == "" {
			return
		}
		if !schema[table][col] {
			t.Errorf("column %s.%s not in migration\nstatement: %s", table, col, stmt)
		}
	}

	for _, stmt := range stmts {
		if strings.Contains(stmt, "information_schema") {
			continue
		}

		for _, m := range bareTableRe.FindAllStringSubmatch(stmt, -1) {
			if strings.Contains(m[1], ".") {
				continue
			}
			if _, ok := schema[m[1]]; !ok {
				t.Errorf("table %s not in migration\nstatement: %s", m[1], stmt)
			}
		}

		aliases := make(map[string]string)
		for _, m := range tableAliasRe.FindAllStringSubmatch(stmt, -1) {
			aliases[m[2]] = m[1]
		}
		for _, m := range qualifiedRe.FindAllStringSubmatch(stmt, -1) {
			table, ok := aliases[m[1]]
			if !ok {
				if _, direct := schema[m[1]]; !direct {
					continue
				}
				table = m[1]
			}
			checkColumn(stmt, table, m[2])
		}

		for _, m := range insertRe.FindAllStringSubmatch(stmt, -1) {
			for _, col := range strings.Split(m[2], ",") {
				checkColumn(stmt, m[1], col)
			}
			for _, cm := range conflictRe.FindAllStringSubmatch(stmt, -1) {
				for _, col := range strings.Split(cm[1], ",") {
					checkColumn(stmt, m[1], col)
				}
			}
		}
	}
}

// The seeders hand EnsureTableColumns explicit column lists; keep those in
// lockstep with the migration as well.
func TestSeederColumnListsMatchMigration(t *testing.T) {
	schema := migrationSchema(t)

	expected := map[string][]string{
		"users":       {"id", "username", "created_at"},
		"skills":      {"id", "name", "category", "created_at"},
		"user_skills": {"id", "user_id", "skill_id", "proficiency_level", "years_experience"},
		"gigs":        {"id", "user_id", "title", "description", "price_min", "price_max", "duration", "status", "created_at"},
		"courses":     {"id", "title", "description", "provider", "url", "difficulty_level", "duration", "price", "created_at"},
	}
	for table, cols := range expected {
		for _, col := range cols {
			if !schema[table][col] {
				t.Errorf("column %s.%s not in migration", table, col)
			}
		}
	}
}
