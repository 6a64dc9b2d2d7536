package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

var lookupTables = map[domain.EntityName]struct {
	table  string
	column string
}{
	domain.EntityDepartments:    {"departments", "department_name"},
	domain.EntityEmployeeLevels: {"employee_levels", "employee_level_name"},
	domain.EntityUsers:          {"users", "full_name"},
	domain.EntityStatuses:       {"statuses", "status_name"},
	domain.EntityCategories:     {"categories", "category_name"},
	domain.EntityCourses:        {"courses", "course_name"},
	domain.EntityLessons:        {"lessons", "lesson_name"},
	domain.EntityTests:          {"tests", "test_name"},
}

// SeedLookupRow inserts one row into the lookup table of the given entity and
// returns its generated id.
func SeedLookupRow(t *testing.T, pool *pgxpool.Pool, entity domain.EntityName, label string) string {
	t.Helper()

	spec, ok := lookupTables[entity]
	if !ok {
		t.Fatalf("testhelper: no lookup table for entity %s", entity)
	}

	id := entity.String() + "-" + uniqueSuffix()
	query := fmt.Sprintf("INSERT INTO %s (id, %s) VALUES ($1, $2)", spec.table, spec.column)
	if _, err := pool.Exec(context.Background(), query, id, label); err != nil {
		t.Fatalf("testhelper: seed %s row: %v", spec.table, err)
	}
	return id
}

// DeleteLookupRow hard-deletes a seeded row, simulating the referenced
// entity disappearing after its id was captured.
func DeleteLookupRow(t *testing.T, pool *pgxpool.Pool, entity domain.EntityName, id string) {
	t.Helper()

	spec, ok := lookupTables[entity]
	if !ok {
		t.Fatalf("testhelper: no lookup table for entity %s", entity)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", spec.table)
	if _, err := pool.Exec(context.Background(), query, id); err != nil {
		t.Fatalf("testhelper: delete %s row: %v", spec.table, err)
	}
}
