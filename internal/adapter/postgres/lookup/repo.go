// Package lookup implements live display-label lookups against PostgreSQL.
// Each supported entity type maps to one table and one label column; ids are
// compared as strings because numeric and GUID keys are both coerced to
// string at the audit boundary.
package lookup

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/adapter/postgres"
	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// spec describes where an entity's display label lives: the live table and
// column, and the property name the same label carries inside change-record
// payloads (used by the resolver's audit-history fallback).
type spec struct {
	table           string
	labelColumn     string
	displayProperty string
}

var specs = map[domain.EntityName]spec{
	domain.EntityDepartments:    {"departments", "department_name", "DepartmentName"},
	domain.EntityEmployeeLevels: {"employee_levels", "employee_level_name", "EmployeeLevelName"},
	domain.EntityUsers:          {"users", "full_name", "FullName"},
	domain.EntityStatuses:       {"statuses", "status_name", "StatusName"},
	domain.EntityCategories:     {"categories", "category_name", "CategoryName"},
	domain.EntityCourses:        {"courses", "course_name", "CourseName"},
	domain.EntityLessons:        {"lessons", "lesson_name", "LessonName"},
	domain.EntityTests:          {"tests", "test_name", "TestName"},
}

// DisplayProperty returns the payload property that carries an entity's
// display label in captured change records.
func DisplayProperty(entity domain.EntityName) (string, bool) {
	s, ok := specs[entity]
	return s.displayProperty, ok
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides display-label reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lookup repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetLabel returns the display label of one live row.
// Returns domain.ErrNotFound if the row is gone or the entity has no
// configured lookup.
func (r *Repo) GetLabel(ctx context.Context, entity domain.EntityName, id string) (string, error) {
	labels, err := r.GetLabels(ctx, entity, []string{id})
	if err != nil {
		return "", err
	}
	label, ok := labels[id]
	if !ok {
		return "", fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return label, nil
}

// GetLabels returns display labels for multiple ids in one round trip.
// Missing ids are simply absent from the result; an entity type without a
// configured lookup is domain.ErrNotFound for every id.
func (r *Repo) GetLabels(ctx context.Context, entity domain.EntityName, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	s, ok := specs[entity]
	if !ok {
		return nil, fmt.Errorf("no label lookup for entity %s: %w", entity, domain.ErrNotFound)
	}

	sql, args, err := psql.Select("id", s.labelColumn).
		From(s.table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build label query for %s: %w", entity, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get labels for %s: %w", entity, err)
	}
	defer rows.Close()

	labels := make(map[string]string, len(ids))
	for rows.Next() {
		var id, label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("scan label for %s: %w", entity, err)
		}
		labels[id] = label
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate labels for %s: %w", entity, err)
	}

	return labels, nil
}
