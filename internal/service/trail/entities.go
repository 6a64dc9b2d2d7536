package trail

import (
	"log/slog"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// DefaultRegistry wires the reconstruction providers for every tracked
// business entity.
func DefaultRegistry(log *slog.Logger, records recordStore, resolver labelResolver) *Registry {
	correlator := newCorrelator(records)

	registry := NewRegistry()
	registry.Register(domain.EntityCourses, newCourseProvider(log, correlator, resolver))
	registry.Register(domain.EntityLessons, newLessonProvider(log, correlator, resolver))
	registry.Register(domain.EntityTests, newTestProvider(log, correlator, resolver))
	return registry
}

// newCourseProvider reconstructs course trails: scalar lookups for status
// and category, plus the three relation sets written alongside a course in
// the same transaction.
func newCourseProvider(log *slog.Logger, c *correlator, r labelResolver) Provider {
	return newEntityProvider(
		log.With("provider", "course"),
		c, r,
		[]rawSpec{
			{Property: "CourseName", FieldName: "CourseName"},
			{Property: "Description", FieldName: "Description"},
			{Property: "StartDate", FieldName: "StartDate"},
			{Property: "EndDate", FieldName: "EndDate"},
		},
		[]lookupSpec{
			{Property: "StatusId", FieldName: "StatusName", Lookup: domain.EntityStatuses},
			{Property: "CategoryId", FieldName: "CategoryName", Lookup: domain.EntityCategories},
		},
		[]relationSpec{
			{
				RelationEntity: domain.EntityCourseDepartment,
				AnchorKey:      "CourseId",
				RelatedKey:     "DepartmentId",
				RelatedEntity:  domain.EntityDepartments,
				FieldName:      "Department",
			},
			{
				RelationEntity: domain.EntityCourseEmployeeLevel,
				AnchorKey:      "CourseId",
				RelatedKey:     "EmployeeLevelId",
				RelatedEntity:  domain.EntityEmployeeLevels,
				FieldName:      "EmployeeLevel",
			},
			{
				RelationEntity: domain.EntityUserCourse,
				AnchorKey:      "CourseId",
				RelatedKey:     "UserId",
				RelatedEntity:  domain.EntityUsers,
				FieldName:      "User",
			},
		},
	)
}

// newLessonProvider covers the attached-file trail of a lesson.
func newLessonProvider(log *slog.Logger, c *correlator, r labelResolver) Provider {
	return newEntityProvider(
		log.With("provider", "lesson"),
		c, r,
		[]rawSpec{
			{Property: "LessonName", FieldName: "LessonName"},
			{Property: "FileName", FieldName: "FileName"},
			{Property: "FileUrl", FieldName: "FileUrl"},
		},
		nil,
		nil,
	)
}

func newTestProvider(log *slog.Logger, c *correlator, r labelResolver) Provider {
	return newEntityProvider(
		log.With("provider", "test"),
		c, r,
		[]rawSpec{
			{Property: "TestName", FieldName: "TestName"},
			{Property: "PassingScorePercentage", FieldName: "PassingScorePercentage"},
			{Property: "TimeMinutes", FieldName: "TimeMinutes"},
		},
		nil,
		nil,
	)
}
