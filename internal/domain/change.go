package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnknownLabel is the literal fallback returned when a foreign-key id cannot
// be resolved to a display label through any fallback step. It is also the
// sentinel recorded for properties the driver reports as unset at capture time.
const UnknownLabel = "Unknown"

// EntityName identifies the logical table a change record was captured from.
type EntityName string

const (
	EntityCourses             EntityName = "Courses"
	EntityLessons             EntityName = "Lessons"
	EntityTests               EntityName = "Tests"
	EntityUsers               EntityName = "Users"
	EntityDepartments         EntityName = "Departments"
	EntityEmployeeLevels      EntityName = "EmployeeLevels"
	EntityStatuses            EntityName = "Statuses"
	EntityCategories          EntityName = "Categories"
	EntityCourseDepartment    EntityName = "CourseDepartment"
	EntityCourseEmployeeLevel EntityName = "CourseEmployeeLevel"
	EntityUserCourse          EntityName = "UserCourse"

	// EntityChangeRecords is the audit entity itself. The capture path never
	// records mutations of this entity (the audit log does not audit itself).
	EntityChangeRecords EntityName = "ChangeRecords"
)

func (e EntityName) String() string { return string(e) }

func (e EntityName) IsValid() bool {
	switch e {
	case EntityCourses, EntityLessons, EntityTests, EntityUsers,
		EntityDepartments, EntityEmployeeLevels, EntityStatuses, EntityCategories,
		EntityCourseDepartment, EntityCourseEmployeeLevel, EntityUserCourse,
		EntityChangeRecords:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in a change record.
type AuditAction string

const (
	AuditActionAdded    AuditAction = "Added"
	AuditActionModified AuditAction = "Modified"
	AuditActionDeleted  AuditAction = "Deleted"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionAdded, AuditActionModified, AuditActionDeleted:
		return true
	}
	return false
}

// ChangeRecord is one captured entity mutation. Records are immutable once
// stored: the change-record store is append-only, with no updates and no
// deletes, ever.
//
// All records produced by one committed transaction share the same CreatedAt
// and TransactionID. Values are kept in their serialized string form;
// consumers must parse defensively.
type ChangeRecord struct {
	ID            uuid.UUID         `json:"id"`
	TransactionID uuid.UUID         `json:"transactionId"`
	EntityName    EntityName        `json:"entityName"`
	EntityID      string            `json:"entityId"`
	Action        AuditAction       `json:"action"`
	OldValues     map[string]string `json:"oldValues,omitempty"`
	NewValues     map[string]string `json:"newValues,omitempty"`
	ActorID       string            `json:"actorId"`
	CreatedAt     time.Time         `json:"timestamp"`
}

// OldValue returns the prior value of a property, if captured.
func (r ChangeRecord) OldValue(property string) (string, bool) {
	v, ok := r.OldValues[property]
	return v, ok
}

// NewValue returns the new value of a property, if captured.
func (r ChangeRecord) NewValue(property string) (string, bool) {
	v, ok := r.NewValues[property]
	return v, ok
}

// PayloadField looks a property up in NewValues first, then OldValues.
// Correlation uses it to read foreign keys from relation-table records
// regardless of whether the row was inserted or deleted.
func (r ChangeRecord) PayloadField(property string) (string, bool) {
	if v, ok := r.NewValues[property]; ok {
		return v, true
	}
	v, ok := r.OldValues[property]
	return v, ok
}

// WindowStart returns the record's timestamp truncated to whole seconds.
// Sub-second jitter between writes of one logical transaction is tolerated;
// anything beyond one second is treated as an unrelated, later event.
func (r ChangeRecord) WindowStart() time.Time {
	return r.CreatedAt.Truncate(time.Second)
}
