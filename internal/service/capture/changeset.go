package capture

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// TrackedEntity is one entity the unit of work tracked as Added, Modified,
// or Deleted in the committing transaction. Entities that were merely read
// or left unchanged must not appear in a ChangeSet.
type TrackedEntity struct {
	Entity domain.EntityName

	// ID is the entity's primary key coerced to string. Composite keys are
	// out of scope and must be flattened by the caller before capture.
	ID string

	// ResolveID is consulted when ID is empty: a store-generated primary
	// key is unknown until the physical write completes, so the unit of
	// work defers it behind this callback.
	ResolveID func() string

	Action domain.AuditAction

	// Original holds pre-mutation property values (Modified and Deleted).
	Original map[string]any

	// Current holds post-mutation property values (Added and Modified).
	Current map[string]any
}

// ChangeSet is the full set of tracked mutations of one committed
// transaction, handed to OnCommit exactly once.
type ChangeSet struct {
	Entities []TrackedEntity
}

// entityID resolves the primary key, preferring the literal ID and falling
// back to the deferred callback for store-generated keys.
func (e TrackedEntity) entityID() string {
	if e.ID != "" {
		return e.ID
	}
	if e.ResolveID != nil {
		return e.ResolveID()
	}
	return ""
}

// buildValues converts the tracked property maps into the serialized
// old/new value maps of a change record. Returns ok=false when the entity
// produced zero captured changes (e.g. the ORM flagged it as Modified but
// no property actually differs).
func buildValues(e TrackedEntity) (oldValues, newValues map[string]string, ok bool) {
	switch e.Action {
	case domain.AuditActionAdded:
		newValues = make(map[string]string, len(e.Current))
		for prop, v := range e.Current {
			newValues[prop] = serializeOrUnknown(v)
		}
		return nil, newValues, len(newValues) > 0

	case domain.AuditActionDeleted:
		oldValues = make(map[string]string, len(e.Original))
		for prop, v := range e.Original {
			oldValues[prop] = serialize(v)
		}
		return oldValues, nil, len(oldValues) > 0

	case domain.AuditActionModified:
		oldValues = make(map[string]string)
		newValues = make(map[string]string)
		for prop, cur := range e.Current {
			orig, tracked := e.Original[prop]
			newSerialized := serialize(cur)
			oldSerialized := serialize(orig)
			// Unmodified properties are omitted entirely; reconstruction
			// relies on this minimal diff.
			if tracked && oldSerialized == newSerialized {
				continue
			}
			oldValues[prop] = oldSerialized
			newValues[prop] = newSerialized
		}
		return oldValues, newValues, len(newValues) > 0
	}

	return nil, nil, false
}

// serialize renders a property value in its stored string form. Type
// information beyond what JSON affords is not preserved; resolvers parse
// defensively on the way out.
func serialize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// serializeOrUnknown substitutes the Unknown sentinel for values the driver
// reports as unset on a freshly added row.
func serializeOrUnknown(v any) string {
	if v == nil {
		return domain.UnknownLabel
	}
	return serialize(v)
}
