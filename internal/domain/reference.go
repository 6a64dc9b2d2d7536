package domain

// AddedField is one reconstructed field of an "Added" business action.
type AddedField struct {
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

// ChangedField is one reconstructed old/new pair of a "Modified" business
// action. A field appears only when its effective old and new display values
// differ.
type ChangedField struct {
	FieldName string `json:"fieldName"`
	OldValue  string `json:"oldValue"`
	NewValue  string `json:"newValue"`
}

// ReferenceData is the display-ready description of what an audited action
// added or changed. It is computed on demand from the change-record log and
// never persisted; field order is deterministic and must not be re-sorted by
// callers.
type ReferenceData struct {
	AddedFields   []AddedField   `json:"addedFields"`
	ChangedFields []ChangedField `json:"changedFields"`
}

// IsEmpty reports whether reconstruction produced no fields at all
// (e.g. a Deleted anchor, or an anchor with no reconstructable diff).
func (d ReferenceData) IsEmpty() bool {
	return len(d.AddedFields) == 0 && len(d.ChangedFields) == 0
}
