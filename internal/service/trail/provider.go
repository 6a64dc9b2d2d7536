package trail

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/domain"
)

// Provider reconstructs display-ready reference data for one anchor record.
// Implementations are specialized per business entity but share one state
// machine: Added anchors produce addedFields, Modified anchors produce
// changedFields, Deleted anchors produce an empty result.
type Provider interface {
	Reconstruct(ctx context.Context, anchor domain.ChangeRecord) domain.ReferenceData
}

// Registry maps an entity name to its reconstruction provider.
type Registry struct {
	providers map[domain.EntityName]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[domain.EntityName]Provider)}
}

func (r *Registry) Register(entity domain.EntityName, p Provider) {
	r.providers[entity] = p
}

// Provider returns the provider registered for the entity, if any.
func (r *Registry) Provider(entity domain.EntityName) (Provider, bool) {
	p, ok := r.providers[entity]
	return p, ok
}

// rawSpec is a scalar property reported verbatim, without label resolution.
type rawSpec struct {
	Property  string // property name in the record payload
	FieldName string // field name in the reference data output
}

// lookupSpec is a scalar foreign key whose id is resolved to a display label.
type lookupSpec struct {
	Property  string            // foreign-key property in the record payload
	FieldName string            // field name in the reference data output
	Lookup    domain.EntityName // lookup entity the id points into
}

// relationSpec describes a many-to-many relation table whose rows are
// captured as independent change records and reassembled via correlation.
type relationSpec struct {
	RelationEntity domain.EntityName // relation-table entity, e.g. CourseDepartment
	AnchorKey      string            // payload property pointing back at the anchor
	RelatedKey     string            // payload property holding the related id
	RelatedEntity  domain.EntityName // lookup entity for the related id
	FieldName      string            // field name in the reference data output
}

// entityProvider is the shared provider implementation. Output order is
// deterministic: raw fields, then lookup fields, then relation fields, each
// in declared spec order.
type entityProvider struct {
	correlator *correlator
	resolver   labelResolver
	log        *slog.Logger

	rawFields    []rawSpec
	lookupFields []lookupSpec
	relations    []relationSpec
}

func newEntityProvider(
	log *slog.Logger,
	correlator *correlator,
	resolver labelResolver,
	raw []rawSpec,
	lookups []lookupSpec,
	relations []relationSpec,
) *entityProvider {
	return &entityProvider{
		correlator:   correlator,
		resolver:     resolver,
		log:          log,
		rawFields:    raw,
		lookupFields: lookups,
		relations:    relations,
	}
}

func (p *entityProvider) Reconstruct(ctx context.Context, anchor domain.ChangeRecord) domain.ReferenceData {
	var ref domain.ReferenceData

	switch anchor.Action {
	case domain.AuditActionAdded:
		p.reconstructAdded(ctx, anchor, &ref)
	case domain.AuditActionModified:
		p.reconstructModified(ctx, anchor, &ref)
	case domain.AuditActionDeleted:
		// Deletion trails are not rendered; the record itself is the trail.
	}

	return ref
}

func (p *entityProvider) reconstructAdded(ctx context.Context, anchor domain.ChangeRecord, ref *domain.ReferenceData) {
	for _, spec := range p.rawFields {
		value, ok := anchor.NewValue(spec.Property)
		if !ok {
			continue
		}
		ref.AddedFields = append(ref.AddedFields, domain.AddedField{
			FieldName: spec.FieldName,
			Value:     value,
		})
	}

	for _, spec := range p.lookupFields {
		id, ok := anchor.NewValue(spec.Property)
		if !ok || id == "" || id == domain.UnknownLabel {
			continue
		}
		label := p.resolver.Resolve(ctx, spec.Lookup, id)
		if label == domain.UnknownLabel {
			continue
		}
		ref.AddedFields = append(ref.AddedFields, domain.AddedField{
			FieldName: spec.FieldName,
			Value:     label,
		})
	}

	for _, spec := range p.relations {
		ids := p.relatedIDs(ctx, anchor, spec, domain.AuditActionAdded)
		if len(ids) == 0 {
			continue
		}
		ref.AddedFields = append(ref.AddedFields, domain.AddedField{
			FieldName: spec.FieldName,
			Value:     p.joinLabels(ctx, spec.RelatedEntity, ids),
		})
	}
}

func (p *entityProvider) reconstructModified(ctx context.Context, anchor domain.ChangeRecord, ref *domain.ReferenceData) {
	// Only properties present in the anchor's own diff are reported; the
	// capture layer already minimized the diff, so presence means change.
	for _, spec := range p.rawFields {
		newValue, ok := anchor.NewValue(spec.Property)
		if !ok {
			continue
		}
		oldValue, _ := anchor.OldValue(spec.Property)
		ref.ChangedFields = append(ref.ChangedFields, domain.ChangedField{
			FieldName: spec.FieldName,
			OldValue:  oldValue,
			NewValue:  newValue,
		})
	}

	for _, spec := range p.lookupFields {
		newID, ok := anchor.NewValue(spec.Property)
		if !ok {
			continue
		}
		oldID, ok := anchor.OldValue(spec.Property)
		if !ok {
			p.log.WarnContext(ctx, "modified payload missing old value, skipping field",
				slog.String("entity", anchor.EntityName.String()),
				slog.String("property", spec.Property),
			)
			continue
		}
		oldLabel := p.resolver.ResolveBefore(ctx, spec.Lookup, oldID, anchor.CreatedAt)
		if oldLabel == domain.UnknownLabel {
			p.log.WarnContext(ctx, "old reference unresolvable, skipping field",
				slog.String("entity", anchor.EntityName.String()),
				slog.String("property", spec.Property),
			)
			continue
		}
		newLabel := p.resolver.Resolve(ctx, spec.Lookup, newID)
		// Two ids can carry the same display value; a change the reader
		// cannot see is not reported.
		if oldLabel == newLabel {
			continue
		}
		ref.ChangedFields = append(ref.ChangedFields, domain.ChangedField{
			FieldName: spec.FieldName,
			OldValue:  oldLabel,
			NewValue:  newLabel,
		})
	}

	for _, spec := range p.relations {
		previous := p.relatedIDs(ctx, anchor, spec, domain.AuditActionDeleted)
		current := p.relatedIDs(ctx, anchor, spec, domain.AuditActionAdded)
		if len(previous) == 0 && len(current) == 0 {
			// Relation untouched in this transaction; say nothing rather
			// than reporting it unchanged.
			continue
		}

		oldJoined := p.joinLabels(ctx, spec.RelatedEntity, previous)
		newJoined := p.joinLabels(ctx, spec.RelatedEntity, current)
		if oldJoined == newJoined {
			continue
		}
		ref.ChangedFields = append(ref.ChangedFields, domain.ChangedField{
			FieldName: spec.FieldName,
			OldValue:  oldJoined,
			NewValue:  newJoined,
		})
	}
}

// relatedIDs correlates relation-table records with the anchor and extracts
// the related-side ids, most recent record per id winning. Records without
// the expected key are skipped, never fatal.
func (p *entityProvider) relatedIDs(ctx context.Context, anchor domain.ChangeRecord, spec relationSpec, action domain.AuditAction) []string {
	related, err := p.correlator.FindRelated(ctx, anchor, spec.RelationEntity, spec.AnchorKey, action)
	if err != nil {
		p.log.WarnContext(ctx, "relation correlation failed, skipping field",
			slog.String("entity", anchor.EntityName.String()),
			slog.String("relation", spec.RelationEntity.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	seen := make(map[string]struct{}, len(related))
	ids := make([]string, 0, len(related))
	for _, rec := range related {
		id, ok := rec.PayloadField(spec.RelatedKey)
		if !ok || id == "" {
			p.log.WarnContext(ctx, "correlated record missing related key, skipping record",
				slog.String("relation", spec.RelationEntity.String()),
				slog.String("key", spec.RelatedKey),
			)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// joinLabels resolves ids to labels, sorts them alphabetically and joins
// them into one display string.
func (p *entityProvider) joinLabels(ctx context.Context, entity domain.EntityName, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	resolved := p.resolver.ResolveAll(ctx, entity, ids)
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, resolved[id])
	}
	sort.Strings(labels)
	return strings.Join(labels, ", ")
}
