// Package aggregate accumulates the operations produced by internal/opbuild,
// keyed by (path, verb), into a single model.Spec, merging the schemas
// discovered by internal/typemap into Components.Schemas. One Operation is
// folded in at a time into a shared Paths map.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/opbuild"
)

// Aggregator accumulates operations into a Spec.
type Aggregator struct {
	spec         *model.Spec
	operationIDs map[string]string // operationId -> "METHOD path" that first claimed it, for duplicate detection
}

// New returns an Aggregator seeded with empty Paths/Components.
func New(info model.Info) *Aggregator {
	return &Aggregator{
		spec: &model.Spec{
			Info:       info,
			Paths:      map[string]*model.PathItem{},
			Components: &model.Components{Schemas: map[string]*model.Schema{}},
		},
		operationIDs: map[string]string{},
	}
}

// Add folds one opbuild.Result into the aggregate Spec. A result built from
// an @webhook directive is filed into Spec.Webhooks instead of Spec.Paths.
// A duplicate operationId is reported as a ConflictError rather than
// silently overwriting the earlier operation.
func (a *Aggregator) Add(res opbuild.Result) error {
	if res.Operation == nil {
		return nil
	}

	paths := a.spec.Paths
	locationPrefix := "/paths"
	if res.IsWebhook {
		if a.spec.Webhooks == nil {
			a.spec.Webhooks = map[string]*model.PathItem{}
		}
		paths = a.spec.Webhooks
		locationPrefix = "/webhooks"
	}

	key := fmt.Sprintf("%s %s", res.Operation.Method, res.Path)
	if owner, ok := a.operationIDs[res.Operation.OperationID]; ok && owner != key {
		return model.Errorf(model.ConflictError, locationPrefix+res.Path, "duplicate operationId %q (already used by %s)", res.Operation.OperationID, owner)
	}
	a.operationIDs[res.Operation.OperationID] = key

	item, ok := paths[res.Path]
	if !ok {
		item = &model.PathItem{}
		paths[res.Path] = item
	}

	if err := setOperation(item, res.Operation); err != nil {
		return model.Wrap(model.ConflictError, locationPrefix+res.Path, err)
	}
	return nil
}

// MergeSchemas copies every component schema from a typemap.Registry (or any
// equivalent name->schema map) into the aggregate Spec's Components.Schemas,
// reporting a ConflictError if two distinct schemas claim the same name.
func (a *Aggregator) MergeSchemas(schemas map[string]*model.Schema) error {
	for name, sc := range schemas {
		if existing, ok := a.spec.Components.Schemas[name]; ok && existing != sc {
			return model.Errorf(model.ConflictError, "/components/schemas/"+name, "schema name %q already registered from a different declaration", name)
		}
		a.spec.Components.Schemas[name] = sc
	}
	return nil
}

// Spec returns the accumulated, but not yet deterministically sorted, Spec.
func (a *Aggregator) Spec() *model.Spec {
	return a.spec
}

// Sort normalizes the Spec for deterministic emission: parameters within
// each operation are ordered by (in, name), and tags are sorted and
// deduplicated at the Spec level, so repeated extraction/load calls on the
// same input produce byte-identical output.
func (a *Aggregator) Sort() {
	tagSet := map[string]bool{}
	for _, items := range []map[string]*model.PathItem{a.spec.Paths, a.spec.Webhooks} {
		for _, item := range items {
			for _, op := range allOperations(item) {
				sort.SliceStable(op.Parameters, func(i, j int) bool {
					if op.Parameters[i].In != op.Parameters[j].In {
						return op.Parameters[i].In < op.Parameters[j].In
					}
					return op.Parameters[i].Name < op.Parameters[j].Name
				})
				for _, tag := range op.Tags {
					tagSet[tag] = true
				}
			}
		}
	}

	names := make([]string, 0, len(tagSet))
	for t := range tagSet {
		names = append(names, t)
	}
	sort.Strings(names)

	existing := map[string]bool{}
	for _, tag := range a.spec.Tags {
		existing[tag.Name] = true
	}
	for _, name := range names {
		if !existing[name] {
			a.spec.Tags = append(a.spec.Tags, model.Tag{Name: name})
		}
	}
	sort.SliceStable(a.spec.Tags, func(i, j int) bool { return a.spec.Tags[i].Name < a.spec.Tags[j].Name })
}

func allOperations(item *model.PathItem) []*model.Operation {
	var ops []*model.Operation
	for _, op := range []*model.Operation{item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch, item.Trace, item.Query} {
		if op != nil {
			ops = append(ops, op)
		}
	}
	for _, op := range item.AdditionalOperations {
		ops = append(ops, op)
	}
	return ops
}

func setOperation(item *model.PathItem, op *model.Operation) error {
	target := func(p **model.Operation) error {
		if *p != nil {
			return fmt.Errorf("operation already defined for this method on this path")
		}
		*p = op
		return nil
	}

	switch op.Verb {
	case model.VerbGet:
		return target(&item.Get)
	case model.VerbPut:
		return target(&item.Put)
	case model.VerbPost:
		return target(&item.Post)
	case model.VerbDelete:
		return target(&item.Delete)
	case model.VerbOptions:
		return target(&item.Options)
	case model.VerbHead:
		return target(&item.Head)
	case model.VerbPatch:
		return target(&item.Patch)
	case model.VerbTrace:
		return target(&item.Trace)
	case model.VerbQuery:
		return target(&item.Query)
	default:
		if op.Method == "" {
			return fmt.Errorf("operation has neither a recognized verb nor an explicit method")
		}
		if item.AdditionalOperations == nil {
			item.AdditionalOperations = map[string]*model.Operation{}
		}
		if _, exists := item.AdditionalOperations[op.Method]; exists {
			return fmt.Errorf("operation already defined for method %q on this path", op.Method)
		}
		op.IsAdditional = true
		item.AdditionalOperations[op.Method] = op
		return nil
	}
}
