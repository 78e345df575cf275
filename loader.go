package openapi

import (
	"context"
	"fmt"

	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/internal/docload"
	"github.com/talav/c2openapi/internal/export"
	v304 "github.com/talav/c2openapi/internal/export/v304"
	v312 "github.com/talav/c2openapi/internal/export/v312"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/specvalidate"
)

// Loader reads an already-decoded OpenAPI/JSON Schema document tree (the
// output of encoding/json.Unmarshal into `any`) and produces a validated,
// version-agnostic [model.Spec]. Construct with [NewLoader].
type Loader struct {
	// Registry backs cross-document $ref/$dynamicRef resolution. When nil,
	// NewLoader creates a private registry scoped to this Loader; share one
	// registry across multiple Loader.Load calls to resolve refs between
	// documents.
	Registry *model.DocRegistry

	// ReexportVersion, when non-empty, makes Load additionally project the
	// validated Spec back out through the same export stage the Extractor
	// uses, and populate Result.JSON with the re-serialized document. Left
	// empty, Load returns only the in-memory Spec.
	ReexportVersion string

	// ValidateSpec enables JSON Schema validation of the re-exported
	// document against ReexportVersion's meta-schema. Has no effect unless
	// ReexportVersion is set.
	ValidateSpec bool

	exporter export.Exporter
}

// LoaderOption configures a Loader using the functional options pattern.
type LoaderOption func(*Loader)

// NewLoader creates a Loader ready to load OpenAPI document trees.
//
// Example:
//
//	reg := model.NewDocRegistry()
//	ld := openapi.NewLoader(openapi.WithRegistry(reg))
//	result, err := ld.Load(ctx, "https://example.com/openapi.json", doc)
func NewLoader(opts ...LoaderOption) *Loader {
	ld := &Loader{}
	for _, opt := range opts {
		opt(ld)
	}
	if ld.Registry == nil {
		ld.Registry = model.NewDocRegistry()
	}
	ld.exporter = export.NewExporter([]export.ViewAdapter{
		&v304.AdapterV304{},
		&v312.AdapterV312{},
		&v312.AdapterV312{Target: "3.2.0"},
	})
	return ld
}

// WithRegistry shares a [model.DocRegistry] across multiple Loader.Load
// calls, so that a $ref in one document can resolve into another document
// already registered under its base URI.
func WithRegistry(registry *model.DocRegistry) LoaderOption {
	return func(l *Loader) { l.Registry = registry }
}

// WithReexport makes Load project the validated Spec back out as an OpenAPI
// document of the given target version (e.g. "3.0.4", "3.1.2"), populating
// [LoadResult.JSON].
func WithReexport(version string) LoaderOption {
	return func(l *Loader) { l.ReexportVersion = version }
}

// WithLoaderValidation enables meta-schema validation of the re-exported
// document. Has no effect unless [WithReexport] is also set.
func WithLoaderValidation(enabled bool) LoaderOption {
	return func(l *Loader) { l.ValidateSpec = enabled }
}

// LoadResult is the outcome of [Loader.Load]: the resolved, validated Spec,
// any re-exported bytes (only set when the Loader was built with
// [WithReexport]), and non-fatal warnings collected along the way.
type LoadResult struct {
	// Spec is the fully loaded and semantically validated specification.
	Spec *model.Spec

	// JSON holds the re-exported document, only populated when the Loader
	// was configured with WithReexport.
	JSON []byte

	// Warnings contains informational, non-fatal issues encountered while
	// loading (and, if applicable, re-exporting) the document.
	Warnings debug.Warnings
}

// Load parses root (a document tree produced by encoding/json.Unmarshal into
// `any`) as an OpenAPI or bare JSON Schema document rooted at baseURI,
// resolves its internal and cross-document references, validates the
// cross-cutting invariants (path templating, querystring exclusivity,
// operation id uniqueness, tag acyclicity, security scheme well-formedness,
// path collisions), and registers the result in the Loader's DocRegistry so
// later Load calls on the same Loader can resolve $refs into it.
//
// Load performs no mid-document cancellation: ctx is only checked at entry,
// matching the single CPU-bound pass the loader makes over root.
func (l *Loader) Load(ctx context.Context, baseURI string, root any) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registry := l.Registry
	if registry == nil {
		registry = model.NewDocRegistry()
	}

	inner := docload.New(registry)
	spec, warnings, err := inner.Load(baseURI, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}

	if !spec.IsSchemaDocument {
		if err := specvalidate.Validate(spec); err != nil {
			return nil, fmt.Errorf("failed to validate OpenAPI document: %w", err)
		}
	}

	result := &LoadResult{Spec: spec, Warnings: warnings}

	if l.ReexportVersion != "" {
		exportCfg := export.ExporterConfig{Version: l.ReexportVersion, ShouldValidate: l.ValidateSpec}
		exported, err := l.exporter.Export(ctx, spec, exportCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to re-export OpenAPI document: %w", err)
		}
		result.JSON = exported.Result
		result.Warnings = append(result.Warnings, exported.Warnings...)
	}

	return result, nil
}
