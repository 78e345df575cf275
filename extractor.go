// Package openapi is the public entry point for both pipelines this module
// implements: Extractor walks a directory of C sources annotated with
// doc-comment directives and produces an OpenAPI document (AEP, the
// annotation-driven extraction pipeline); Loader reads an already-decoded
// OpenAPI/JSON Schema document tree and produces a validated, version-
// agnostic Spec (DLV, the document loader/validator pipeline). Both
// pipelines share the same Info/Servers/Tags/SecuritySchemes configuration
// surface and the same internal/export projection stage.
package openapi

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/internal/aggregate"
	"github.com/talav/c2openapi/internal/cscan"
	"github.com/talav/c2openapi/internal/docparse"
	"github.com/talav/c2openapi/internal/export"
	v304 "github.com/talav/c2openapi/internal/export/v304"
	v312 "github.com/talav/c2openapi/internal/export/v312"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/opbuild"
	"github.com/talav/c2openapi/internal/typemap"
)

// Extractor walks C source directories and builds an OpenAPI document from
// their @route doc-comment annotations. All
// fields are public for functional options, but direct modification after
// construction is not recommended; use the With* options passed to
// [NewExtractor].
//
// Create instances using [NewExtractor].
type Extractor struct {
	// Info contains API metadata (title, version, description, contact, license).
	Info model.Info

	// Servers lists available server URLs for the API.
	Servers []model.Server

	// Tags provides additional metadata for operations, merged with tags
	// discovered from @tag directives during extraction.
	Tags []model.Tag

	// SecuritySchemes defines available authentication/authorization schemes.
	SecuritySchemes map[string]*model.SecurityScheme

	// DefaultSecurity applies security requirements to all operations by default.
	DefaultSecurity []model.SecurityRequirement

	// ExternalDocs provides external documentation links.
	ExternalDocs *model.ExternalDocs

	// Extensions contains specification extensions (fields prefixed with x-).
	Extensions map[string]any

	// Version is the target OpenAPI version (e.g. "3.0.4", "3.1.2").
	Version string

	// ValidateSpec enables JSON Schema validation of the generated document
	// against the target version's meta-schema.
	ValidateSpec bool

	// SourceExtensions lists the file extensions scanned for annotations.
	// Default: [".c", ".h"].
	SourceExtensions []string

	exporter export.Exporter
}

// Option configures an Extractor using the functional options pattern.
type Option func(*Extractor)

// NewExtractor creates an Extractor ready to walk C source trees.
//
// Example:
//
//	ex := openapi.NewExtractor(
//	    openapi.WithInfoTitle("Pet Store"),
//	    openapi.WithInfoVersion("1.0.0"),
//	    openapi.WithVersion("3.1.2"),
//	)
func NewExtractor(opts ...Option) *Extractor {
	ex := &Extractor{
		Info:             model.Info{Title: "API", Version: "1.0.0"},
		Version:          "3.1.2",
		SourceExtensions: []string{".c", ".h"},
	}
	for _, opt := range opts {
		opt(ex)
	}

	ex.exporter = export.NewExporter([]export.ViewAdapter{
		&v304.AdapterV304{},
		&v312.AdapterV312{},
		&v312.AdapterV312{Target: "3.2.0"},
	})

	return ex
}

// WithInfoTitle sets the API title.
func WithInfoTitle(title string) Option {
	return func(e *Extractor) { e.Info.Title = title }
}

// WithInfoVersion sets the API version.
func WithInfoVersion(version string) Option {
	return func(e *Extractor) { e.Info.Version = version }
}

// WithInfoDescription sets the API description.
func WithInfoDescription(desc string) Option {
	return func(e *Extractor) { e.Info.Description = desc }
}

// WithInfoSummary sets the API summary (OpenAPI 3.1+ only; dropped with a
// warning when the target is 3.0).
func WithInfoSummary(summary string) Option {
	return func(e *Extractor) { e.Info.Summary = summary }
}

// WithTermsOfService sets the Terms of Service URL.
func WithTermsOfService(url string) Option {
	return func(e *Extractor) { e.Info.TermsOfService = url }
}

// WithContact sets contact information for the API.
func WithContact(name, url, email string) Option {
	return func(e *Extractor) {
		e.Info.Contact = &model.Contact{Name: name, URL: url, Email: email}
	}
}

// WithLicense sets license information using a URL (OpenAPI 3.0 style).
// Mutually exclusive with WithLicenseIdentifier.
func WithLicense(name, url string) Option {
	return func(e *Extractor) { e.Info.License = &model.License{Name: name, URL: url} }
}

// WithLicenseIdentifier sets license information using an SPDX identifier
// (OpenAPI 3.1+). Mutually exclusive with WithLicense.
func WithLicenseIdentifier(name, identifier string) Option {
	return func(e *Extractor) {
		e.Info.License = &model.License{Name: name, Identifier: identifier}
	}
}

// WithExternalDocs sets external documentation for the whole API.
func WithExternalDocs(url, description string) Option {
	return func(e *Extractor) {
		e.ExternalDocs = &model.ExternalDocs{URL: url, Description: description}
	}
}

// ServerOption configures a Server using the functional options pattern.
type ServerOption func(*model.Server)

// WithServer adds a server URL to the specification.
func WithServer(url string, opts ...ServerOption) Option {
	return func(e *Extractor) {
		server := &model.Server{URL: url}
		for _, opt := range opts {
			opt(server)
		}
		e.Servers = append(e.Servers, *server)
	}
}

// WithServerDescription sets the server description.
func WithServerDescription(desc string) ServerOption {
	return func(s *model.Server) { s.Description = desc }
}

// WithServerVariable adds a variable to the server URL template.
func WithServerVariable(name, defaultValue string, enum []string, description string) ServerOption {
	return func(s *model.Server) {
		if s.Variables == nil {
			s.Variables = make(map[string]*model.ServerVariable)
		}
		s.Variables[name] = &model.ServerVariable{Enum: enum, Default: defaultValue, Description: description}
	}
}

// WithTag adds a tag to the specification, in addition to any tags
// discovered from operations during extraction.
func WithTag(name, desc string) Option {
	return func(e *Extractor) {
		e.Tags = append(e.Tags, model.Tag{Name: name, Description: desc})
	}
}

// WithBearerAuth adds a Bearer (JWT) authentication scheme.
func WithBearerAuth(name, desc string) Option {
	return func(e *Extractor) {
		if e.SecuritySchemes == nil {
			e.SecuritySchemes = make(map[string]*model.SecurityScheme)
		}
		e.SecuritySchemes[name] = &model.SecurityScheme{
			Type: model.SecuritySchemeHTTP, Scheme: "bearer", BearerFormat: "JWT", Description: desc,
		}
	}
}

// ParameterLocation represents where a security API key can be located.
type ParameterLocation string

const (
	InHeader ParameterLocation = "header"
	InQuery  ParameterLocation = "query"
	InCookie ParameterLocation = "cookie"
)

// WithAPIKey adds an API key authentication scheme.
func WithAPIKey(name, paramName string, in ParameterLocation, desc string) Option {
	return func(e *Extractor) {
		if e.SecuritySchemes == nil {
			e.SecuritySchemes = make(map[string]*model.SecurityScheme)
		}
		e.SecuritySchemes[name] = &model.SecurityScheme{
			Type: model.SecuritySchemeAPIKey, Name: paramName, In: string(in), Description: desc,
		}
	}
}

// WithDefaultSecurity sets default security requirements applied to all
// operations that do not declare their own @security directive.
func WithDefaultSecurity(scheme string, scopes ...string) Option {
	return func(e *Extractor) {
		if scopes == nil {
			scopes = []string{}
		}
		e.DefaultSecurity = append(e.DefaultSecurity, model.SecurityRequirement{scheme: scopes})
	}
}

// WithVersion sets the target OpenAPI version (e.g. "3.0.4", "3.1.2").
func WithVersion(version string) Option {
	return func(e *Extractor) { e.Version = version }
}

// WithValidation enables JSON Schema validation of the generated document
// against the target version's meta-schema.
func WithValidation(enabled bool) Option {
	return func(e *Extractor) { e.ValidateSpec = enabled }
}

// WithExtension adds a specification extension to the document root.
func WithExtension(key string, value any) Option {
	return func(e *Extractor) {
		if e.Extensions == nil {
			e.Extensions = make(map[string]any)
		}
		e.Extensions[key] = value
	}
}

// WithSourceExtensions overrides which file extensions are scanned for
// annotations. Default: [".c", ".h"].
func WithSourceExtensions(exts ...string) Option {
	return func(e *Extractor) { e.SourceExtensions = exts }
}

// ExtractDir walks dir recursively, scans every matching source file for
// documented C function declarations, and builds an OpenAPI document from
// them. It is a pure function over the filesystem contents at dir: it does
// not cache or memoize across calls.
func (e *Extractor) ExtractDir(ctx context.Context, dir string) (*Result, error) {
	if e.Info.Title == "" {
		return nil, ErrTitleRequired
	}
	if e.Info.Version == "" {
		return nil, ErrVersionRequired
	}
	if e.Info.License != nil && e.Info.License.Identifier != "" && e.Info.License.URL != "" {
		return nil, ErrLicenseMutuallyExclusive
	}
	for _, s := range e.Servers {
		if len(s.Variables) > 0 && s.URL == "" {
			return nil, ErrServerVariablesNeedURL
		}
	}
	if !e.exporter.IsSupportedVersion(e.Version) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVersion, e.Version)
	}

	agg := aggregate.New(e.Info)
	types := typemap.New()

	files, err := e.collectFiles(dir)
	if err != nil {
		return nil, err
	}

	scanned := make([]*cscan.File, len(files))
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, model.Wrap(model.IO, path, err)
		}
		scanned[i] = cscan.Scan(src)
		types.RegisterTypes(scanned[i].Types)
	}

	var warnings debug.Warnings
	for i, f := range scanned {
		for _, fd := range f.Funcs {
			md := docparse.Parse(fd.DocComment)
			res, ok := opbuild.Build(fd.Sig, md, types, fd.DocComment != "")
			warnings = append(warnings, res.Warnings...)
			if !ok {
				continue
			}
			if err := agg.Add(res); err != nil {
				return nil, model.Wrap(model.ConflictError, files[i], err)
			}
		}
	}

	if err := agg.MergeSchemas(types.Schemas()); err != nil {
		return nil, err
	}
	agg.Sort()

	spec := agg.Spec()
	spec.Servers = e.Servers
	spec.ExternalDocs = e.ExternalDocs
	spec.Extensions = e.Extensions
	spec.Security = e.DefaultSecurity
	spec.HasSecurity = len(e.DefaultSecurity) > 0
	if spec.Components == nil {
		spec.Components = &model.Components{}
	}
	spec.Components.SecuritySchemes = e.SecuritySchemes
	for _, t := range e.Tags {
		spec.Tags = append(spec.Tags, t)
	}

	exportCfg := export.ExporterConfig{Version: e.Version, ShouldValidate: e.ValidateSpec}
	result, err := e.exporter.Export(ctx, spec, exportCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to export OpenAPI spec: %w", err)
	}
	warnings = append(warnings, result.Warnings...)

	return &Result{JSON: result.Result, Files: files, Warnings: warnings}, nil
}

func (e *Extractor) collectFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range e.SourceExtensions {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, model.Wrap(model.IO, dir, err)
	}
	return files, nil
}
