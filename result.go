package openapi

import "github.com/talav/c2openapi/debug"

type Result struct {
	JSON []byte

	// Files lists the source files ExtractDir scanned, in the order they
	// were walked. Only populated by Extractor.ExtractDir.
	Files []string

	// Warnings contains informational, non-fatal issues.
	// These are advisory only and do not indicate failure.
	Warnings debug.Warnings
}
