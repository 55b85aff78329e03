// Package template materializes workspace files for dotnet-gen: verbatim
// and rendered copies of embedded templates, conditional removal of
// generated files, and key/value merges into JSON settings documents.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template does not exist in the FS.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the template referenced a variable that was not supplied.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a placeholder survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")

	// ErrPathTraversal indicates a destination path escapes the workspace root.
	ErrPathTraversal = errors.New("path escapes workspace root")

	// ErrTemplateWrite indicates the destination could not be written.
	ErrTemplateWrite = errors.New("template write failed")

	// ErrConfigMerge indicates an existing settings file is not a valid JSON object.
	ErrConfigMerge = errors.New("settings merge failed")
)
