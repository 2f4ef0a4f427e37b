package domain

import "fmt"

// PathError indicates a missing or unreadable path. The scanner tolerates it
// per-file; all commands are fatal on it for their top-level inputs.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// SchemaError indicates a malformed pattern artifact: not valid JSON, or
// missing one of the expected top-level fields.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid pattern report: %s", e.Reason)
}
