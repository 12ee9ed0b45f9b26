// Package types defines all data structures used across the MCP server.
package types

// ErrorKind classifies an operation-level failure.
type ErrorKind string

const (
	// ErrNotConfigured means no allowed directories are set.
	ErrNotConfigured ErrorKind = "not_configured"
	// ErrPathNotAllowed means the path escapes the configured roots.
	ErrPathNotAllowed ErrorKind = "path_not_allowed"
	// ErrNotFound means the target does not exist.
	ErrNotFound ErrorKind = "not_found"
	// ErrNotAFile means the target exists but is not a regular file.
	ErrNotAFile ErrorKind = "not_a_file"
	// ErrNotADirectory means the target exists but is not a directory.
	ErrNotADirectory ErrorKind = "not_a_directory"
	// ErrPolicyRejected means the file violates the size or extension policy.
	ErrPolicyRejected ErrorKind = "policy_rejected"
	// ErrIOFailure means an OS-level read or stat failed.
	ErrIOFailure ErrorKind = "io_failure"
)

// OpError is a structured operation failure returned as data, never
// raised. Callers switch on Kind; Message is for humans.
type OpError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewOpError builds an OpError for the given kind and message.
func NewOpError(kind ErrorKind, message string) *OpError {
	return &OpError{Kind: kind, Message: message}
}
