package types

// Content kinds for ContentResult. Text means the file decoded as valid
// UTF-8 and Content holds it verbatim; binary means Content holds the
// raw bytes base64-encoded.
const (
	ContentKindText   = "text"
	ContentKindBinary = "binary_base64"
)

// ContentResult is the read_file result. On failure only Path and Error
// are set. Size, Modified, ContentKind, and Content never carry
// omitempty: an empty file is a legitimate success whose zero size and
// empty content must stay on the wire.
type ContentResult struct {
	Path        string   `json:"path"`
	Name        string   `json:"name,omitempty"`
	Size        int64    `json:"size"`
	Modified    int64    `json:"modified"` // timestamp in milliseconds
	Extension   string   `json:"extension,omitempty"`
	ContentKind string   `json:"contentKind"`
	Content     string   `json:"content"`
	Error       *OpError `json:"error,omitempty"`
}
