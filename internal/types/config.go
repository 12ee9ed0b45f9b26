package types

type (
	// Config holds the effective server policy. It is produced fresh by
	// the loader on every tool call and passed by value; nothing mutates
	// it after load.
	Config struct {
		AllowedDirectories []string `json:"allowedDirectories"`
		MaxFileSize        int64    `json:"maxFileSize"`
		AllowedExtensions  []string `json:"allowedExtensions"`
	}

	// ConfigSummary is the get_config tool result.
	ConfigSummary struct {
		AllowedDirectories []string `json:"allowedDirectories"`
		MaxFileSize        int64    `json:"maxFileSize"`
		AllowedExtensions  []string `json:"allowedExtensions"`
		Status             string   `json:"status"` // "configured" or "not_configured"
	}
)

// Configured reports whether at least one allowed directory is set.
func (c Config) Configured() bool {
	return len(c.AllowedDirectories) > 0
}
