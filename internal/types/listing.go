package types

type (
	// FileEntry is the metadata for one listed file.
	FileEntry struct {
		Name         string `json:"name"`
		Path         string `json:"path"`
		RelativePath string `json:"relativePath"`
		Size         int64  `json:"size"`
		Modified     int64  `json:"modified"` // timestamp in milliseconds
		Extension    string `json:"extension"`
	}

	// DirectoryReport is the per-directory outcome of a listing. Either
	// Files/TotalFiles are populated or Error is set; one bad directory
	// never aborts the rest of the scan. Skipped records entries whose
	// metadata could not be read.
	DirectoryReport struct {
		Directory  string      `json:"directory"`
		Files      []FileEntry `json:"files,omitempty"`
		TotalFiles int         `json:"totalFiles"`
		Skipped    []string    `json:"skipped,omitempty"`
		Error      *OpError    `json:"error,omitempty"`
	}

	// ListingResult is the aggregate list_files result.
	ListingResult struct {
		AllowedDirectories []string          `json:"allowedDirectories,omitempty"`
		Directories        []DirectoryReport `json:"directories,omitempty"`
		TotalDirectories   int               `json:"totalDirectories"`
		Error              *OpError          `json:"error,omitempty"`
	}
)
