package types

type (
	// SearchParams contains parameters for searching allowed files.
	SearchParams struct {
		Query         string `json:"query"`
		UseRegex      bool   `json:"useRegex,omitempty"`
		CaseSensitive bool   `json:"caseSensitive,omitempty"`
		ContextLines  int    `json:"contextLines,omitempty"`
		Limit         int    `json:"limit,omitempty"`
		Offset        int    `json:"offset,omitempty"`
	}

	// SearchMatch represents a single match within a file.
	SearchMatch struct {
		Line    int    `json:"line"`
		Context string `json:"context"`
	}

	// SearchHit represents search results for a single file.
	SearchHit struct {
		Path    string        `json:"path"`
		Matches []SearchMatch `json:"matches"`
	}

	// SearchResult is the aggregate search_files result.
	SearchResult struct {
		Hits       []SearchHit `json:"hits,omitempty"`
		TotalFiles int         `json:"totalFiles"`
		HasMore    bool        `json:"hasMore,omitempty"`
		Error      *OpError    `json:"error,omitempty"`
	}
)
