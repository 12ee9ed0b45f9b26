package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ListFilesInput contains parameters for listing files.
	ListFilesInput struct {
		DirectoryPath string `json:"directoryPath,omitempty" jsonschema:"Specific directory to list; when omitted, all allowed directories are listed"`
	}

	// ReadFileInput contains parameters for reading a file.
	ReadFileInput struct {
		FilePath string `json:"filePath" jsonschema:"Path to the file to read"`
	}

	// SearchFilesInput contains parameters for searching allowed files.
	SearchFilesInput struct {
		Query         string `json:"query" jsonschema:"Search query (plain text or regex if useRegex=true)"`
		UseRegex      bool   `json:"useRegex,omitempty" jsonschema:"Treat query as regex pattern (default: false)"`
		CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Case sensitive search (default: false)"`
		ContextLines  int    `json:"contextLines,omitempty" jsonschema:"Lines of context before/after match (default: 2)"`
		Limit         int    `json:"limit,omitempty" jsonschema:"Maximum results (default: 15)"`
		Offset        int    `json:"offset,omitempty" jsonschema:"Skip first N results for pagination (default: 0)"`
	}

	// GetConfigInput contains parameters for the config summary.
	GetConfigInput struct{}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List all files in the specified directory or all allowed directories. Returns per-file metadata (name, path, size, modified time, extension) grouped per directory. Files outside the size or extension policy are omitted.",
	}, handleListFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_file",
		Description: "Read the contents of a specific file. Returns UTF-8 text verbatim, or base64-encoded bytes for binary files, along with file metadata.",
	}, handleReadFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_files",
		Description: "Full-text search across all allowed files. Supports regex and case-insensitive search. Returns matching lines with context, paginated with limit/offset.",
	}, handleSearchFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_config",
		Description: "Get the currently effective server configuration: allowed directories, max file size, allowed extensions, and whether the server is configured.",
	}, handleGetConfig)
}
