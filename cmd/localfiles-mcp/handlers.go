package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/localfiles-mcp/internal/catalog"
	"github.com/taigrr/localfiles-mcp/internal/reader"
	"github.com/taigrr/localfiles-mcp/internal/search"
	"github.com/taigrr/localfiles-mcp/internal/types"
)

func handleListFiles(ctx context.Context, req *mcp.CallToolRequest, input ListFilesInput) (*mcp.CallToolResult, types.ListingResult, error) {
	cfg, err := loader.Load()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.ListingResult{}, err
	}

	return nil, catalog.ListFiles(strings.TrimSpace(input.DirectoryPath), cfg), nil
}

func handleReadFile(ctx context.Context, req *mcp.CallToolRequest, input ReadFileInput) (*mcp.CallToolResult, types.ContentResult, error) {
	cfg, err := loader.Load()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.ContentResult{}, err
	}

	return nil, reader.ReadFile(strings.TrimSpace(input.FilePath), cfg), nil
}

func handleSearchFiles(ctx context.Context, req *mcp.CallToolRequest, input SearchFilesInput) (*mcp.CallToolResult, types.SearchResult, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &mcp.CallToolResult{IsError: true}, types.SearchResult{},
			fmt.Errorf("query cannot be empty")
	}

	cfg, err := loader.Load()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.SearchResult{}, err
	}

	result, err := search.Search(types.SearchParams{
		Query:         query,
		UseRegex:      input.UseRegex,
		CaseSensitive: input.CaseSensitive,
		ContextLines:  input.ContextLines,
		Limit:         input.Limit,
		Offset:        input.Offset,
	}, cfg)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.SearchResult{}, err
	}

	return nil, result, nil
}

func handleGetConfig(ctx context.Context, req *mcp.CallToolRequest, input GetConfigInput) (*mcp.CallToolResult, types.ConfigSummary, error) {
	cfg, err := loader.Load()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.ConfigSummary{}, err
	}

	status := "not_configured"
	if cfg.Configured() {
		status = "configured"
	}

	return nil, types.ConfigSummary{
		AllowedDirectories: cfg.AllowedDirectories,
		MaxFileSize:        cfg.MaxFileSize,
		AllowedExtensions:  cfg.AllowedExtensions,
		Status:             status,
	}, nil
}
