// Package main implements the MCP server for restricted local file access.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taigrr/localfiles-mcp/internal/config"
)

var (
	loader  *config.Loader
	envFile string
)

func main() {
	cmd := &cobra.Command{
		Use:   "localfiles-mcp [dir ...]",
		Short: "MCP server exposing a restricted view of local files",
		Long: `localfiles-mcp is a Model Context Protocol (MCP) server that exposes
a restricted view of the local filesystem. MCP-compatible clients can
list, read, and search files, gated by an allow-list of directories,
a file size limit, and an extension filter loaded from a settings
file and the process environment. Directories given as arguments
override the configured allow-list.`,
		Example: `localfiles-mcp ~/projects/docs ~/notes`,
		Args:    cobra.ArbitraryArgs,
		RunE:    runServer,
	}
	cmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile,
		"path of the KEY=value settings file")

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	loader = config.NewLoader(envFile, args)

	// One eager load for startup diagnostics; every tool call reloads.
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Configured() {
		logrus.WithField("allowedDirectories", cfg.AllowedDirectories).
			Info("serving allowed directories")
	} else {
		logrus.Warn("no allowed directories configured; set ALLOWED_DIRECTORIES " +
			"in the settings file or pass directories as arguments")
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "localfiles-mcp",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
