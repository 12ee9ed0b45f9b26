// Package reader reads single files subject to the path and file
// policy, classifying content as UTF-8 text or base64-encoded binary.
package reader

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/taigrr/localfiles-mcp/internal/pathguard"
	"github.com/taigrr/localfiles-mcp/internal/types"
)

// ReadFile reads one file. Every failure mode is returned as a
// structured OpError on the result; ReadFile never fails with a Go
// error. Valid UTF-8 content is returned verbatim with kind "text";
// anything else is base64-encoded with kind "binary_base64".
func ReadFile(filePath string, cfg types.Config) types.ContentResult {
	result := types.ContentResult{Path: filePath}

	if !cfg.Configured() {
		result.Error = types.NewOpError(types.ErrNotConfigured,
			"No allowed directories configured. Please set ALLOWED_DIRECTORIES in .env file.")
		return result
	}

	if !pathguard.IsPathAllowed(filePath, cfg) {
		result.Error = types.NewOpError(types.ErrPathNotAllowed,
			"File '"+filePath+"' is not in allowed directories.")
		return result
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			result.Error = types.NewOpError(types.ErrNotFound, "File does not exist.")
		} else {
			result.Error = types.NewOpError(types.ErrIOFailure, err.Error())
		}
		return result
	}
	if !info.Mode().IsRegular() {
		result.Error = types.NewOpError(types.ErrNotAFile, "Path is not a file.")
		return result
	}

	if !pathguard.IsFileAllowed(filePath, cfg) {
		result.Error = types.NewOpError(types.ErrPolicyRejected,
			"File is not allowed (size or extension restrictions).")
		return result
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Error = types.NewOpError(types.ErrIOFailure, "Error reading file: "+err.Error())
		return result
	}

	if utf8.Valid(data) {
		result.ContentKind = types.ContentKindText
		result.Content = string(data)
	} else {
		result.ContentKind = types.ContentKindBinary
		result.Content = base64.StdEncoding.EncodeToString(data)
	}

	result.Name = info.Name()
	result.Size = info.Size()
	result.Modified = info.ModTime().UnixMilli()
	result.Extension = filepath.Ext(filePath)
	return result
}
