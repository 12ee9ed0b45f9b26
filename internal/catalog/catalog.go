// Package catalog produces recursive listings of the allowed
// directories, filtered by the path and file policy.
package catalog

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/taigrr/localfiles-mcp/internal/pathguard"
	"github.com/taigrr/localfiles-mcp/internal/types"
)

// ListFiles lists every allowed file under directoryPath, or under all
// configured allowed directories when directoryPath is empty. Each
// directory in the scan set is reported independently: one missing or
// unreadable directory never aborts the rest. The result is always
// structured data; ListFiles does not fail.
func ListFiles(directoryPath string, cfg types.Config) types.ListingResult {
	if !cfg.Configured() {
		return types.ListingResult{
			Error: types.NewOpError(types.ErrNotConfigured,
				"No allowed directories configured. Please set ALLOWED_DIRECTORIES in .env file."),
		}
	}

	var scanSet []string
	if directoryPath != "" {
		if !pathguard.IsPathAllowed(directoryPath, cfg) {
			return types.ListingResult{
				AllowedDirectories: cfg.AllowedDirectories,
				Error: types.NewOpError(types.ErrPathNotAllowed,
					"Directory '"+directoryPath+"' is not in allowed directories."),
			}
		}
		scanSet = []string{directoryPath}
	} else {
		scanSet = cfg.AllowedDirectories
	}

	reports := make([]types.DirectoryReport, 0, len(scanSet))
	for _, dir := range scanSet {
		reports = append(reports, scanDirectory(dir, cfg))
	}

	return types.ListingResult{
		AllowedDirectories: cfg.AllowedDirectories,
		Directories:        reports,
		TotalDirectories:   len(reports),
	}
}

// scanDirectory walks one directory recursively, collecting metadata
// for every file that passes the policy. Files failing the size or
// extension policy are silently omitted; entries whose metadata cannot
// be read are recorded in Skipped and logged, never fatal.
func scanDirectory(dir string, cfg types.Config) types.DirectoryReport {
	report := types.DirectoryReport{Directory: dir}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			report.Error = types.NewOpError(types.ErrNotFound, "Directory does not exist")
		} else {
			report.Error = types.NewOpError(types.ErrIOFailure, err.Error())
		}
		return report
	}
	if !info.IsDir() {
		report.Error = types.NewOpError(types.ErrNotADirectory, "Path is not a directory")
		return report
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		report.Error = types.NewOpError(types.ErrIOFailure, err.Error())
		return report
	}

	files := []types.FileEntry{}
	walkErr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("skipping unreadable entry")
			report.Skipped = append(report.Skipped, path)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !pathguard.IsFileAllowed(path, cfg) {
			return nil
		}
		// A symlinked file can resolve outside the allowed roots even
		// though the walk never leaves them; re-check containment.
		if !pathguard.IsPathAllowed(path, cfg) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("skipping unstatable file")
			report.Skipped = append(report.Skipped, path)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("skipping entry outside scan root")
			report.Skipped = append(report.Skipped, path)
			return nil
		}

		files = append(files, types.FileEntry{
			Name:         d.Name(),
			Path:         path,
			RelativePath: rel,
			Size:         fi.Size(),
			Modified:     fi.ModTime().UnixMilli(),
			Extension:    filepath.Ext(path),
		})
		return nil
	})
	if walkErr != nil {
		report.Error = types.NewOpError(types.ErrIOFailure, walkErr.Error())
		return report
	}

	report.Files = files
	report.TotalFiles = len(files)
	return report
}
