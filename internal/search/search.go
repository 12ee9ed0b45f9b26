// Package search provides full-text search across the allowed
// directories, subject to the same policy as listing and reading.
package search

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/taigrr/localfiles-mcp/internal/pathguard"
	"github.com/taigrr/localfiles-mcp/internal/types"
)

// Search scans every allowed file for the query and returns matching
// lines with context. Only files passing the path and file policy are
// scanned; files that are not valid UTF-8 are skipped. The error
// return covers caller mistakes (an invalid regex pattern); policy
// states such as a missing configuration come back as structured data.
func Search(params types.SearchParams, cfg types.Config) (types.SearchResult, error) {
	if !cfg.Configured() {
		return types.SearchResult{
			Error: types.NewOpError(types.ErrNotConfigured,
				"No allowed directories configured. Please set ALLOWED_DIRECTORIES in .env file."),
		}, nil
	}

	contextLines := params.ContextLines
	if contextLines <= 0 {
		contextLines = 2
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 15
	}

	offset := max(params.Offset, 0)

	pattern, err := compilePattern(params)
	if err != nil {
		return types.SearchResult{}, err
	}

	candidates := findCandidateFiles(cfg)
	sort.Strings(candidates)

	numWorkers := max(min(runtime.NumCPU(), len(candidates)), 1)

	type indexedHit struct {
		idx int
		hit types.SearchHit
	}

	hitsCh := make(chan indexedHit, len(candidates))
	fileCh := make(chan struct {
		idx  int
		path string
	}, len(candidates))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for file := range fileCh {
				content, err := os.ReadFile(file.path)
				if err != nil || !utf8.Valid(content) {
					continue
				}

				lines := strings.Split(string(content), "\n")

				var matches []types.SearchMatch
				for lineNum, line := range lines {
					if !pattern.MatchString(line) {
						continue
					}
					startLine := max(lineNum-contextLines, 0)
					endLine := min(lineNum+contextLines+1, len(lines))
					matches = append(matches, types.SearchMatch{
						Line:    lineNum + 1,
						Context: strings.Join(lines[startLine:endLine], "\n"),
					})
				}

				if len(matches) > 0 {
					hitsCh <- indexedHit{
						idx: file.idx,
						hit: types.SearchHit{Path: file.path, Matches: matches},
					}
				}
			}
		})
	}

	for i, path := range candidates {
		fileCh <- struct {
			idx  int
			path string
		}{i, path}
	}
	close(fileCh)

	go func() {
		wg.Wait()
		close(hitsCh)
	}()

	// Collect and restore the stable path ordering.
	var indexed []indexedHit
	for h := range hitsCh {
		indexed = append(indexed, h)
	}
	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].idx < indexed[j].idx
	})

	allHits := make([]types.SearchHit, 0, len(indexed))
	for _, ih := range indexed {
		allHits = append(allHits, ih.hit)
	}

	totalFiles := len(allHits)

	if offset >= len(allHits) {
		return types.SearchResult{TotalFiles: totalFiles}, nil
	}

	endIdx := min(offset+limit, len(allHits))

	return types.SearchResult{
		Hits:       allHits[offset:endIdx],
		TotalFiles: totalFiles,
		HasMore:    endIdx < totalFiles,
	}, nil
}

// compilePattern builds the match pattern: literal queries are escaped,
// and matching is case-insensitive unless requested otherwise.
func compilePattern(params types.SearchParams) (*regexp.Regexp, error) {
	query := params.Query
	if !params.UseRegex {
		query = regexp.QuoteMeta(query)
	}
	if !params.CaseSensitive {
		query = "(?i)" + query
	}
	return regexp.Compile(query)
}

// findCandidateFiles enumerates every allowed file across all
// configured roots, deduplicating paths when roots overlap. Unreadable
// entries are skipped; enumeration is best effort.
func findCandidateFiles(cfg types.Config) []string {
	seen := make(map[string]struct{})

	for _, dir := range cfg.AllowedDirectories {
		root, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !pathguard.IsFileAllowed(path, cfg) || !pathguard.IsPathAllowed(path, cfg) {
				return nil
			}
			seen[path] = struct{}{}
			return nil
		})
	}

	candidates := make([]string, 0, len(seen))
	for path := range seen {
		candidates = append(candidates, path)
	}
	return candidates
}
