package fs

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scrivtools/scriv"
)

// Extension of a Scrivener project directory.
const projectExt = ".scriv"

// DefaultMaxDepth is how deep Discover descends below each search root.
const DefaultMaxDepth = 3

// Finder locates Scrivener projects on the local filesystem. A directory
// counts as a project when its name ends in .scriv and it contains an
// index file.
type Finder struct{}

var _ scriv.Finder = (*Finder)(nil)

// NewFinder creates a Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Discover scans the roots concurrently, one goroutine per root. Empty
// roots falls back to CommonLocations. Hidden directories are not
// descended into; unreadable directories are skipped. Results are unique
// by path and sorted by name, case-insensitively.
func (f *Finder) Discover(ctx context.Context, roots []string, maxDepth int) ([]*scriv.ProjectInfo, error) {
	if len(roots) == 0 {
		roots = CommonLocations()
	}
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	found := make([][]*scriv.ProjectInfo, len(roots))
	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			infos, err := scanDir(ctx, root, maxDepth)
			if err != nil {
				return err
			}
			found[i] = infos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var infos []*scriv.ProjectInfo
	for _, batch := range found {
		for _, info := range batch {
			if seen[info.Path] {
				continue
			}
			seen[info.Path] = true
			infos = append(infos, info)
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		return strings.ToLower(infos[i].Name) < strings.ToLower(infos[j].Name)
	})
	return infos, nil
}

// scanDir collects projects directly inside dir and recurses into visible
// subdirectories while depth remains. Projects themselves are never
// descended into.
func scanDir(ctx context.Context, dir string, depth int) ([]*scriv.ProjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var infos []*scriv.ProjectInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		if filepath.Ext(entry.Name()) == projectExt {
			if info := projectInfo(path); info != nil {
				infos = append(infos, info)
			}
			continue
		}
		if depth > 0 && !strings.HasPrefix(entry.Name(), ".") {
			sub, err := scanDir(ctx, path, depth-1)
			if err != nil {
				return nil, err
			}
			infos = append(infos, sub...)
		}
	}
	return infos, nil
}

// projectInfo describes the project directory at path without opening it,
// or returns nil when the directory holds no index file.
func projectInfo(path string) *scriv.ProjectInfo {
	matches, err := filepath.Glob(filepath.Join(path, "*"+indexExt))
	if err != nil || len(matches) == 0 {
		return nil
	}

	base := filepath.Base(path)
	info := &scriv.ProjectInfo{
		Name: strings.TrimSuffix(base, projectExt),
		Path: path,
	}
	if st, err := os.Stat(path); err == nil {
		info.Modified = st.ModTime()
	}
	return info
}

// CommonLocations returns the directories Scrivener projects usually live
// in on this machine, filtered to those that exist.
func CommonLocations() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	candidates := []string{
		filepath.Join(home, "Documents"),
		filepath.Join(home, "Scrivener"),
		filepath.Join(home, "Writing"),
		filepath.Join(home, "Dropbox"),
		filepath.Join(home, "Desktop"),
	}
	switch runtime.GOOS {
	case "darwin":
		icloud := filepath.Join(home, "Library", "Mobile Documents", "com~apple~CloudDocs")
		candidates = append(candidates, icloud, filepath.Join(icloud, "Documents"), filepath.Join(icloud, "Scrivener"))
	case "windows":
		candidates = append(candidates, filepath.Join(home, "OneDrive", "Documents"), filepath.Join(home, "OneDrive"))
	}

	var locations []string
	for _, dir := range candidates {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			locations = append(locations, dir)
		}
	}
	return locations
}
