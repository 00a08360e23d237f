package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"distpack/pkg/ignore"

	"go.uber.org/zap"
)

// Collect walks root depth-first and returns the files that survive the
// ignore rules, in traversal order. A directory matched by a rule is
// pruned: its subtree is never visited. Any I/O failure mid-walk aborts
// the whole traversal so a partial file set is never returned.
//
// The traversal uses an explicit worklist rather than recursion, so its
// depth is bounded by the worklist and not the call stack.
func Collect(root string, rules *ignore.List, logger *zap.Logger) ([]Entry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("locating project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", absRoot)
	}

	var entries []Entry
	stack := []string{absRoot}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", dir, err)
		}

		var subdirs []string
		for _, child := range children {
			full := filepath.Join(dir, child.Name())
			rel, err := filepath.Rel(absRoot, full)
			if err != nil {
				return nil, fmt.Errorf("relativizing %s: %w", full, err)
			}
			rel = filepath.ToSlash(rel)

			isDir := child.IsDir()
			if child.Type()&os.ModeSymlink != 0 {
				// Symlinks follow stat semantics: classify by target type.
				target, err := os.Stat(full)
				if err != nil {
					return nil, fmt.Errorf("resolving symlink %s: %w", full, err)
				}
				isDir = target.IsDir()
			}

			if rules.Matches(rel) {
				logger.Debug("excluded by ignore rule",
					zap.String("path", rel),
					zap.Bool("dir", isDir))
				continue
			}

			if isDir {
				subdirs = append(subdirs, full)
				continue
			}
			entries = append(entries, Entry{Source: full, Name: rel})
		}

		// Push in reverse so sibling directories pop in listing order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	logger.Debug("collected files",
		zap.String("root", absRoot),
		zap.Int("files", len(entries)))
	return entries, nil
}

// Select resolves the ignore rules for root and returns the files that
// would be packaged.
func Select(root string, logger *zap.Logger) ([]Entry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	rules, err := ignore.Resolve(absRoot, logger)
	if err != nil {
		return nil, fmt.Errorf("loading ignore rules: %w", err)
	}

	return Collect(absRoot, rules, logger)
}
