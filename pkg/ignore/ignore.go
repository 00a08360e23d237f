// Package ignore resolves and evaluates the ignore rules that decide which
// files of a project directory are packaged.
package ignore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Candidate source filenames checked at the project root, highest
// precedence first. Exactly one source is used per invocation.
var sourceNames = []string{".packignore", ".distignore", ".gitignore"}

// Pattern is a single ignore rule.
//
// A rule with a leading "/" is anchored: it excludes every root-relative
// path it is a literal prefix of, so it only takes effect at the project
// root. Any other rule is a glob matched against the base name of a path at
// any depth.
type Pattern struct {
	raw      string
	anchored bool
	prefix   string // raw with the leading separator stripped
}

// NewPattern builds a Pattern from one already-trimmed source line.
func NewPattern(line string) Pattern {
	p := Pattern{raw: line}
	if strings.HasPrefix(line, "/") {
		p.anchored = true
		p.prefix = strings.TrimPrefix(line, "/")
	}
	return p
}

// Matches reports whether the rule excludes the given root-relative
// slash-separated path.
func (p Pattern) Matches(rel string) bool {
	if p.anchored {
		return strings.HasPrefix(rel, p.prefix)
	}
	ok, err := path.Match(p.raw, path.Base(rel))
	if err != nil {
		// Malformed globs come from hand-edited ignore files; they never
		// match rather than failing the run.
		return false
	}
	return ok
}

// Anchored reports whether the rule only applies at the project root.
func (p Pattern) Anchored() bool { return p.anchored }

func (p Pattern) String() string { return p.raw }

// List is the ordered set of patterns loaded from one source file. It is
// never mutated after creation. Order does not affect the outcome: a path
// is excluded as soon as any rule matches it.
type List struct {
	patterns []Pattern
	source   string
	logger   *zap.Logger
}

// NewList compiles raw pattern lines into a List. Lines are trimmed; blank
// lines and "#" comments are dropped. Duplicates are kept as written.
func NewList(lines []string, logger *zap.Logger) *List {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &List{logger: logger}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		l.patterns = append(l.patterns, NewPattern(trimmed))
	}
	return l
}

// Resolve locates the authoritative ignore file under root and loads it.
// Candidates are checked in fixed precedence order; the first one present
// wins. A root with no ignore file of any tier yields an empty List, which
// excludes nothing.
//
// A candidate that is detected but cannot be read is a configuration
// error: Resolve fails instead of falling through to the next tier.
func Resolve(root string, logger *zap.Logger) (*List, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, name := range sourceNames {
		sourcePath := filepath.Join(root, name)
		if _, err := os.Stat(sourcePath); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("checking ignore file %s: %w", sourcePath, err)
		}

		content, err := os.ReadFile(sourcePath)
		if err != nil {
			return nil, fmt.Errorf("reading ignore file %s: %w", sourcePath, err)
		}

		l := NewList(strings.Split(string(content), "\n"), logger)
		l.source = sourcePath
		logger.Debug("loaded ignore file",
			zap.String("file", sourcePath),
			zap.Int("patterns", len(l.patterns)))
		return l, nil
	}

	logger.Debug("no ignore file found", zap.String("root", root))
	return NewList(nil, logger), nil
}

// Matches reports whether any rule excludes the given root-relative
// slash-separated path, short-circuiting on the first match.
func (l *List) Matches(rel string) bool {
	for _, p := range l.patterns {
		if p.Matches(rel) {
			l.logger.Debug("path matches ignore pattern",
				zap.String("path", rel),
				zap.String("pattern", p.String()))
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns.
func (l *List) Len() int { return len(l.patterns) }

// Source returns the path of the file the patterns were loaded from, or
// the empty string when no ignore file was found.
func (l *List) Source() string { return l.source }
