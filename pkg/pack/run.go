package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"distpack/pkg/ignore"

	"go.uber.org/zap"
)

// Run executes a full packaging pass: resolve the ignore rules, collect
// the file set, digest it, and write the archive with its checksum
// sidecar. It returns a nil Result without error when the user declines
// to overwrite an existing archive.
func Run(opts Options, logger *zap.Logger) (*Result, error) {
	start := time.Now()

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}
	logger.Info("packaging project", zap.String("root", root))

	rules, err := ignore.Resolve(root, logger)
	if err != nil {
		return nil, fmt.Errorf("loading ignore rules: %w", err)
	}
	if rules.Source() != "" {
		logger.Debug("using ignore file",
			zap.String("file", rules.Source()),
			zap.Int("patterns", rules.Len()))
	}

	entries, err := Collect(root, rules, logger)
	if err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}
	if len(entries) == 0 {
		logger.Warn("no files to package after filtering", zap.String("root", root))
	}

	manifest, err := LoadManifest(root, logger)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		// Default next to the project root, never the process working dir.
		output = filepath.Join(filepath.Dir(root), manifest.ArchiveName())
	}

	if err := ensureDirectory(filepath.Dir(output), logger); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if !opts.AssumeYes {
		if _, err := os.Stat(output); err == nil {
			overwrite, err := promptUser(fmt.Sprintf("%s already exists. Overwrite? (y/n): ", output))
			if err != nil {
				return nil, fmt.Errorf("reading user input: %w", err)
			}
			if !overwrite {
				logger.Info("packaging aborted, archive left untouched",
					zap.String("archive", output))
				return nil, nil
			}
		}
	}

	digests, err := DigestEntries(entries, opts.MaxWorkers, logger)
	if err != nil {
		return nil, err
	}

	checksumFile := output + ".sha256"
	if err := WriteChecksums(checksumFile, digests, logger); err != nil {
		return nil, err
	}

	if err := WriteArchive(output, entries, logger); err != nil {
		return nil, err
	}

	logger.Info("packaged project",
		zap.String("archive", output),
		zap.String("checksums", checksumFile),
		zap.Int("files", len(entries)),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{
		Archive:      output,
		ChecksumFile: checksumFile,
		Files:        len(entries),
	}, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Error("failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
