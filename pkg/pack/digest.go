package pack

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"
	"go.uber.org/zap"
)

// FileDigest pairs an archive name with the digest of its source file.
type FileDigest struct {
	Name   string
	Digest digest.Digest
}

type digestResult struct {
	name   string
	digest digest.Digest
	err    error
}

// DigestEntries computes a sha256 digest for every entry using a bounded
// worker pool and returns the results sorted by archive name. Digesting
// happens before the archive is written; any read failure fails the run.
func DigestEntries(entries []Entry, maxWorkers int, logger *zap.Logger) ([]FileDigest, error) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("adjusted digest worker count", zap.Int("workers", maxWorkers))
	}

	jobs := make(chan Entry, len(entries))
	results := make(chan digestResult, len(entries))
	var wg sync.WaitGroup

	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go digestWorker(jobs, results, &wg, workerLogger)
	}

	for _, entry := range entries {
		jobs <- entry
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	digests := make([]FileDigest, 0, len(entries))
	for res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("digesting %s: %w", res.name, res.err)
		}
		digests = append(digests, FileDigest{Name: res.name, Digest: res.digest})
	}

	sort.Slice(digests, func(i, j int) bool {
		return digests[i].Name < digests[j].Name
	})
	return digests, nil
}

func digestWorker(jobs <-chan Entry, results chan<- digestResult, wg *sync.WaitGroup, logger *zap.Logger) {
	defer wg.Done()

	for entry := range jobs {
		d, err := digestFile(entry.Source)
		if err != nil {
			results <- digestResult{name: entry.Name, err: err}
			continue
		}
		logger.Debug("digested file",
			zap.String("name", entry.Name),
			zap.String("digest", d.String()))
		results <- digestResult{name: entry.Name, digest: d}
	}
}

func digestFile(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return digest.FromReader(f)
}

// WriteChecksums writes the digests to dest in sha256sum format, one
// "<hex>  <name>" line per file.
func WriteChecksums(dest string, digests []FileDigest, logger *zap.Logger) error {
	var b strings.Builder
	for _, d := range digests {
		fmt.Fprintf(&b, "%s  %s\n", d.Digest.Encoded(), d.Name)
	}

	if err := os.WriteFile(dest, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing checksum file %s: %w", dest, err)
	}
	logger.Debug("wrote checksum file",
		zap.String("file", dest),
		zap.Int("files", len(digests)))
	return nil
}
