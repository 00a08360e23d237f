package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// WriteArchive writes the entries into a deflate-compressed ZIP archive at
// dest. Entries are written sequentially in the order given; any failure
// aborts the write and surfaces the error.
func WriteArchive(dest string, entries []Entry, logger *zap.Logger) (err error) {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing archive %s: %w", dest, cerr)
		}
	}()

	zw := zip.NewWriter(out)
	for _, entry := range entries {
		if err := addEntry(zw, entry); err != nil {
			return fmt.Errorf("archiving %s: %w", entry.Name, err)
		}
		logger.Debug("archived file",
			zap.String("name", entry.Name),
			zap.String("source", entry.Source))
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive %s: %w", dest, err)
	}
	return nil
}

func addEntry(zw *zip.Writer, entry Entry) error {
	src, err := os.Open(entry.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = entry.Name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
