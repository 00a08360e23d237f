package pack

// Options holds the configuration for one packaging run.
type Options struct {
	Root       string // Project directory to package.
	Output     string // Archive path; derived from the manifest when empty.
	MaxWorkers int    // Number of concurrent digest workers; NumCPU when <= 0.
	AssumeYes  bool   // Skip the overwrite confirmation prompt.
}

// Entry pairs a file on disk with the name it is stored under in the
// archive. Name is the file's root-relative slash path, so the archive
// preserves the project's directory structure.
type Entry struct {
	Source string // Absolute path on disk.
	Name   string // Path recorded inside the archive.
}

// Result summarizes a completed packaging run.
type Result struct {
	Archive      string // Path of the written archive.
	ChecksumFile string // Path of the checksum sidecar.
	Files        int    // Number of files packaged.
}
