package source

type (
	// FileID uniquely identifies a configuration file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a loaded file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single configuration file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of '\n', for line lookup
	Flags   FileFlags
}

// NumLines returns the number of physical lines in the file.
func (f *File) NumLines() int {
	n := len(f.LineIdx)
	if len(f.Content) == 0 {
		return 0
	}
	if f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

// Line returns the text of the 1-based physical line n, without its newline.
// Out-of-range lines yield "".
func (f *File) Line(n int) string {
	if n < 1 || n > f.NumLines() {
		return ""
	}
	start := uint32(0)
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end := uint32(len(f.Content))
	if n-1 < len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	return string(f.Content[start:end])
}
