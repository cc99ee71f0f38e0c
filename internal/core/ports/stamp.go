package ports

import (
	"io/fs"
	"time"
)

// FileStamp identifies one version of a file.
type FileStamp struct {
	ModTime time.Time
	Size    int64
}

// StampOf extracts the stamp from file info.
func StampOf(info fs.FileInfo) FileStamp {
	return FileStamp{ModTime: info.ModTime(), Size: info.Size()}
}

// ScanKey identifies one scan result: a file version read by a scanner backend.
type ScanKey struct {
	Scanner string
	Path    string
	Stamp   FileStamp
}
