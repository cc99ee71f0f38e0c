package domain

import "path/filepath"

const (
	// WorkDirName is the name of the tool's metadata directory inside the project.
	WorkDirName = ".rbuild"

	// DepsDirName holds dependency fragments.
	DepsDirName = "deps"

	// CacheDirName holds the persistent include scan cache.
	CacheDirName = "cache"

	// ScanCacheFile is the name of the compressed scan cache file.
	ScanCacheFile = "scan.json.zst"

	// ProjectFileName is the default project description file.
	ProjectFileName = "rbuild.yaml"

	// EnvFileName is the optional environment override file next to the project file.
	EnvFileName = ".env"

	// FragmentExt is the extension of a dependency fragment file.
	FragmentExt = ".d"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDepsPath returns the fragment directory under base.
func DefaultDepsPath(base string) string {
	return filepath.Join(base, WorkDirName, DepsDirName)
}

// DefaultScanCachePath returns the scan cache file under base.
func DefaultScanCachePath(base string) string {
	return filepath.Join(base, WorkDirName, CacheDirName, ScanCacheFile)
}
