package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".wpbuild"

	// CacheFileName is the name of the image cache database.
	CacheFileName = "cache.db"

	// ConfigFileName is the default name of the project configuration file.
	ConfigFileName = "wpbuild.yaml"

	// EnvFileName is the dotenv file read next to the configuration file.
	EnvFileName = ".env"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the path of the image cache database relative to the project root.
func DefaultCachePath() string {
	return filepath.Join(StateDirName, CacheFileName)
}
