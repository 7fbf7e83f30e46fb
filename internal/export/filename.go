package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildPath returns a file path of the form base + "_" + date + ext.
// Files are appended to (not duplicated) on subsequent writes, so no
// collision counter is needed.
func BuildPath(base, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s%s", base, DateSuffix(t), ext)
}

// EnsureDir creates the directory component of path (equivalent to
// mkdir -p) with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
