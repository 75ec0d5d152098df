package platform

import (
	"os"
	"runtime"
)

// chmod applies mode to path. Windows has no Unix permission bits, so the
// temp file keeps whatever the OS gave it there.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
