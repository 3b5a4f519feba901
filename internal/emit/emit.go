package emit

import (
	"errors"
	"io/fs"
	"os"

	"github.com/osirisproject/cli/internal/manifest"
)

// Emerge writes persistent platform integration for the given platform to
// disk. Integration parameters are sourced from the manifest. By default the
// integration lands in the platform directory declared in the manifest;
// pathOverride, when non-empty, replaces that base path. This is used to
// emerge into ephemeral build directories.
//
// Emerge fails with ErrAlready when the platform directory already exists,
// unless update is true. With update set, stale files are rewritten to match
// the new integration and leftovers of old releases are deleted.
func Emerge(m *manifest.Manifest, platform *manifest.RawPlatform, pathOverride string, update bool) error {
	dir := pathOverride
	if dir == "" {
		dir = platform.PathOrDefault()
	}

	// The platform directory must either be absent, or be a directory we
	// are allowed to update. Anything else is refused before any file is
	// touched.
	st, err := os.Stat(dir)
	switch {
	case err == nil && !st.IsDir():
		return &PlatformDirectoryError{Path: dir}
	case err == nil && !update:
		return ErrAlready
	case err == nil:
		// Existing directory, updates allowed.
	case errors.Is(err, fs.ErrNotExist):
		if err := EnsureDir(dir); err != nil {
			return err
		}
	default:
		return &PlatformDirectoryError{Path: dir}
	}

	switch cfg := platform.Configuration().(type) {
	case *manifest.RawPlatformAndroid:
		return emergeAndroid(m, cfg, dir)
	case nil:
		return nil
	default:
		return nil
	}
}
