// Package gradle drives full builds of the Android platform integration by
// invoking the Gradle build tool as a subprocess.
package gradle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osirisproject/cli/internal/cargo"
	"github.com/osirisproject/cli/internal/emit"
	"github.com/osirisproject/cli/internal/manifest"
)

// ErrBuild indicates the platform build tools ran but failed. Their
// diagnostics are passed through to the caller's streams, so no further
// detail is attached.
var ErrBuild = errors.New("platform build failed")

// ExecError indicates the build tool could not be invoked at all.
type ExecError struct {
	Bin string
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to invoke %q: %v", e.Bin, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *ExecError) Unwrap() error { return e.Err }

// Runner invokes the external build tool. It exists so tests can substitute
// the real subprocess with a fake.
type Runner interface {
	// Run invokes name with args, passing the process streams through.
	// It reports whether the tool exited successfully. A non-nil error
	// means execution could not commence at all.
	Run(name string, args ...string) (ok bool, err error)
}

// projectProps returns one Gradle project property per resolved view field,
// ready to be appended as `--project-prop key=value` argument pairs.
func projectProps(application *manifest.ViewApplication, android *manifest.ViewPlatformAndroid) [][2]string {
	u := func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

	return [][2]string{
		{"osiris.application.id", application.ID},
		{"osiris.application.idSymbol", application.IDSymbol},
		{"osiris.application.name", application.Name},
		{"osiris.application.path", application.Path},
		{"osiris.application.package", application.Package},
		{"osiris.application.packageSymbol", application.PackageSymbol},
		{"osiris.android.applicationId", android.ApplicationID},
		{"osiris.android.namespace", android.Namespace},
		{"osiris.android.minSdk", u(android.MinSDK)},
		{"osiris.android.targetSdk", u(android.TargetSDK)},
		{"osiris.android.compileSdk", u(android.CompileSDK)},
		{"osiris.android.ndkLevel", u(android.NDKLevel)},
		{"osiris.android.versionCode", u(android.VersionCode)},
		{"osiris.android.versionName", android.VersionName},
		{"osiris.android.sdkPath", android.SDKPath},
	}
}

func buildAndroid(m *manifest.Manifest, android *manifest.RawPlatformAndroid, runner Runner, bin, pathPlatform, pathBuild string) error {
	viewApplication, err := m.Raw.ViewApplication()
	if err != nil {
		return err
	}
	viewAndroid, err := android.View(m.Raw)
	if err != nil {
		return err
	}

	// Gradle makes output directories part of the project configuration,
	// so both the cache and the build output are redirected into the
	// scratch directory to keep the sources clean.
	args := []string{
		"build",
		"--no-scan",
		"--no-watch-fs",
		"--parallel",
		"--quiet",
		"--project-dir", pathPlatform,
		"--project-cache-dir", filepath.Join(pathBuild, "gradle-cache"),
		"--project-prop", "buildDir=" + filepath.Join(pathBuild, "gradle-build"),
	}
	for _, prop := range projectProps(viewApplication, viewAndroid) {
		args = append(args, "--project-prop", prop[0]+"="+prop[1])
	}

	ok, err := runner.Run(bin, args...)
	if err != nil {
		return &ExecError{Bin: bin, Err: err}
	}
	if !ok {
		return ErrBuild
	}
	return nil
}

// Build performs a full build of the platform integration of the given
// platform with the build tool named by bin. If no persistent platform
// integration exists at the manifest-declared path, an ephemeral one is
// emerged into the build scratch tree below the cargo target directory and
// built from there.
func Build(m *manifest.Manifest, metadata *cargo.Metadata, platform *manifest.RawPlatform, runner Runner, bin string) error {
	pathPlatform := platform.PathOrDefault()

	st, err := os.Stat(pathPlatform)
	switch {
	case err == nil && !st.IsDir():
		return &emit.PlatformDirectoryError{Path: pathPlatform}
	case err == nil:
		// Persistent platform integration, build it as-is.
	case errors.Is(err, fs.ErrNotExist):
		pathPlatform = filepath.Join(metadata.TargetDirectory, "osiris", "platform", platform.ID)
		if err := emit.EnsureDir(pathPlatform); err != nil {
			return err
		}
		if err := emit.Emerge(m, platform, pathPlatform, true); err != nil {
			return err
		}
	default:
		return &emit.PlatformDirectoryError{Path: pathPlatform}
	}

	// Reuse the scratch directory across builds where possible.
	pathBuild := filepath.Join(metadata.TargetDirectory, "osiris", "build", platform.ID)
	if err := emit.EnsureDir(pathBuild); err != nil {
		return err
	}

	switch cfg := platform.Configuration().(type) {
	case *manifest.RawPlatformAndroid:
		return buildAndroid(m, cfg, runner, bin, pathPlatform, pathBuild)
	case nil:
		return nil
	default:
		return nil
	}
}
