package gradle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osirisproject/cli/internal/cargo"
	"github.com/osirisproject/cli/internal/emit"
	"github.com/osirisproject/cli/internal/manifest"
)

const exampleManifest = `
version = 1

[application]
id = "app"
package = "pkg"

[[platform]]
id = "android"

[platform.android]
namespace = "com.example"
min-sdk = 21
ndk-level = 25
sdk-path = "/opt/sdk"
`

type fakeRunner struct {
	ok  bool
	err error

	name string
	args []string
}

func (f *fakeRunner) Run(name string, args ...string) (bool, error) {
	f.name = name
	f.args = args
	return f.ok, f.err
}

func (f *fakeRunner) prop(key string) (string, bool) {
	for i := 0; i+1 < len(f.args); i++ {
		if f.args[i] != "--project-prop" {
			continue
		}
		if v, found := strings.CutPrefix(f.args[i+1], key+"="); found {
			return v, true
		}
	}
	return "", false
}

func parseManifest(t *testing.T, content string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse(content)
	require.NoError(t, err)
	return m
}

func TestBuildEphemeral(t *testing.T) {
	m := parseManifest(t, exampleManifest)
	target := t.TempDir()
	metadata := &cargo.Metadata{TargetDirectory: target}
	runner := &fakeRunner{ok: true}

	wd := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, Build(m, metadata, m.Raw.PlatformByID("android"), runner, "gradle"))

	// Without a persistent platform directory, the integration is
	// emerged into the scratch tree.
	ephemeral := filepath.Join(target, "osiris", "platform", "android")
	assert.FileExists(t, filepath.Join(ephemeral, "build.gradle"))

	assert.Equal(t, "gradle", runner.name)
	require.NotEmpty(t, runner.args)
	assert.Equal(t, "build", runner.args[0])
	assert.Contains(t, runner.args, "--no-scan")
	assert.Contains(t, runner.args, "--no-watch-fs")
	assert.Contains(t, runner.args, "--parallel")
	assert.Contains(t, runner.args, "--quiet")

	for i, arg := range runner.args {
		if arg == "--project-dir" {
			assert.Equal(t, ephemeral, runner.args[i+1])
		}
		if arg == "--project-cache-dir" {
			assert.Equal(t, filepath.Join(target, "osiris", "build", "android", "gradle-cache"), runner.args[i+1])
		}
	}

	for key, want := range map[string]string{
		"buildDir":                     filepath.Join(target, "osiris", "build", "android", "gradle-build"),
		"osiris.application.id":        "app",
		"osiris.android.applicationId": "app",
		"osiris.android.namespace":     "com.example",
		"osiris.android.minSdk":        "21",
		"osiris.android.targetSdk":     "21",
		"osiris.android.compileSdk":    "21",
		"osiris.android.ndkLevel":      "25",
		"osiris.android.versionCode":   "1",
		"osiris.android.versionName":   "0.1.0",
		"osiris.android.sdkPath":       "/opt/sdk",
	} {
		got, found := runner.prop(key)
		require.True(t, found, "missing project property %s", key)
		assert.Equal(t, want, got, "property %s", key)
	}
}

func TestBuildPersistentDirectory(t *testing.T) {
	m := parseManifest(t, exampleManifest)
	target := t.TempDir()
	runner := &fakeRunner{ok: true}

	wd := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	platform := m.Raw.PlatformByID("android")
	require.NoError(t, emit.Emerge(m, platform, "", false))

	require.NoError(t, Build(m, &cargo.Metadata{TargetDirectory: target}, platform, runner, "gradle"))

	// The persistent directory is authoritative, nothing is emerged
	// into the scratch tree.
	assert.NoDirExists(t, filepath.Join(target, "osiris", "platform"))

	for i, arg := range runner.args {
		if arg == "--project-dir" {
			assert.Equal(t, "./platform/android", runner.args[i+1])
		}
	}
}

func TestBuildPlatformPathNotDirectory(t *testing.T) {
	m := parseManifest(t, exampleManifest)
	runner := &fakeRunner{ok: true}

	wd := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, os.MkdirAll("platform", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("platform", "android"), []byte("x"), 0o644))

	err = Build(m, &cargo.Metadata{TargetDirectory: t.TempDir()}, m.Raw.PlatformByID("android"), runner, "gradle")

	var dirErr *emit.PlatformDirectoryError
	require.ErrorAs(t, err, &dirErr)
	assert.Empty(t, runner.name, "build tool invoked despite bad platform path")
}

func TestBuildToolFailure(t *testing.T) {
	m := parseManifest(t, exampleManifest)

	wd := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Run("nonzero exit", func(t *testing.T) {
		err := Build(m, &cargo.Metadata{TargetDirectory: t.TempDir()}, m.Raw.PlatformByID("android"), &fakeRunner{ok: false}, "gradle")
		assert.ErrorIs(t, err, ErrBuild)
	})

	t.Run("exec failure", func(t *testing.T) {
		boom := errors.New("gradle not found")
		err := Build(m, &cargo.Metadata{TargetDirectory: t.TempDir()}, m.Raw.PlatformByID("android"), &fakeRunner{err: boom}, "gradle")

		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "gradle", execErr.Bin)
		assert.ErrorIs(t, err, boom)
	})
}

func TestBuildUnconfiguredPlatform(t *testing.T) {
	m := parseManifest(t, `
version = 1

[application]
id = "app"
package = "pkg"

[[platform]]
id = "bare"
`)
	runner := &fakeRunner{ok: true}

	wd := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, Build(m, &cargo.Metadata{TargetDirectory: t.TempDir()}, m.Raw.PlatformByID("bare"), runner, "gradle"))
	assert.Empty(t, runner.name, "build tool invoked for unconfigured platform")
}
