package emit

import (
	"path/filepath"
	"strings"

	"github.com/osirisproject/cli/internal/manifest"
)

// writeRendered renders the named Android template and applies a
// content-diffed update to path.
func writeRendered(path, name string, data androidData) error {
	content, err := renderAndroid(name, data)
	if err != nil {
		return &FileUpdateError{Path: path, Err: err}
	}
	return UpdateFile(path, content)
}

// emergeAndroid writes the Android platform integration below dir. Both
// manifest views are resolved up front, so missing manifest keys surface
// before any file is touched.
func emergeAndroid(m *manifest.Manifest, android *manifest.RawPlatformAndroid, dir string) error {
	viewApplication, err := m.Raw.ViewApplication()
	if err != nil {
		return err
	}
	viewAndroid, err := android.View(m.Raw)
	if err != nil {
		return err
	}

	data := androidData{
		AppName:   escapeXMLPCData(viewApplication.Name),
		IDSymbol:  viewApplication.IDSymbol,
		Namespace: viewAndroid.Namespace,
		SDKPath:   viewAndroid.SDKPath,
	}

	if err := writeRendered(filepath.Join(dir, "gradle.properties"), "gradle.properties", data); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(dir, "local.properties"), "local.properties", data); err != nil {
		return err
	}
	// Earlier releases kept their key-value store in `osiris.properties`.
	if err := UnlinkFile(filepath.Join(dir, "osiris.properties")); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(dir, "settings.gradle"), "settings.gradle", data); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(dir, "build.gradle"), "build.gradle", data); err != nil {
		return err
	}

	main := filepath.Join(dir, "src", "main")
	if err := EnsureDir(main); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(main, "AndroidManifest.xml"), "AndroidManifest.xml", data); err != nil {
		return err
	}

	layout := filepath.Join(main, "res", "layout")
	if err := EnsureDir(layout); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(layout, "activity_main.xml"), "activity_main.xml", data); err != nil {
		return err
	}

	values := filepath.Join(main, "res", "values")
	if err := EnsureDir(values); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(values, "strings.xml"), "strings.xml", data); err != nil {
		return err
	}
	if err := writeRendered(filepath.Join(values, "themes.xml"), "themes.xml", data); err != nil {
		return err
	}

	// The java sources live in a directory tree derived from the namespace.
	java := filepath.Join(main, "java", strings.ReplaceAll(viewAndroid.Namespace, ".", "/"))
	if err := EnsureDir(java); err != nil {
		return err
	}
	return writeRendered(filepath.Join(java, "MainActivity.java"), "MainActivity.java", data)
}
