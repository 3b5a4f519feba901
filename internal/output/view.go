package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/osirisproject/cli/internal/manifest"
)

// ViewOptions controls resolved-view output formatting.
type ViewOptions struct {
	// Format specifies output format: "yaml" or "json"
	Format Format
	// Writer is the output destination
	Writer io.Writer
}

// ViewDocument is the serializable projection of a fully resolved manifest.
// Every default and precedence rule has already been applied, so the
// document shows exactly the values the emitter and the build tool consume.
type ViewDocument struct {
	Application ApplicationView `yaml:"application" json:"application"`
	Platform    []PlatformView  `yaml:"platform" json:"platform"`
}

// ApplicationView mirrors manifest.ViewApplication for serialization.
type ApplicationView struct {
	ID            string `yaml:"id" json:"id"`
	IDSymbol      string `yaml:"id-symbol" json:"id-symbol"`
	Name          string `yaml:"name" json:"name"`
	Path          string `yaml:"path" json:"path"`
	Package       string `yaml:"package" json:"package"`
	PackageSymbol string `yaml:"package-symbol" json:"package-symbol"`
}

// PlatformView mirrors one resolved platform table.
type PlatformView struct {
	ID      string       `yaml:"id" json:"id"`
	Path    string       `yaml:"path" json:"path"`
	Android *AndroidView `yaml:"android,omitempty" json:"android,omitempty"`
}

// AndroidView mirrors manifest.ViewPlatformAndroid for serialization.
type AndroidView struct {
	ApplicationID string `yaml:"application-id" json:"application-id"`
	Namespace     string `yaml:"namespace" json:"namespace"`
	MinSDK        uint32 `yaml:"min-sdk" json:"min-sdk"`
	TargetSDK     uint32 `yaml:"target-sdk" json:"target-sdk"`
	CompileSDK    uint32 `yaml:"compile-sdk" json:"compile-sdk"`
	NDKLevel      uint32 `yaml:"ndk-level" json:"ndk-level"`
	VersionCode   uint32 `yaml:"version-code" json:"version-code"`
	VersionName   string `yaml:"version-name" json:"version-name"`
	SDKPath       string `yaml:"sdk-path" json:"sdk-path"`
}

// BuildViewDocument resolves all views of the manifest into a single
// serializable document. Resolution errors of any section propagate.
func BuildViewDocument(m *manifest.Manifest) (*ViewDocument, error) {
	application, err := m.Raw.ViewApplication()
	if err != nil {
		return nil, err
	}

	doc := &ViewDocument{
		Application: ApplicationView{
			ID:            application.ID,
			IDSymbol:      application.IDSymbol,
			Name:          application.Name,
			Path:          application.Path,
			Package:       application.Package,
			PackageSymbol: application.PackageSymbol,
		},
	}

	for i := range m.Raw.Platform {
		platform := &m.Raw.Platform[i]
		view := PlatformView{
			ID:   platform.ID,
			Path: platform.PathOrDefault(),
		}

		if android := platform.Android(); android != nil {
			resolved, err := android.View(m.Raw)
			if err != nil {
				return nil, err
			}
			view.Android = &AndroidView{
				ApplicationID: resolved.ApplicationID,
				Namespace:     resolved.Namespace,
				MinSDK:        resolved.MinSDK,
				TargetSDK:     resolved.TargetSDK,
				CompileSDK:    resolved.CompileSDK,
				NDKLevel:      resolved.NDKLevel,
				VersionCode:   resolved.VersionCode,
				VersionName:   resolved.VersionName,
				SDKPath:       resolved.SDKPath,
			}
		}

		doc.Platform = append(doc.Platform, view)
	}

	return doc, nil
}

// MarshalViewsYAML renders the resolved views of the manifest as YAML.
func MarshalViewsYAML(m *manifest.Manifest) ([]byte, error) {
	doc, err := BuildViewDocument(m)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// WriteViews writes the resolved views of the manifest in the given format.
func WriteViews(m *manifest.Manifest, opts ViewOptions) error {
	doc, err := BuildViewDocument(m)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(opts.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case FormatYAML:
		encoder := yaml.NewEncoder(opts.Writer)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(doc)
	default:
		return fmt.Errorf("format %s not supported for view output", opts.Format)
	}
}
