package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RawApplication is the `[application]` table of the manifest. It carries all
// configuration regarding the application itself. Every field is optional at
// the parsing layer; view resolution decides which are required.
type RawApplication struct {
	// ID registers and identifies the application. It must not change over
	// the life of the application. Only alphanumeric characters plus `-`
	// and `_` are allowed; non-ASCII is allowed but might break external
	// tools.
	ID *string `toml:"id"`

	// Name is the human-readable name of the application.
	Name *string `toml:"name"`

	// Path points to the application root relative to the manifest.
	Path *string `toml:"path"`

	// Package is the name of the application package to integrate.
	Package *string `toml:"package"`
}

// RawPlatformAndroid is the `[platform.android]` table. Its options are
// one-to-one mappings of their equivalents in the Android application SDK.
type RawPlatformAndroid struct {
	ApplicationID *string `toml:"application-id"`
	Namespace     *string `toml:"namespace"`

	CompileSDK *uint32 `toml:"compile-sdk"`
	MinSDK     *uint32 `toml:"min-sdk"`
	TargetSDK  *uint32 `toml:"target-sdk"`

	NDKLevel *uint32 `toml:"ndk-level"`

	VersionCode *uint32 `toml:"version-code"`
	VersionName *string `toml:"version-name"`

	SDKPath *string `toml:"sdk-path"`
}

// PlatformConfiguration is the closed set of platform-specific configuration
// variants a `[[platform]]` entry can carry. Adding a new target platform
// means adding a new implementation; call sites switch exhaustively over the
// concrete types.
type PlatformConfiguration interface {
	platformConfiguration()
}

func (*RawPlatformAndroid) platformConfiguration() {}

// RawPlatform is one `[[platform]]` entry, describing a single platform
// integration module.
type RawPlatform struct {
	// ID is the custom identifier of the platform integration. It is the
	// lookup key of the platform table and must be unique (enforced by
	// Validate, not by the parser).
	ID string `toml:"id"`

	// Path points to the platform integration root relative to the
	// manifest.
	Path *string `toml:"path"`

	// AndroidConfig is the Android variant of the platform configuration.
	AndroidConfig *RawPlatformAndroid `toml:"android"`
}

// Configuration returns the platform-specific configuration variant, or nil
// if the entry carries none.
func (p *RawPlatform) Configuration() PlatformConfiguration {
	if p.AndroidConfig != nil {
		return p.AndroidConfig
	}
	return nil
}

// Android returns the embedded Android configuration, or nil if the platform
// configuration is not for Android.
func (p *RawPlatform) Android() *RawPlatformAndroid {
	return p.AndroidConfig
}

// PathOrDefault returns the configured platform path, or its default value
// `./platform/<id>` when absent.
func (p *RawPlatform) PathOrDefault() string {
	if p.Path != nil {
		return *p.Path
	}
	return fmt.Sprintf("./platform/%s", p.ID)
}

// Raw is the manifest content as decoded from TOML. Scalars are either
// present with their declared type or absent; nothing beyond that is
// verified. Semantic correctness is established by Validate.
type Raw struct {
	// Version of the manifest format. Only version 1 is currently
	// supported.
	Version uint32 `toml:"version"`

	// Application is the `[application]` table.
	Application *RawApplication `toml:"application"`

	// Platform is the `[[platform]]` table array, in manifest order.
	Platform []RawPlatform `toml:"platform"`
}

// PlatformByID searches the platform entries for the first entry matching the
// given platform ID. On a validated manifest IDs are unique; on a raw tree
// duplicates may exist and the first match wins.
func (r *Raw) PlatformByID(id string) *RawPlatform {
	for i := range r.Platform {
		if r.Platform[i].ID == id {
			return &r.Platform[i]
		}
	}
	return nil
}

// ParseString decodes a manifest document into its raw representation. Type
// mismatches (e.g. a string where an integer is expected) are parse errors;
// unknown fields are ignored for forward compatibility.
func ParseString(content string) (*Raw, error) {
	var raw Raw
	if err := toml.Unmarshal([]byte(content), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &raw, nil
}

// Parse decodes and validates a manifest document.
func Parse(content string) (*Manifest, error) {
	raw, err := ParseString(content)
	if err != nil {
		return nil, err
	}
	return Validate(raw)
}

// ParsePath reads the file at path and parses it as a manifest. The file is
// read completely into memory and closed before the function returns.
func ParsePath(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	m, err := Parse(string(content))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return m, nil
}
