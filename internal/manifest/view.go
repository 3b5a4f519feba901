package manifest

import (
	"strings"
	"unicode"
)

// ViewApplication is the fully-resolved projection of the `[application]`
// table: defaults applied, derived symbols computed. It is produced on demand
// and never mutated after construction.
type ViewApplication struct {
	// ID is the application identifier as configured.
	ID string

	// IDSymbol is ID transformed into a symbol safe for use as a
	// programming-language-level name.
	IDSymbol string

	// Name is the human-readable application name, defaulting to ID.
	Name string

	// Path is the application root relative to the manifest, defaulting
	// to ".".
	Path string

	// Package is the application package as configured.
	Package string

	// PackageSymbol is Package transformed into a safe symbol.
	PackageSymbol string
}

// ViewPlatformAndroid is the fully-resolved projection of a
// `[platform.android]` table. All SDK fields carry their final values after
// defaulting and cross-field backfill.
type ViewPlatformAndroid struct {
	// ApplicationID is the Android application ID, falling back to the
	// manifest-level application ID.
	ApplicationID string

	// Namespace is the Android namespace, also used for generated source
	// package paths.
	Namespace string

	MinSDK     uint32
	TargetSDK  uint32
	CompileSDK uint32

	NDKLevel uint32

	VersionCode uint32
	VersionName string

	// SDKPath is the local path to the Android SDK installation.
	SDKPath string
}

// Symbolize transforms a string into a safe symbol: any character that is not
// a Unicode alphanumeric or underscore becomes an underscore, and a leading
// digit is prefixed with an underscore.
func Symbolize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)

	for i, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_' {
			r = '_'
		}
		if i == 0 && unicode.IsNumber(r) {
			b.WriteRune('_')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ViewApplication resolves the application view. Resolution is eager and
// stops at the first missing required key, in field order: `.id`, then
// `.package`.
func (r *Raw) ViewApplication() (*ViewApplication, error) {
	var app RawApplication
	if r.Application != nil {
		app = *r.Application
	}

	if app.ID == nil {
		return nil, &MissingKeyError{Key: ".id"}
	}
	id := *app.ID

	name := id
	if app.Name != nil {
		name = *app.Name
	}

	path := "."
	if app.Path != nil {
		path = *app.Path
	}

	if app.Package == nil {
		return nil, &MissingKeyError{Key: ".package"}
	}
	pkg := *app.Package

	return &ViewApplication{
		ID:            id,
		IDSymbol:      Symbolize(id),
		Name:          name,
		Path:          path,
		Package:       pkg,
		PackageSymbol: Symbolize(pkg),
	}, nil
}

// resolveSDKTriple backfills the (min, target, compile) SDK version triple
// from whichever of the three are configured. Each field backfills the others
// in the direction min <= target <= compile, so partial input always yields
// an ordered triple. With none configured, `.min-sdk` is reported missing.
func resolveSDKTriple(min, target, compile *uint32) (uint32, uint32, uint32, error) {
	switch {
	case min == nil && target == nil && compile == nil:
		return 0, 0, 0, &MissingKeyError{Key: ".min-sdk"}
	case min != nil && target == nil && compile == nil:
		return *min, *min, *min, nil
	case min == nil && target != nil && compile == nil:
		return *target, *target, *target, nil
	case min == nil && target == nil && compile != nil:
		return *compile, *compile, *compile, nil
	case min != nil && target != nil && compile == nil:
		return *min, *target, *target, nil
	case min != nil && target == nil && compile != nil:
		return *min, *compile, *compile, nil
	case min == nil && target != nil && compile != nil:
		return *target, *target, *compile, nil
	default:
		return *min, *target, *compile, nil
	}
}

// View resolves the Android platform view against the owning manifest.
// Resolution is eager and stops at the first missing required key, in field
// order: `.namespace`, `.application-id`, the SDK triple, `.ndk-level`,
// version defaults, `.sdk-path`.
func (a *RawPlatformAndroid) View(raw *Raw) (*ViewPlatformAndroid, error) {
	if a.Namespace == nil {
		return nil, &MissingKeyError{Key: ".namespace"}
	}
	namespace := *a.Namespace

	applicationID := ""
	switch {
	case a.ApplicationID != nil:
		applicationID = *a.ApplicationID
	case raw.Application != nil && raw.Application.ID != nil:
		applicationID = *raw.Application.ID
	default:
		return nil, &MissingKeyError{Key: ".application-id"}
	}

	minSDK, targetSDK, compileSDK, err := resolveSDKTriple(a.MinSDK, a.TargetSDK, a.CompileSDK)
	if err != nil {
		return nil, err
	}

	if a.NDKLevel == nil {
		return nil, &MissingKeyError{Key: ".ndk-level"}
	}
	ndkLevel := *a.NDKLevel

	versionCode := uint32(1)
	if a.VersionCode != nil {
		versionCode = *a.VersionCode
	}

	versionName := "0.1.0"
	if a.VersionName != nil {
		versionName = *a.VersionName
	}

	if a.SDKPath == nil {
		return nil, &MissingKeyError{Key: ".sdk-path"}
	}
	sdkPath := *a.SDKPath

	return &ViewPlatformAndroid{
		ApplicationID: applicationID,
		Namespace:     namespace,
		MinSDK:        minSDK,
		TargetSDK:     targetSDK,
		CompileSDK:    compileSDK,
		NDKLevel:      ndkLevel,
		VersionCode:   versionCode,
		VersionName:   versionName,
		SDKPath:       sdkPath,
	}, nil
}
