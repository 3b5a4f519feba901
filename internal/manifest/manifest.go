package manifest

import "unicode"

// Manifest wraps a semantically verified manifest. The content is accessible
// via Raw; unlike a bare Raw tree, every invariant checked by Validate is
// known to hold.
type Manifest struct {
	Raw *Raw
}

// isIdentifier reports whether s is a valid identifier: non-empty, consisting
// only of Unicode alphanumeric characters plus `-` and `_`.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// isQuotable reports whether s contains no quotes, backslashes, or control
// characters. Such strings can be interpolated verbatim into string literals
// of a wide range of configuration languages. Preferably each target language
// would get proper escaping; until then this guarantee keeps the generated
// files intact.
func isQuotable(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) || r == '\\' || r == '\'' || r == '"' {
			return false
		}
	}
	return true
}

// isPath reports whether s is safe for line-oriented property files: no
// control characters, and in particular no newlines.
func isPath(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) || r == '\n' {
			return false
		}
	}
	return true
}

// Validate performs post-parsing verification of a raw manifest and wraps it
// into a Manifest. The first violation found wins: application fields are
// scanned before platform fields, platforms in manifest order.
func Validate(raw *Raw) (*Manifest, error) {
	// Only version 1 is supported. Any other version number is explicitly
	// defined to be incompatible. Unknown fields within version 1 remain
	// valid and are silently ignored by older implementations.
	if raw.Version != 1 {
		return nil, &ValidationError{Key: "version", Reason: "must be 1"}
	}

	if app := raw.Application; app != nil {
		if app.ID != nil && !isIdentifier(*app.ID) {
			return nil, &ValidationError{
				Key:    "application.id",
				Reason: "must be a non-empty identifier (alphanumeric plus '-', '_')",
			}
		}
		if app.Name != nil && !isQuotable(*app.Name) {
			return nil, &ValidationError{
				Key:    "application.name",
				Reason: "must not contain quotes, backslashes, or control characters",
			}
		}
	}

	// Platform IDs are the lookup key of the platform table and must be
	// unique. Rejecting duplicates here keeps PlatformByID unambiguous.
	seen := make(map[string]struct{}, len(raw.Platform))

	for i := range raw.Platform {
		platform := &raw.Platform[i]

		if _, ok := seen[platform.ID]; ok {
			return nil, &ValidationError{
				Key:    "platform.id",
				Reason: "duplicates a previous platform entry",
			}
		}
		seen[platform.ID] = struct{}{}

		android := platform.Android()
		if android == nil {
			continue
		}

		if android.ApplicationID != nil && !isQuotable(*android.ApplicationID) {
			return nil, &ValidationError{
				Key:    "platform.android.application-id",
				Reason: "must not contain quotes, backslashes, or control characters",
			}
		}
		if android.Namespace != nil && !isQuotable(*android.Namespace) {
			return nil, &ValidationError{
				Key:    "platform.android.namespace",
				Reason: "must not contain quotes, backslashes, or control characters",
			}
		}
		if android.VersionName != nil && !isQuotable(*android.VersionName) {
			return nil, &ValidationError{
				Key:    "platform.android.version-name",
				Reason: "must not contain quotes, backslashes, or control characters",
			}
		}
		if android.SDKPath != nil && !isPath(*android.SDKPath) {
			return nil, &ValidationError{
				Key:    "platform.android.sdk-path",
				Reason: "must not contain newlines or control characters",
			}
		}
	}

	return &Manifest{Raw: raw}, nil
}
