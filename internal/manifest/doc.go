// Package manifest implements the osiris-platform.toml manifest format:
// TOML decoding into a raw tree, semantic validation, and resolution of
// fully-defaulted views that are safe to interpolate into generated
// platform configuration.
package manifest
