// Package emit writes persistent platform integration to disk. Unlike
// just-in-time integration at build time, an emitted tree can be adjusted to
// specific needs and retains modifications across builds.
//
// Every file write is content-diffed: a file's modification time changes only
// when its content actually changes, so downstream incremental-build caches
// stay warm across no-op runs.
package emit
