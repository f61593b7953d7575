// Package nav models the documentation sidebar: ordered, versioned trees of
// labeled links whose paths are built by concatenating section bases.
//
// Authors write a VersionedNav (usually in the site YAML). Resolve turns it
// into a ResolvedNav with absolute paths and rejects dead entries and
// colliding paths. SelectVersion picks the tree that applies to a page by
// longest version-key prefix.
//
// Everything here is pure: no I/O, no shared state. A ResolvedNav is never
// mutated after Resolve returns it and may be shared between goroutines.
package nav
