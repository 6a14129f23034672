// Package types holds the public types shared across fuzzdex's internal
// packages and its root API: Options, KeySpec, the typed Error/ErrKind
// enum, and the Match/FuseResult result shapes.
//
// None of the search logic lives here — this package exists so that
// internal/keystore, internal/recordindex, internal/bitap, and friends can
// all depend on the same option and error vocabulary without importing the
// root package (which in turn depends on them), avoiding an import cycle.
package types
