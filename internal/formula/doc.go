// Package formula models the packaging recipe of the application and runs it.
//
// A Formula is read from a YAML manifest (see packaging/sportsterminal.yml).
// Installing a formula is a single synchronous sequence:
//
//  1. Fetch    download the pinned source archive, hashing it while it is
//     written; the archive is kept only when its SHA-256 equals the manifest
//  2. Extract  unpack tar.gz, tar.xz or zip, dropping Strip leading path
//     components
//  3. Build    go build -trimpath -ldflags "-s -w" into <prefix>/bin
//  4. Smoke    run the installed binary once and check its exit code and
//     output
//
// # Checksums
//
// An empty sha256 is allowed in the manifest but flagged: Fetch and Install
// refuse to run with ErrChecksumUnset until UpdateChecksum has filled it in.
// A digest that does not match fails with ErrChecksumMismatch and nothing is
// extracted or installed.
//
// Render writes the equivalent Homebrew Ruby formula.
package formula
