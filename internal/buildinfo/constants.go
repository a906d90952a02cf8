// Package buildinfo holds process-wide version and mode flags, the same way
// the teacher keeps them as plain vars in internal/config rather than behind
// a configuration struct.
package buildinfo

// Version is the current koto core version.
var Version = "0.1.0"

// RunImportTests mirrors the runtime's "run import tests" flag: when true,
// a module's @tests block is executed during import.
var RunImportTests = false

// SourceFileExt is the canonical extension for a Koto script.
const SourceFileExt = ".koto"
