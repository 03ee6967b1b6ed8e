// Package cli is responsible for parsing command-line arguments, validating
// user input against the declared flag and positional schema, and handling
// process-level concerns like exit codes. It translates CLI flags into the
// application's internal configuration; invalid input never reaches the
// dispatcher.
package cli
