// Package errs defines the error taxonomy shared by the loader and the
// dispatcher. Every failure that crosses the dispatch boundary is tagged
// with one of three kinds: a parse failure in the bundle's serialized form,
// a user-caused condition, or an internal defect. The kind decides how the
// failure is reported and whether the user is asked to file a bug.
package errs
