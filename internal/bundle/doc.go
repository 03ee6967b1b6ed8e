// Package bundle loads a .kbdgen project bundle from disk and merges the
// command-line overlay into the raw configuration before any validation
// runs. Failures are classified through the errs taxonomy: malformed YAML is
// a parse error carrying the decoder's location marker, schema and semantic
// violations are user errors, and everything else is treated as a defect.
package bundle
