// Package app contains the dispatch core. It owns the linear pipeline from
// parsed arguments to a finished (or failed) generator run: load the bundle
// with the command-line overlay applied, resolve the requested target in the
// generator registry, construct exactly one generator instance, and invoke
// its Generate once. Every failure crossing the pipeline boundary is
// classified through the errs taxonomy and reported at critical severity.
//
// The pipeline is strictly linear and single-threaded. Each stage's output
// is the next stage's input and any failure short-circuits the rest.
package app
