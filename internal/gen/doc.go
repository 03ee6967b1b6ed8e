// Package gen defines the contract between the dispatcher and the platform
// generators: the Generator interface, the immutable run options handed to
// every constructor, the deliberate build-failure error type, and the
// registry mapping target identifiers to constructors.
//
// The registry is populated once at process start and never mutated
// afterward. Duplicate registration is a programmer error and panics.
package gen
