// Package overrides turns the flat -K key=value strings from the command
// line into a nested overlay tree. The overlay is applied on top of the raw
// bundle configuration by the loader before validation runs, so an override
// can repair (or break) an otherwise invalid bundle.
//
// Values stay strings here. Any primitive-type inference belongs to the
// schema that consumes the merged configuration, not to this layer.
package overrides
