// Package config defines the format-agnostic model of a generation profile,
// along with the Loader interface for reading profiles from files.
//
// A profile presets the values a user would otherwise pass on the command
// line. Every field is optional: an unset field leaves the corresponding
// setting alone. Concrete loaders, such as the HCL one, live in separate
// packages.
package config
