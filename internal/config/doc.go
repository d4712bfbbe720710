// Package config defines the format-agnostic data model for the site's
// source data, along with the Loader interface for reading it from various
// sources.
//
// The `config.Site` is the single source of truth for the `dag` and
// `builder` packages. Concrete loader implementations, such as for HCL, are
// provided in separate packages.
package config
