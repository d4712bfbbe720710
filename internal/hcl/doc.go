// Package hcl implements the config.Loader interface for site data written
// in HCL. It discovers .hcl files, decodes food and recipe blocks, and
// evaluates numeric expressions into the format-agnostic config.Site model.
package hcl
