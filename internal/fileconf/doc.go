// Package fileconf implements the file-based configuration loader: it
// resolves a filename against a search path and parses HCL or YAML content
// into the config model.
package fileconf
