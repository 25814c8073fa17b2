// Package app implements the configurable application base: it assembles one
// merged configuration from declarative class schemas, config files, and
// command-line arguments, applies the result through typed validation with
// change notification, and renders help text.
package app
