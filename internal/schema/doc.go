// Package schema holds the static registry of configurable classes: an
// explicit, startup-built description of every attribute that may be set via
// config file or command line, with its type, help text, and default.
package schema
