// Package cli implements the key-value command-line configuration loader and
// the exit-code-bearing error type used to signal help and version requests.
package cli
