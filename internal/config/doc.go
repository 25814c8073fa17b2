// Package config defines the loader-agnostic configuration model: a nested,
// mergeable mapping from class names to typed attribute values, staged by
// loaders and applied to registered classes by the application.
//
// It holds no parsing logic; command-line and file loaders translate their
// inputs into this model.
package config
