// Package file provides the TOML-backed ConfigStore adapter.
// It persists the refresh token obtained by `auth login` and user
// defaults (location, max results) to ~/.seokw/config.toml.
package file
