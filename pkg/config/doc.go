// Package config loads packlist settings. Values are layered from the
// embedded defaults, the user's config.toml and PACKLIST_* environment
// variables, in that order.
package config
