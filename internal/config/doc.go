// SPDX-License-Identifier: MIT

// Package config loads the grb command configuration.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults (defaultConfig)
//  2. an optional YAML file (explicit path, $GRB_CONFIG, or ./grb.yaml)
//  3. GRB_* environment variables: GRB_LOG_LEVEL sets log.level,
//     GRB_SEARCH_MAX_DEPTH sets search.max_depth, and so on.
//
// The merged result is checked with struct tags by Validate.
package config
