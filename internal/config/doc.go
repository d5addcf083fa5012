// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for relist.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - WatchConfig: File watcher behavior
//   - HistoryConfig: Revision journal settings
//   - UIConfig: Theme and animation settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (RELIST_*)
//   - ~/.relist/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	w, err := watch.New(cfg.RosterPath, cfg.Debounce())
package config
