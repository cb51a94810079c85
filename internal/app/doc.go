// Package app provides the orchestration layer for the trolley application.
//
// # Overview
//
// This package wires together configuration, preferences, the API client,
// the cache, and the UI. Run is the single entry point used by cmd/trolley:
// it loads config and prefs, builds the shop client and the state
// controller, and hands everything to ui.Run, blocking until the UI exits
// or the context is cancelled.
//
// # Composition order
//
// Configuration is loaded first because the API base address decides how the
// client is built. Preferences load next and never fail; a broken prefs file
// just means the default theme. The store starts empty and the UI issues the
// initial load itself, so Run does no network I/O of its own.
package app
