// Package handlers contains the HTTP handlers of the docnav preview API.
//
// This package provides handlers for:
//   - health (monitoring)
//   - navigation: sidebar selection, versions, pager and top bar
//   - assets: icons and highlight themes
//   - site data: blog, roadmap and API types
//   - snapshot reloads
//
// Every handler reads the current site snapshot from a SnapshotSource and
// reports failures through the foundation HTTP error adapter.
package handlers
