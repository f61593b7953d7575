// Package content loads the structured site data that sits next to the
// Markdown tree: blog posts and authors, the roadmap, homepage spotlights
// and the plugin ecosystem list.
//
// Every file is optional. A missing file yields an empty collection so a
// fresh site can be built before any data exists.
package content
