// Package render serializes virtual node trees to HTML on the server.
//
// Interactive elements are stamped with hydration IDs (data-hid) during
// rendering and their handlers collected into a registry, so that a later
// hydrating mount can attach behavior to the pre-rendered markup without
// rebuilding it.
package render
