// Package dom implements the in-memory presentation tree Calyx applications
// mount into: documents, elements (with namespaces and shadow roots), text
// and comment nodes, a minimal selector engine, and HTML serialization.
//
// The package knows nothing about virtual nodes or rendering; it is the
// substrate the runtime's node operations act on.
package dom
