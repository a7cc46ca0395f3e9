// Package runtime implements the Calyx rendering bootstrap: the lazily
// constructed renderer registry, mount-target and namespace resolution, and
// the application mount lifecycle that attaches a component tree to a
// presentation-tree container — either by fresh construction or by hydrating
// markup a server already produced.
//
// The package is single-goroutine by contract: mounts are synchronous and
// the renderer slot is written once per variant. Two concurrent mounts into
// the same target are not coordinated here and will race at the
// content-clearing step; that is the caller's responsibility.
package runtime
