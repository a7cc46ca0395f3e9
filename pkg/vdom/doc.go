// Package vdom defines the virtual node tree that Calyx components render
// into, along with the element builders, tag classification tables, and
// hydration-ID utilities shared by the HTML renderer and the runtime.
package vdom
