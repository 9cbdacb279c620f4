// Package render turns parsed TAML trees into styled element trees.
//
// Output is a fragment of etree tokens: each Element becomes a <span> carrying
// the style class of its tag, each Text becomes character data. A nil Output
// means "nothing" and is dropped by parents; a non-nil empty Output is an
// empty fragment.
//
// Renderer.RenderCached memoizes whole-document renders in a bounded Cache
// keyed by the markup and extra class. Cached fragments are shared between
// callers and must be cloned before they are attached to another element.
package render
