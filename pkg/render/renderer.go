package render

import (
	"strconv"

	"github.com/arthur-debert/taml-html/pkg/ast"
	"github.com/arthur-debert/taml-html/pkg/logging"
	"github.com/arthur-debert/taml-html/pkg/style"
	"github.com/beevik/etree"
)

const (
	// ElementTag is the element every markup tag renders to
	ElementTag = "span"
	// TagAttr records the source tag on each rendered element
	TagAttr = "data-taml-tag"
)

// Renderer converts trees to fragments, memoizing document renders
type Renderer struct {
	cache *Cache
}

// New creates a renderer backed by cache. A nil cache gets a fresh one with
// DefaultCapacity.
func New(cache *Cache) *Renderer {
	if cache == nil {
		cache = NewCache(DefaultCapacity)
	}
	return &Renderer{cache: cache}
}

// Cache exposes the backing cache
func (r *Renderer) Cache() *Cache {
	return r.cache
}

// RenderNode renders a single node. key is the node's positional identity
// within its parent and only appears in diagnostics. extraClass is added to
// top-level elements of a document, not to nested ones.
func (r *Renderer) RenderNode(node ast.Node, key, extraClass string) Output {
	switch n := node.(type) {
	case *ast.Text:
		if n.Content == "" {
			return nil
		}
		return Text(n.Content)

	case *ast.Element:
		el := etree.NewElement(ElementTag)
		el.CreateAttr("class", style.Combine(style.ClassFor(n.TagName), extraClass))
		el.CreateAttr(TagAttr, string(n.TagName))
		for _, tok := range r.renderChildren(n.Children, "") {
			el.AddChild(tok)
		}
		return Output{el}

	case *ast.Document:
		return r.renderChildren(n.Children, extraClass)

	default:
		logger := logging.GetLogger("render")
		ev := logger.Warn().Str("key", key)
		if node != nil {
			ev = ev.Str("nodeType", string(node.Type()))
		} else {
			ev = ev.Str("nodeType", "<nil>")
		}
		ev.Msg("Unknown node type, rendering nothing")
		return nil
	}
}

// renderChildren flattens the rendered children, skipping empty results
func (r *Renderer) renderChildren(children []ast.Node, extraClass string) Output {
	out := make(Output, 0, len(children))
	for i, child := range children {
		rendered := r.RenderNode(child, strconv.Itoa(i), extraClass)
		if rendered.IsNothing() {
			continue
		}
		out = append(out, rendered...)
	}
	return out
}

// CompositeKey builds the cache key for a markup source and extra class
func CompositeKey(cacheKey, extraClass string) string {
	if extraClass == "" {
		return cacheKey
	}
	return cacheKey + ":" + extraClass
}

// RenderCached renders root, reusing a previous result for the same
// cacheKey and extraClass. Hits return the cached tokens themselves: attach
// them through Output.AppendTo or a Clone, since adding them to an element
// directly reparents the cached tree.
func (r *Renderer) RenderCached(root ast.Node, cacheKey, extraClass string) Output {
	key := CompositeKey(cacheKey, extraClass)
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	out := r.RenderNode(root, "", extraClass)
	r.cache.Put(key, out)
	return out
}

// ClearCache empties the render cache
func (r *Renderer) ClearCache() {
	r.cache.Clear()
}

// CacheStats reports render cache usage
func (r *Renderer) CacheStats() CacheStats {
	return r.cache.Stats()
}
