package tui

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/splitview/ui/tui/widget"
)

const renderCacheSize = 256

// paneKey identifies one rendering of a leaf pane.
type paneKey struct {
	title  string
	text   string
	width  int
	height int
}

// renderCache memoises leaf pane output by content and size.
type renderCache struct {
	entries *lru.Cache[paneKey, string]
	hits    int
	misses  int
}

func newRenderCache(size int) *renderCache {
	entries, _ := lru.New[paneKey, string](size)
	return &renderCache{entries: entries}
}

// render returns the pane rendered at width x height.
func (c *renderCache) render(p *widget.Pane, width, height int) string {
	key := paneKey{title: p.Title, text: p.Text, width: width, height: height}
	if out, ok := c.entries.Get(key); ok {
		c.hits++
		return out
	}
	c.misses++
	p.SetSize(width, height)
	out := p.View()
	c.entries.Add(key, out)
	return out
}
