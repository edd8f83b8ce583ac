package flight

import "fmt"

// Sprite is a decoded image handle. The engine only needs its natural size;
// the Surface implementation knows the concrete type.
type Sprite interface {
	Size() Size
}

// Surface is the draw sink for one frame.
type Surface interface {
	DrawSprite(s Sprite, dst Point, size Size, alpha float64)
}

// RenderContext resolves sprite identifiers into decoded sprites.
// It is handed to every calculator Init, the way a platform context would be.
type RenderContext interface {
	LoadSprite(id string) (Sprite, error)
}

// SpriteCache shares decoded sprites between calculators, keyed by sprite id.
//
// The cache is populated only from Init (spawn ingestion) and read from Draw, both on
// the frame goroutine, so it carries no lock.
type SpriteCache struct {
	sprites map[string]Sprite
	loads   int
}

// NewSpriteCache creates an empty cache.
func NewSpriteCache() *SpriteCache {
	return &SpriteCache{sprites: make(map[string]Sprite)}
}

// Resolve returns the cached sprite for id, loading it through ctx on first use.
func (c *SpriteCache) Resolve(id string, ctx RenderContext) (Sprite, error) {
	if s, ok := c.sprites[id]; ok {
		return s, nil
	}
	if ctx == nil {
		return nil, fmt.Errorf("no render context to load sprite %q", id)
	}
	s, err := ctx.LoadSprite(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %q: %w", id, err)
	}
	c.loads++
	c.sprites[id] = s
	return s, nil
}

// Len returns the number of cached sprites.
func (c *SpriteCache) Len() int {
	return len(c.sprites)
}

// Loads returns how many times the cache went to the render context.
func (c *SpriteCache) Loads() int {
	return c.loads
}
