package sdlbar

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 16

// textureCache keeps icon textures keyed by view, evicting the least recently used.
type textureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
	release  func(*sdl.Texture)
}

func destroyTexture(texture *sdl.Texture) {
	if texture != nil {
		texture.Destroy()
	}
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		release:  destroyTexture,
	}
}

func (c *textureCache) get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return texture
	}
	return nil
}

func (c *textureCache) set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			c.release(old)
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		c.release(texture)
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, texture := range c.textures {
		c.release(texture)
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
