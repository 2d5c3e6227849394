package exchange

import (
	"fmt"
	"sync"

	"nakula/pkg/core"
)

// Container is a thread-safe registry of codecs keyed by exchange tag.
// It lets consumers that carry a core.Exchange alongside their data pick
// the matching codec without knowing concrete types.
type Container struct {
	mu     sync.RWMutex
	codecs map[core.Exchange]Codec
}

// NewContainer creates and returns a new empty codec container.
func NewContainer() *Container {
	return &Container{
		codecs: make(map[core.Exchange]Codec),
	}
}

// Register adds a codec to the container under its own exchange tag.
// A codec registered for the same exchange earlier is overwritten.
func (c *Container) Register(codec Codec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codecs[codec.Exchange()] = codec
}

// Get retrieves the codec for an exchange.
// Returns an error if no codec is registered for that exchange.
func (c *Container) Get(ex core.Exchange) (Codec, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	codec, exists := c.codecs[ex]
	if !exists {
		return nil, fmt.Errorf("no codec registered for exchange %q", ex)
	}
	return codec, nil
}

// Exchanges returns the tags of all registered codecs.
func (c *Container) Exchanges() []core.Exchange {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tags := make([]core.Exchange, 0, len(c.codecs))
	for ex := range c.codecs {
		tags = append(tags, ex)
	}
	return tags
}

// Unregister removes the codec for an exchange.
func (c *Container) Unregister(ex core.Exchange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.codecs, ex)
}

// Exists checks whether a codec is registered for an exchange.
func (c *Container) Exists(ex core.Exchange) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.codecs[ex]
	return exists
}
