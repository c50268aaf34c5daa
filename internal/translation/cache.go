package translation

import "sync"

type cacheKey struct {
	text string
	lang string
}

// Cache memoizes translations per (text, language) pair for the lifetime
// of the process. Entries are never evicted.
type Cache struct {
	mu           sync.RWMutex
	translations map[cacheKey]string
}

// NewCache creates an empty translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[cacheKey]string),
	}
}

// Add stores a translation, replacing any previous value
func (c *Cache) Add(text, lang, translation string) {
	c.mu.Lock()
	c.translations[cacheKey{text, lang}] = translation
	c.mu.Unlock()
}

// Get retrieves a translation from the cache
func (c *Cache) Get(text, lang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[cacheKey{text, lang}]
	return translation, ok
}

// Len returns the number of cached pairs
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}

// ForLanguage returns a copy of all translations into lang keyed by source text
func (c *Cache) ForLanguage(lang string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string)
	for k, v := range c.translations {
		if k.lang == lang {
			result[k.text] = v
		}
	}
	return result
}
