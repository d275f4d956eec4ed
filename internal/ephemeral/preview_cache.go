package ephemeral

import (
	"time"

	gocache "github.com/pmylund/go-cache"
)

// PreviewCache holds decrypted plaintext for UI previews, keyed by message
// id. Entries expire on their own after the configured TTL, and the
// policy's destruction callback scrubs them early, so destroyed ephemeral
// messages leave no cached plaintext behind.
type PreviewCache struct {
	c   *gocache.Cache
	ttl time.Duration
}

// NewPreviewCache constructs a cache whose entries live at most ttl.
func NewPreviewCache(ttl time.Duration) *PreviewCache {
	return &PreviewCache{
		c:   gocache.New(ttl, ttl),
		ttl: ttl,
	}
}

// Put stores plaintext for the message. The cache keeps its own copy so the
// caller may zeroize its buffer afterwards.
func (p *PreviewCache) Put(messageID string, plaintext []byte) {
	cp := append([]byte(nil), plaintext...)
	p.c.Set(messageID, cp, p.ttl)
}

// Get returns the cached plaintext, or false when it expired or was scrubbed.
func (p *PreviewCache) Get(messageID string) ([]byte, bool) {
	v, ok := p.c.Get(messageID)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Scrub zeroizes and removes the entry for the message. A no-op for ids not
// in the cache.
func (p *PreviewCache) Scrub(messageID string) {
	if v, ok := p.c.Get(messageID); ok {
		if b, isBytes := v.([]byte); isBytes {
			for i := range b {
				b[i] = 0
			}
		}
	}
	p.c.Delete(messageID)
}

// ScrubAll wipes every entry. Used on logout.
func (p *PreviewCache) ScrubAll() {
	for id, item := range p.c.Items() {
		if b, isBytes := item.Object.([]byte); isBytes {
			for i := range b {
				b[i] = 0
			}
		}
		p.c.Delete(id)
	}
}
