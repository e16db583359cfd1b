// Package playback holds the shared playback state the now playing panel
// renders from: the current snapshot, the liked-track set and decoded cover
// images keyed by URL.
package playback

import (
	"image"
	"sync"
)

// Store is the shared playback state. Writers take the write lock; the
// render path reads through Read, which holds the read lock for the
// duration of the callback.
type Store struct {
	mu sync.RWMutex

	snapshot *Snapshot
	liked    map[string]struct{}
	images   map[string]image.Image

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		liked:  make(map[string]struct{}),
		images: make(map[string]image.Image),
	}
}

// View is a read-only view over the store, valid only inside Read.
type View struct {
	s *Store
}

// Playback returns the current snapshot, or nil when nothing is playing.
func (v View) Playback() *Snapshot {
	return v.s.snapshot
}

// IsLiked reports whether the track with the given URI is liked.
func (v View) IsLiked(uri string) bool {
	if uri == "" {
		return false
	}
	_, ok := v.s.liked[uri]
	return ok
}

// ItemLiked reports whether item is a liked track. Episodes are never liked.
func (v View) ItemLiked(item Item) bool {
	t, ok := item.(*Track)
	if !ok {
		return false
	}
	return v.IsLiked(t.URI)
}

// Image returns the decoded image stored for url.
func (v View) Image(url string) (image.Image, bool) {
	img, ok := v.s.images[url]
	return img, ok
}

// Read calls fn with the read lock held.
func (s *Store) Read(fn func(View)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(View{s: s})
}

// Snapshot returns a copy of the current snapshot, or nil.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil
	}
	return s.snapshot.Clone()
}

// SetPlayback replaces the current snapshot. A nil snapshot means nothing
// is playing.
func (s *Store) SetPlayback(snap *Snapshot) {
	s.mu.Lock()
	prev := itemURI(s.snapshot)
	if snap != nil {
		snap = snap.Clone()
	}
	s.snapshot = snap
	cur := itemURI(snap)
	s.mu.Unlock()

	s.broadcast(Change{Kind: ChangePlayback, URI: cur, ItemChanged: prev != cur})
}

// Update applies fn to the current snapshot under the write lock. It is a
// no-op when nothing is playing.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	if s.snapshot == nil {
		s.mu.Unlock()
		return
	}
	prev := itemURI(s.snapshot)
	fn(s.snapshot)
	cur := itemURI(s.snapshot)
	s.mu.Unlock()

	s.broadcast(Change{Kind: ChangePlayback, URI: cur, ItemChanged: prev != cur})
}

// SetLiked marks or unmarks the track with the given URI as liked.
func (s *Store) SetLiked(uri string, liked bool) {
	if uri == "" {
		return
	}
	s.mu.Lock()
	if liked {
		s.liked[uri] = struct{}{}
	} else {
		delete(s.liked, uri)
	}
	s.mu.Unlock()

	s.broadcast(Change{Kind: ChangeLiked, URI: uri})
}

// PutImage stores the decoded image for url.
func (s *Store) PutImage(url string, img image.Image) {
	if url == "" || img == nil {
		return
	}
	s.mu.Lock()
	s.images[url] = img
	s.mu.Unlock()

	s.broadcast(Change{Kind: ChangeImage, URI: url})
}

// Subscribe creates a new change subscription.
func (s *Store) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close signals every subscriber to stop.
func (s *Store) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

func (s *Store) broadcast(c Change) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.send(c)
	}
}

func itemURI(snap *Snapshot) string {
	if snap == nil || snap.Item == nil {
		return ""
	}
	return snap.Item.ItemURI()
}
