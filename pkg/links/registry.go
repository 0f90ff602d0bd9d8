// Package links holds the built-in quick links and the registry that merges
// them with user links persisted in a key-value Store.
package links

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

// Registry reads and writes user links through a Store and merges them with
// the system list. A nil Store means no persistence surface is available:
// reads return nothing and writes are dropped.
type Registry struct {
	store  types.Store
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for swallowed load failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a Registry backed by store, which may be nil.
func NewRegistry(store types.Store, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadUserLinks reads the user links from the store. Absent keys and a
// missing store yield an empty, successful result. A stored value that does
// not decode as a list of links yields an empty result whose Err wraps
// types.ErrCorruptUserLinks; the stored value is left untouched.
func (r *Registry) LoadUserLinks() types.LoadResult {
	empty := types.LoadResult{Links: []types.Link{}}
	if r.store == nil {
		return empty
	}

	saved, ok, err := r.store.Get(types.StorageKey)
	if err != nil {
		empty.Err = fmt.Errorf("read %s: %w", types.StorageKey, err)
		return empty
	}
	if !ok || saved == "" {
		return empty
	}

	var links []types.Link
	if err := json.Unmarshal([]byte(saved), &links); err != nil {
		empty.Err = fmt.Errorf("%w: %w", types.ErrCorruptUserLinks, err)
		return empty
	}
	if links == nil {
		// JSON null.
		return empty
	}
	return types.LoadResult{Links: links}
}

// UserLinks returns the user links, logging and discarding any load error.
func (r *Registry) UserLinks() []types.Link {
	res := r.LoadUserLinks()
	if !res.OK() {
		r.logger.Error("failed to load custom links", "key", types.StorageKey, "error", res.Err)
	}
	return res.Links
}

// SaveUserLinks replaces the stored user links with links. It is a no-op
// when the registry has no store.
func (r *Registry) SaveUserLinks(links []types.Link) error {
	if r.store == nil {
		return nil
	}
	if links == nil {
		links = []types.Link{}
	}

	data, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("encode user links: %w", err)
	}
	if err := r.store.Set(types.StorageKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", types.StorageKey, err)
	}
	return nil
}

// AllLinks returns the system links followed by the user links.
// No deduplication, sorting, or filtering is applied.
func (r *Registry) AllLinks() []types.Link {
	user := r.UserLinks()
	all := make([]types.Link, 0, len(systemLinks)+len(user))
	all = append(all, systemLinks...)
	return append(all, user...)
}

// AddUserLink appends link to the stored user links. The link is stored as
// a user link regardless of its IsSystem flag. A corrupt stored value
// is reported rather than overwritten.
func (r *Registry) AddUserLink(link types.Link) error {
	res := r.LoadUserLinks()
	if !res.OK() {
		return res.Err
	}
	link.IsSystem = false
	return r.SaveUserLinks(append(res.Links, link))
}

// RemoveUserLink deletes every user link with the given id. It returns
// types.ErrSystemLink for built-in ids and types.ErrLinkNotFound when no
// user link matches.
func (r *Registry) RemoveUserLink(id string) error {
	if IsSystemID(id) {
		return fmt.Errorf("%q: %w", id, types.ErrSystemLink)
	}
	res := r.LoadUserLinks()
	if !res.OK() {
		return res.Err
	}

	kept := res.Links[:0]
	for _, l := range res.Links {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(res.Links) {
		return fmt.Errorf("%q: %w", id, types.ErrLinkNotFound)
	}
	return r.SaveUserLinks(kept)
}
