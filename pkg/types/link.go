// Link entity is a single navigation shortcut shown in the quick links bar.
package types

// StorageKey is the key under which user links are persisted.
const StorageKey = "customQuickLinks"

// Link represents a navigation shortcut.
type Link struct {
	// ID is a short stable identifier, unique within a list by convention.
	ID string `json:"id"`

	// Title is the display label.
	Title string `json:"title"`

	// URL is an absolute URL or a root-relative path. It is not validated.
	URL string `json:"url"`

	// Icon is a remote image URL, an inline data URI, or a single emoji.
	Icon string `json:"icon"`

	// IsSystem marks links from the built-in registry.
	IsSystem bool `json:"isSystem,omitempty"`
}
