package entity

// Collection names a read-only content collection in the document store.
type Collection string

const (
	Articles   Collection = "articles"
	Activities Collection = "activities"
	Forum      Collection = "forum"
)

// ContentItem is an opaque document. Every stored field is kept as-is and
// the store identifier is exposed under the "id" key.
type ContentItem map[string]any

// ID returns the store identifier of the item.
func (c ContentItem) ID() string {
	if v, ok := c["id"].(string); ok {
		return v
	}
	return ""
}
