// Package params holds the wire primitives shared by every resource: unix
// timestamps, metadata maps, and the generic list envelope the API wraps
// collections in.
package params

// Timestamp is a point in time expressed as unix seconds, the only time
// representation the API uses.
type Timestamp = int64

// Metadata is the free-form string map attachable to most resources.
type Metadata = map[string]string

// List is the envelope the API returns collections in. Fetching further
// pages is the caller's business; this type only carries one response.
type List[T any] struct {
	Object     string `json:"object"`
	Data       []T    `json:"data"`
	HasMore    bool   `json:"has_more"`
	TotalCount uint64 `json:"total_count,omitempty"`
	URL        string `json:"url"`
}
