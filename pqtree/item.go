package pqtree

// Item encapsulates a payload and its priority.
type Item[T any] struct {
	Payload  T   `json:"payload"`
	Priority int `json:"priority"`
}
