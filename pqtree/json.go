package pqtree

import jsoniter "github.com/json-iterator/go"

// MarshalJSON encodes the entries of the queue, in priority order, as an array of items.
func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	var (
		items = make([]Item[T], 0, q.size)
		it    = q.Begin()
	)

	for {
		item, ok := it.Next()
		if !ok {
			break
		}

		items = append(items, item)
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(items)
}
