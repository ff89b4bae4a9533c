package pqtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-pqtree/testutil"
)

func TestQueueMarshalJSON(t *testing.T) {
	queue := NewQueue[string]()
	queue.Enqueue("b", 2)
	queue.Enqueue("a", 1)
	queue.Enqueue("c", 2)

	require.JSONEq(t,
		`[{"payload":"a","priority":1},{"payload":"b","priority":2},{"payload":"c","priority":2}]`,
		string(testutil.MarshalJSON(t, queue)),
	)

	var decoded []Item[string]

	testutil.UnmarshalJSON(t, testutil.MarshalJSON(t, queue), &decoded)
	require.Equal(t, collect(queue.Begin()), decoded)
	require.Equal(t, 3, queue.Len())
}

func TestQueueMarshalJSONEmpty(t *testing.T) {
	require.Equal(t, "[]", string(testutil.MarshalJSON(t, NewQueue[int]())))
}
