package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnerJoin(t *testing.T) {
	items := New("order_id", "price")
	items.MustAppendRow("o1", 100.0)
	items.MustAppendRow("o1", 25.0)
	items.MustAppendRow("o2", 50.0)
	items.MustAppendRow("o9", 10.0)

	orders := New("order_id", "status")
	orders.MustAppendRow("o1", "delivered")
	orders.MustAppendRow("o2", "shipped")

	joined, err := items.InnerJoin(orders, "order_id", "status")
	require.NoError(t, err)

	assert.Equal(t, []string{"order_id", "price", "status"}, joined.Columns())
	require.Equal(t, 3, joined.NumRows(), "unmatched o9 must be dropped")

	status, ok := joined.Row(0).String("status")
	require.True(t, ok)
	assert.Equal(t, "delivered", status)
}

func TestInnerJoinFansOutOnDuplicateKeys(t *testing.T) {
	sales := New("order_id", "price")
	sales.MustAppendRow("o1", 100.0)

	reviews := New("order_id", "review_score")
	reviews.MustAppendRow("o1", 5.0)
	reviews.MustAppendRow("o1", 1.0)

	joined, err := sales.InnerJoin(reviews, "order_id", "review_score")
	require.NoError(t, err)
	assert.Equal(t, 2, joined.NumRows(), "one output row per matching pair")
}

func TestLeftJoinKeepsUnmatchedRows(t *testing.T) {
	sales := New("order_id", "price")
	sales.MustAppendRow("o1", 100.0)
	sales.MustAppendRow("o2", 50.0)

	reviews := New("order_id", "review_score")
	reviews.MustAppendRow("o1", 5.0)

	joined, err := sales.LeftJoin(reviews, "order_id", "review_score")
	require.NoError(t, err)
	require.Equal(t, 2, joined.NumRows())

	score, ok := joined.Row(0).Float("review_score")
	require.True(t, ok)
	assert.Equal(t, 5.0, score)
	assert.True(t, joined.Row(1).IsNull("review_score"), "unmatched row keeps null, not dropped")
}

func TestJoinNullKeysNeverMatch(t *testing.T) {
	left := New("k", "v")
	left.MustAppendRow(nil, 1.0)

	right := New("k", "w")
	right.MustAppendRow(nil, 2.0)

	inner, err := left.InnerJoin(right, "k", "w")
	require.NoError(t, err)
	assert.Equal(t, 0, inner.NumRows())

	outer, err := left.LeftJoin(right, "k", "w")
	require.NoError(t, err)
	require.Equal(t, 1, outer.NumRows())
	assert.True(t, outer.Row(0).IsNull("w"))
}

func TestJoinErrors(t *testing.T) {
	left := New("a")
	right := New("b")

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "missing left key",
			run: func() error {
				_, err := left.InnerJoin(right, "b")
				return err
			},
		},
		{
			name: "missing right key",
			run: func() error {
				_, err := left.InnerJoin(right, "a")
				return err
			},
		},
		{
			name: "missing right column",
			run: func() error {
				r := New("a", "c")
				_, err := left.LeftJoin(r, "a", "missing")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.run())
		})
	}
}
