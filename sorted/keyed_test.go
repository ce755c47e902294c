package sorted

import (
	"testing"

	"github.com/amp-labs/amp-sorted/errors"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	Args int
}

func recordID(r record) int {
	return r.ID
}

func records() []record {
	return []record{
		{ID: 5, Args: 0},
		{ID: 10, Args: 1},
		{ID: 0, Args: 2},
		{ID: 5, Args: 3},
	}
}

func sortedRecords() []record {
	return []record{
		{ID: 0, Args: 2},
		{ID: 5, Args: 0},
		{ID: 5, Args: 3},
		{ID: 10, Args: 1},
	}
}

func TestNewKeyed(t *testing.T) {
	t.Parallel()

	t.Run("creates empty collection", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID)
		assert.Equal(t, 0, k.Len())
		assert.Empty(t, k.Values())
		assert.Equal(t, KindByKey, k.Order().Kind())
	})

	t.Run("sorts records by key keeping insertion order of ties", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		assert.Equal(t, 4, k.Len())
		assert.Equal(t, sortedRecords(), k.Values())
	})

	t.Run("individual inserts keep insertion order of ties", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID)
		for _, r := range records() {
			k.Insert(r)
		}

		assert.Equal(t, sortedRecords(), k.Values())
	})
}

func TestKeyed_Get(t *testing.T) {
	t.Parallel()

	k := NewKeyed(recordID, records()...)
	expected := sortedRecords()

	for i := range expected {
		assert.Equal(t, expected[i], k.Get(i))
	}

	assert.Equal(t, record{}, k.Get(4))
	assert.Equal(t, 5, k.Key(1).GetOrPanic())
	assert.True(t, k.Key(4).Empty())
}

func TestKeyed_SearchKey(t *testing.T) {
	t.Parallel()

	t.Run("returns -1 when key not found", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		assert.Equal(t, -1, k.SearchKey(2))
		assert.False(t, k.HasKey(2))
	})

	t.Run("returns leftmost index", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		assert.Equal(t, 0, k.SearchKey(0))
		assert.Equal(t, 1, k.SearchKey(5))
		assert.Equal(t, 3, k.SearchKey(10))
		assert.Equal(t, 2, k.CountKey(5))
	})

	t.Run("whole element search compares keys only", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		assert.Equal(t, 1, k.Search(record{ID: 5, Args: 99}))
		assert.True(t, k.Has(record{ID: 10}))
	})
}

func TestKeyed_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes an element", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		expected := sortedRecords()

		k.Remove(0)
		expected = expected[1:]
		assert.Equal(t, expected, k.Values())

		k.Remove(k.Len() - 1)
		expected = expected[:len(expected)-1]
		assert.Equal(t, expected, k.Values())

		k.Remove(1).Remove(0)
		assert.Equal(t, 0, k.Len())
	})

	t.Run("removes multiple elements", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...).RemoveRange(0, 3)
		assert.Equal(t, []record{{ID: 10, Args: 1}}, k.Values())
	})

	t.Run("removes by key", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		assert.Equal(t, []record{{ID: 0, Args: 2}, {ID: 10, Args: 1}}, k.RemoveKey(5).Values())
		assert.Equal(t, 2, k.RemoveKey(7).Len())
	})

	t.Run("removes by value", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		assert.Equal(t, []record{{ID: 0, Args: 2}, {ID: 10, Args: 1}}, k.RemoveValue(record{ID: 5}).Values())
	})
}

func TestKeyed_RangeQueries(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID)
		assert.Empty(t, k.GtKey(0).Values())
		assert.Empty(t, k.GteKey(0).Values())
		assert.Empty(t, k.LtKey(0).Values())
		assert.Empty(t, k.LteKey(0).Values())
	})

	t.Run("gt", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		expected := []record{{ID: 5, Args: 0}, {ID: 5, Args: 3}, {ID: 10, Args: 1}}

		assert.Equal(t, expected, k.GtKey(4).Values())
		assert.Equal(t, expected, k.GtKey(0).Values())
	})

	t.Run("gte", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)

		assert.Equal(t, []record{{ID: 10, Args: 1}}, k.GteKey(10).Values())
		assert.Equal(t, []record{{ID: 5, Args: 0}, {ID: 5, Args: 3}, {ID: 10, Args: 1}}, k.GteKey(5).Values())
		assert.Equal(t, sortedRecords(), k.GteKey(0).Values())
	})

	t.Run("lt", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)

		assert.Equal(t, sortedRecords(), k.LtKey(100).Values())
		assert.Equal(t, []record{{ID: 0, Args: 2}, {ID: 5, Args: 0}, {ID: 5, Args: 3}}, k.LtKey(10).Values())
		assert.Equal(t, []record{{ID: 0, Args: 2}}, k.LtKey(5).Values())
	})

	t.Run("lte", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)

		assert.Equal(t, sortedRecords(), k.LteKey(100).Values())
		assert.Equal(t, sortedRecords(), k.LteKey(10).Values())
		assert.Equal(t, []record{{ID: 0, Args: 2}, {ID: 5, Args: 0}, {ID: 5, Args: 3}}, k.LteKey(5).Values())
		assert.Equal(t, []record{{ID: 0, Args: 2}}, k.LteKey(0).Values())
	})

	t.Run("eq and between", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)

		assert.Equal(t, []record{{ID: 5, Args: 0}, {ID: 5, Args: 3}}, k.EqKey(5).Values())
		assert.Empty(t, k.EqKey(6).Values())
		assert.Equal(t, []record{{ID: 5, Args: 0}, {ID: 5, Args: 3}, {ID: 10, Args: 1}}, k.BetweenKey(1, 10).Values())
	})

	t.Run("results keep key queries and are independent", func(t *testing.T) {
		t.Parallel()

		k := NewKeyed(recordID, records()...)
		gte := k.GteKey(5)

		assert.Equal(t, 0, gte.SearchKey(5))
		gte.RemoveKey(5).Insert(record{ID: 7})

		assert.Equal(t, []record{{ID: 7}, {ID: 10, Args: 1}}, gte.Values())
		assert.Equal(t, sortedRecords(), k.Values())
	})
}

func TestKeyed_Chaining(t *testing.T) {
	t.Parallel()

	k := NewKeyed(recordID).
		Insert(records()...).
		InsertSeq(NewKeyed(recordID, record{ID: 1}).Seq()).
		Clear().
		Insert(record{ID: 3})

	clone := k.Clone().Insert(record{ID: 4})

	assert.Equal(t, []record{{ID: 3}}, k.Values())
	assert.Equal(t, []record{{ID: 3}, {ID: 4}}, clone.Values())
}

func TestNewKeyedWith(t *testing.T) {
	t.Parallel()

	t.Run("applies logger and elements", func(t *testing.T) {
		t.Parallel()

		k, err := NewKeyedWith(recordID,
			WithElements(records()...),
			WithLogger[record](slogt.New(t)),
		)
		require.NoError(t, err)

		assert.Equal(t, sortedRecords(), k.Values())
		assert.Equal(t, KindByKey, k.Order().Kind())
		assert.Equal(t, 1, k.SearchKey(5))
		assert.Equal(t, 2, k.CountKey(5))
	})

	t.Run("descending reverses key queries", func(t *testing.T) {
		t.Parallel()

		k, err := NewKeyedWith(recordID, WithElements(records()...), Descending[record]())
		require.NoError(t, err)

		assert.Equal(t, []record{
			{ID: 10, Args: 1},
			{ID: 5, Args: 0},
			{ID: 5, Args: 3},
			{ID: 0, Args: 2},
		}, k.Values())

		assert.Equal(t, 0, k.SearchKey(10))
		assert.Equal(t, 1, k.SearchKey(5))
		assert.Equal(t, 3, k.SearchKey(0))
		assert.Equal(t, -1, k.SearchKey(7))
		assert.Equal(t, []record{{ID: 0, Args: 2}}, k.GtKey(5).Values())
		assert.Equal(t, []record{{ID: 10, Args: 1}}, k.LtKey(5).Values())
		assert.Equal(t, 2, k.EqKey(5).Len())

		k.Insert(record{ID: 7, Args: 4})
		assert.Equal(t, 1, k.SearchKey(7))
		assert.NoError(t, k.Verify())

		k.RemoveKey(5)
		assert.Equal(t, []int{10, 7, 0}, []int{k.Key(0).GetOrPanic(), k.Key(1).GetOrPanic(), k.Key(2).GetOrPanic()})
	})

	t.Run("rejects a second ordering", func(t *testing.T) {
		t.Parallel()

		_, err := NewKeyedWith(recordID, WithComparator[record](func(a, b record) int { return a.Args - b.Args }))
		require.ErrorIs(t, err, errors.ErrConflictingOrder)
	})

	t.Run("rejects a nil key", func(t *testing.T) {
		t.Parallel()

		_, err := NewKeyedWith[record, int](nil)
		require.ErrorIs(t, err, errors.ErrNilComparator)
	})
}

func TestKeyed_ElementQueriesStayKeyed(t *testing.T) {
	t.Parallel()

	k := NewKeyed(recordID, records()...)

	gte := k.Gte(record{ID: 5})
	assert.Equal(t, 0, gte.SearchKey(5))
	assert.Equal(t, -1, gte.SearchKey(0))
	assert.Equal(t, []record{{ID: 10, Args: 1}}, gte.GtKey(5).Values())

	eq := k.Eq(record{ID: 5})
	assert.Equal(t, 2, eq.CountKey(5))
	assert.Equal(t, 0, eq.RemoveKey(5).Len())
	assert.Equal(t, 4, k.Len())

	assert.Equal(t, []record{{ID: 10, Args: 1}}, k.Gt(record{ID: 5}).Values())
	assert.Equal(t, []record{{ID: 0, Args: 2}}, k.Lt(record{ID: 5}).Values())
	assert.Equal(t, 3, k.Lte(record{ID: 5}).Len())
	assert.True(t, k.Lte(record{ID: 5}).HasKey(0))
	assert.Equal(t, []record{{ID: 5, Args: 0}, {ID: 5, Args: 3}, {ID: 10, Args: 1}},
		k.Between(record{ID: 1}, record{ID: 10}).Values())
}
