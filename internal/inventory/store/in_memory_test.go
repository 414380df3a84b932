package store

import (
	"testing"

	"github.com/abgdnv/inventory/internal/inventory/category"
	"github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coconut() Item {
	return Item{Barcode: "Coco", Name: "Coconut", BestBeforeDate: "14-10-2023", Price: 1.25, Quantity: 5, Category: category.Fruit}
}

func shampoo() Item {
	return Item{Barcode: "sham", Name: "Shampoo", BestBeforeDate: "66-99-2223", Price: 9.25, Quantity: 10, Category: category.Other}
}

func byBarcode(barcode string) Predicate {
	return func(item Item) bool { return item.Barcode == barcode }
}

func byName(name string) Predicate {
	return func(item Item) bool { return item.Name == name }
}

// withoutIDs strips store-assigned identifiers so items can be compared by content.
func withoutIDs(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		item.ID = uuid.Nil
		out[i] = item
	}
	return out
}

func Test_InMemory_ListPreservesOrder(t *testing.T) {
	// given
	s := NewInMemoryStore(DefaultCapacity)
	added := []Item{
		{Barcode: "c", Name: "Carrot", Category: category.Vegetables},
		{Barcode: "a", Name: "Apple", Category: category.Fruit},
		{Barcode: "b", Name: "Butter", Category: category.Diary},
	}
	// when
	for _, item := range added {
		s.Add(item)
	}
	// then
	assert.Equal(t, added, withoutIDs(s.List()))
	assert.Equal(t, 3, s.Len())
}

func Test_InMemory_ListEmpty(t *testing.T) {
	s := NewInMemoryStore(0)

	list := s.List()

	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func Test_InMemory_AddAssignsDistinctIDs(t *testing.T) {
	s := NewInMemoryStore(DefaultCapacity)

	h1 := s.Add(coconut())
	h2 := s.Add(coconut())

	assert.False(t, h1.IsZero())
	assert.False(t, h2.IsZero())
	assert.NotEqual(t, h1, h2)
	require.Len(t, s.List(), 2, "duplicates are permitted")
}

func Test_InMemory_AddBeyondCapacityHint(t *testing.T) {
	s := NewInMemoryStore(2)

	for range 5 {
		s.Add(coconut())
	}

	assert.Equal(t, 5, s.Len())
}

func Test_InMemory_FindReturnsFirstMatch(t *testing.T) {
	// given
	s := NewInMemoryStore(DefaultCapacity)
	first := shampoo()
	first.Name = "A"
	second := shampoo()
	second.Name = "B"
	hA := s.Add(first)
	s.Add(second)
	// when
	h, ok := s.Find(byBarcode("sham"))
	// then
	require.True(t, ok)
	assert.Equal(t, hA, h)
	found, err := s.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "A", found.Name)
}

func Test_InMemory_FindIsExactAndCaseSensitive(t *testing.T) {
	s := NewInMemoryStore(DefaultCapacity)
	s.Add(shampoo())

	testCases := []struct {
		name string
		pred Predicate
	}{
		{name: "different case", pred: byName("shampoo")},
		{name: "substring", pred: byName("Sham")},
		{name: "trailing space", pred: byBarcode("sham ")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, ok := s.Find(tc.pred)
			assert.False(t, ok)
			assert.True(t, h.IsZero())
		})
	}
}

func Test_InMemory_FindNotFoundLeavesInventoryUnchanged(t *testing.T) {
	// given
	s := NewInMemoryStore(DefaultCapacity)
	s.Add(coconut())
	s.Add(shampoo())
	before := s.List()
	// when
	_, ok := s.Find(byBarcode("missing"))
	// then
	assert.False(t, ok)
	assert.Equal(t, before, s.List())
}

func Test_InMemory_RemoveShrinksByOne(t *testing.T) {
	// given
	s := NewInMemoryStore(DefaultCapacity)
	s.Add(coconut())
	h := s.Add(shampoo())
	s.Add(Item{Barcode: "shirt", Name: "Shirt", Category: category.Clothes})
	// when
	err := s.Remove(h)
	// then
	require.NoError(t, err)
	list := s.List()
	assert.Len(t, list, 2)
	for _, item := range list {
		assert.NotEqual(t, h.ID(), item.ID)
	}
	_, ok := s.Find(byBarcode("sham"))
	assert.False(t, ok)
}

func Test_InMemory_RemoveInvalidHandle(t *testing.T) {
	testCases := []struct {
		name   string
		handle func(t *testing.T, s Inventory) Handle
	}{
		{
			name:   "zero handle",
			handle: func(_ *testing.T, _ Inventory) Handle { return Handle{} },
		},
		{
			name: "stale handle",
			handle: func(t *testing.T, s Inventory) Handle {
				h := s.Add(shampoo())
				require.NoError(t, s.Remove(h))
				return h
			},
		},
		{
			name: "handle from another inventory",
			handle: func(_ *testing.T, _ Inventory) Handle {
				return NewInMemoryStore(1).Add(shampoo())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := NewInMemoryStore(DefaultCapacity)
			s.Add(coconut())
			h := tc.handle(t, s)
			before := s.List()
			// when
			err := s.Remove(h)
			// then
			assert.ErrorIs(t, err, errors.ErrInvalidHandle)
			assert.Equal(t, before, s.List())
		})
	}
}

func Test_InMemory_HandleSurvivesOtherMutations(t *testing.T) {
	// given
	s := NewInMemoryStore(1)
	hFirst := s.Add(coconut())
	hTarget := s.Add(shampoo())
	// when
	require.NoError(t, s.Remove(hFirst))
	for range 40 {
		s.Add(coconut())
	}
	// then
	item, err := s.Get(hTarget)
	require.NoError(t, err)
	assert.Equal(t, "Shampoo", item.Name)
}

func Test_InMemory_UpdatePreservesBarcodeAndCategory(t *testing.T) {
	// given
	s := NewInMemoryStore(DefaultCapacity)
	s.Add(coconut())
	h, ok := s.Find(byName("Coconut"))
	require.True(t, ok)
	edit := Edit{Name: "King Coconut", BestBeforeDate: "01-01-2030", Price: -2.5, Quantity: -1}
	// when
	updated, err := s.Update(h, edit)
	// then
	require.NoError(t, err)
	assert.Equal(t, "King Coconut", updated.Name)
	assert.Equal(t, "01-01-2030", updated.BestBeforeDate)
	assert.Equal(t, -2.5, updated.Price)
	assert.Equal(t, -1, updated.Quantity)
	assert.Equal(t, "Coco", updated.Barcode)
	assert.Equal(t, category.Fruit, updated.Category)

	stored, err := s.Get(h)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func Test_InMemory_UpdateInvalidHandle(t *testing.T) {
	s := NewInMemoryStore(DefaultCapacity)

	_, err := s.Update(Handle{}, Edit{Name: "x"})

	assert.ErrorIs(t, err, errors.ErrInvalidHandle)
}

func Test_InMemory_ListReturnsCopies(t *testing.T) {
	s := NewInMemoryStore(DefaultCapacity)
	h := s.Add(coconut())

	list := s.List()
	list[0].Name = "changed"

	item, err := s.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "Coconut", item.Name)
}

func Test_InMemory_ExampleScenario(t *testing.T) {
	// given
	s := NewInMemoryStore(DefaultCapacity)
	s.Add(coconut())
	s.Add(shampoo())
	// when
	h, ok := s.Find(byName("Shampoo"))
	require.True(t, ok)
	found, err := s.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "sham", found.Barcode)
	require.NoError(t, s.Remove(h))
	// then
	assert.Equal(t, []Item{coconut()}, withoutIDs(s.List()))
}
