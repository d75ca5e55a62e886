package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAssignsSequentialIDs(t *testing.T) {
	svc := NewService()

	a := svc.Insert(Product{Name: "Headphones", Price: 12999})
	b := svc.Insert(Product{Name: "Keyboard", Price: 8999})

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	got, err := svc.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Headphones", got.Name)
}

func TestListKeepsInsertionOrderAfterDelete(t *testing.T) {
	svc := NewService()
	svc.Insert(Product{Name: "A", Price: 100})
	b := svc.Insert(Product{Name: "B", Price: 200})
	svc.Insert(Product{Name: "C", Price: 300})

	svc.Delete(b.ID)

	products := svc.List()
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "C", products[1].Name)

	// Lookups still work after index reshuffle
	got, err := svc.Get(products[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "C", got.Name)
}

func TestDeleteUnknownIsNoop(t *testing.T) {
	svc := NewService()
	svc.Insert(Product{Name: "A", Price: 100})

	svc.Delete(42)

	assert.Len(t, svc.List(), 1)

	_, err := svc.Get(42)
	assert.Error(t, err)
}
