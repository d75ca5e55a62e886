package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{ProductID: 1, Name: "Headphones", Quantity: 1, Price: 12999, TotalPrice: 12999},
		{ProductID: 2, Name: "Jacket", Quantity: 2, Price: 4500, TotalPrice: 9000},
	}
}

func TestCreatePrependsPendingOrder(t *testing.T) {
	svc := NewService("USD")

	first := svc.Create(testItems(), 21999, 0, 21999, "")
	second := svc.Create(testItems(), 21999, 2200, 19799, "WELCOME10")

	assert.Equal(t, StatusPending, first.Status)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Number, second.Number)

	ledger := svc.List()
	require.Len(t, ledger, 2)
	assert.Equal(t, second.ID, ledger[0].ID, "newest first")
	assert.Equal(t, first.ID, ledger[1].ID)

	require.Len(t, second.StatusHistory, 1)
	assert.Equal(t, StatusPending, second.StatusHistory[0].Status)
}

func TestGetUnknownOrder(t *testing.T) {
	svc := NewService("USD")

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminOverrideAllowsAnyStatus(t *testing.T) {
	svc := NewService("USD")
	placed := svc.Create(testItems(), 21999, 0, 21999, "")

	// Forward path
	o, err := svc.SetStatus(placed.ID, StatusShipped, "handed to carrier")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)
	assert.NotNil(t, o.ShippedAt)

	o, err = svc.SetStatus(placed.ID, StatusDelivered, "")
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, o.Status)

	// The admin path has no forward-only guard
	o, err = svc.SetStatus(placed.ID, StatusPending, "reset by support")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)

	_, err = svc.SetStatus(placed.ID, Status("lost"), "")
	assert.Error(t, err, "unknown status rejected")
}

func TestCustomerReturnRequiresDelivered(t *testing.T) {
	svc := NewService("USD")
	placed := svc.Create(testItems(), 21999, 0, 21999, "")

	_, err := svc.Return(placed.ID)
	assert.ErrorIs(t, err, ErrNotReturnable, "pending order cannot be returned")

	_, err = svc.SetStatus(placed.ID, StatusShipped, "")
	require.NoError(t, err)
	_, err = svc.Return(placed.ID)
	assert.ErrorIs(t, err, ErrNotReturnable, "shipped order cannot be returned")

	_, err = svc.SetStatus(placed.ID, StatusDelivered, "")
	require.NoError(t, err)

	o, err := svc.Return(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusReturned, o.Status)
	assert.NotNil(t, o.ReturnedAt)

	_, err = svc.Return(placed.ID)
	assert.ErrorIs(t, err, ErrNotReturnable, "return is not repeatable")
}

func TestReturnUnknownOrder(t *testing.T) {
	svc := NewService("USD")

	_, err := svc.Return(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatusChangesNeverTouchAmounts(t *testing.T) {
	svc := NewService("USD")
	placed := svc.Create(testItems(), 21999, 2200, 19799, "WELCOME10")

	_, err := svc.SetStatus(placed.ID, StatusDelivered, "")
	require.NoError(t, err)
	_, err = svc.Return(placed.ID)
	require.NoError(t, err)

	o, err := svc.Get(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(21999), o.SubtotalAmount)
	assert.Equal(t, int64(2200), o.DiscountAmount)
	assert.Equal(t, int64(19799), o.TotalAmount)
	assert.Equal(t, "WELCOME10", o.CouponCode)
}
