package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNormalizesCode(t *testing.T) {
	svc := NewService()

	c, err := svc.Register("  welcome10 ", 10)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", c.Code)
	assert.True(t, c.Active)
}

func TestRegisterRejectsDuplicatesAndBadInput(t *testing.T) {
	svc := NewService()

	_, err := svc.Register("WELCOME10", 10)
	require.NoError(t, err)

	_, err = svc.Register("welcome10", 20)
	assert.Error(t, err, "case-insensitive duplicate")

	_, err = svc.Register("", 10)
	assert.Error(t, err)

	_, err = svc.Register("NEG", -5)
	assert.Error(t, err)
}

func TestValidateIsCaseInsensitive(t *testing.T) {
	svc := NewService()
	_, err := svc.Register("WELCOME10", 10)
	require.NoError(t, err)

	applied, err := svc.Validate("welcome10")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", applied.Code)
	assert.Equal(t, 10, applied.DiscountPercent)
}

func TestValidateUnknownCode(t *testing.T) {
	svc := NewService()

	_, err := svc.Validate("nonexistent")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestValidateInactiveCode(t *testing.T) {
	svc := NewService()
	_, err := svc.Register("EXPIRED15", 15)
	require.NoError(t, err)
	require.NoError(t, svc.SetActive("EXPIRED15", false))

	_, err = svc.Validate("EXPIRED15")
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	require.NoError(t, svc.SetActive("EXPIRED15", true))
	_, err = svc.Validate("EXPIRED15")
	assert.NoError(t, err)
}

func TestDeleteIsIdempotentAndLeavesSnapshotsAlone(t *testing.T) {
	svc := NewService()
	_, err := svc.Register("WELCOME10", 10)
	require.NoError(t, err)

	applied, err := svc.Validate("WELCOME10")
	require.NoError(t, err)

	svc.Delete("WELCOME10")
	svc.Delete("WELCOME10") // second delete is a no-op

	// The registry entry is gone...
	_, err = svc.Validate("WELCOME10")
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	// ...but the snapshot handed out earlier is unaffected
	assert.Equal(t, "WELCOME10", applied.Code)
	assert.Equal(t, 10, applied.DiscountPercent)
}

func TestListSortsByCode(t *testing.T) {
	svc := NewService()
	for _, code := range []string{"ZETA", "ALPHA", "MID"} {
		_, err := svc.Register(code, 5)
		require.NoError(t, err)
	}

	coupons := svc.List()
	require.Len(t, coupons, 3)
	assert.Equal(t, "ALPHA", coupons[0].Code)
	assert.Equal(t, "MID", coupons[1].Code)
	assert.Equal(t, "ZETA", coupons[2].Code)
}
