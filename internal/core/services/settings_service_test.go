package services

import (
	"context"
	"testing"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSingleton(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settings, err := f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test SACCO", settings.OrgName)
	assert.Equal(t, "UGX", settings.Currency)

	_, err = f.settings.Update(ctx, &UpdateSettingsInput{
		OrgName: "Kampala Teachers SACCO", Currency: "ugx",
		DefaultSavingsRate: dec("3.5"), DefaultCompounding: models.CompoundDaily,
	})
	require.NoError(t, err)

	// The cache is invalidated on write; a fresh Get sees the new values
	settings, err = f.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kampala Teachers SACCO", settings.OrgName)
	assert.Equal(t, "UGX", settings.Currency, "currency is normalized to upper case")
	assert.Equal(t, models.CompoundDaily, settings.DefaultCompounding)

	// Still exactly one row
	var count int64
	require.NoError(t, f.db.Model(&models.OrgSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSettingsValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.settings.Update(ctx, &UpdateSettingsInput{
		OrgName: "", Currency: "UGX", DefaultCompounding: models.CompoundDaily,
	})
	assert.True(t, domain.IsValidation(err))

	_, err = f.settings.Update(ctx, &UpdateSettingsInput{
		OrgName: "X", Currency: "UGX", DefaultCompounding: "Weekly",
	})
	assert.True(t, domain.IsValidation(err))

	_, err = f.settings.Update(ctx, &UpdateSettingsInput{
		OrgName: "X", Currency: "UGX",
		DefaultSavingsRate: dec("-1"), DefaultCompounding: models.CompoundDaily,
	})
	assert.True(t, domain.IsValidation(err))
}

func TestPaymentIntent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerMember(t, "M001", "Alice Auma")

	payment, err := f.payments.CreateIntent(ctx, &CreateIntentInput{
		MemberID:    "M001",
		PaymentType: models.PaymentTypeDeposit,
		Amount:      dec("1500"),
	})
	require.NoError(t, err)

	// Created pending, with a generated reference and the org currency
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.NotEmpty(t, payment.ExternalRef)
	assert.Equal(t, "UGX", payment.Currency)

	payments, err := f.payments.ListByMember(ctx, "M001")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, payment.ExternalRef, payments[0].ExternalRef)
}

func TestPaymentIntentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerMember(t, "M001", "Alice Auma")

	_, err := f.payments.CreateIntent(ctx, &CreateIntentInput{
		MemberID: "M001", PaymentType: "card_topup", Amount: dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentType)

	_, err = f.payments.CreateIntent(ctx, &CreateIntentInput{
		MemberID: "M001", PaymentType: models.PaymentTypeDeposit, Amount: dec("0"),
	})
	assert.True(t, domain.IsValidation(err))

	_, err = f.payments.CreateIntent(ctx, &CreateIntentInput{
		MemberID: "GHOST", PaymentType: models.PaymentTypeDeposit, Amount: dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}
