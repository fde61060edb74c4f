package services

import (
	"context"
	"testing"
	"time"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMemberValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterMemberInput
		field string
	}{
		{"missing member id", RegisterMemberInput{Name: "Alice"}, "member_id"},
		{"missing name", RegisterMemberInput{MemberID: "M001"}, "name"},
		{"blank name", RegisterMemberInput{MemberID: "M001", Name: "   "}, "name"},
		{"bad email", RegisterMemberInput{MemberID: "M001", Name: "Alice", Email: "not-an-email"}, "email"},
		{"future date", RegisterMemberInput{
			MemberID: "M001", Name: "Alice",
			RegistrationDate: time.Now().AddDate(0, 0, 2),
		}, "registration_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.members.Register(ctx, &tc.input)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	// Nothing was persisted on any failure
	var count int64
	require.NoError(t, f.db.Model(&models.Member{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterMemberDefaultsAndTrim(t *testing.T) {
	f := newFixture(t)

	member, err := f.members.Register(context.Background(), &RegisterMemberInput{
		MemberID: "  M007  ",
		Name:     "  Grace Nakato ",
		Email:    "grace@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "M007", member.MemberID)
	assert.Equal(t, "Grace Nakato", member.Name)
	assert.False(t, member.RegistrationDate.After(time.Now()))
}

func TestRegisterMemberDuplicateID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.registerMember(t, "M001", "Alice Auma")

	_, err := f.members.Register(ctx, &RegisterMemberInput{MemberID: "M001", Name: "Impostor"})
	assert.ErrorIs(t, err, domain.ErrMemberAlreadyExists)

	// The first registration is untouched
	member, err := f.members.Get(ctx, "M001")
	require.NoError(t, err)
	assert.Equal(t, "Alice Auma", member.Name)
}

func TestGetMemberNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.members.Get(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestDeleteMemberCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.registerMember(t, "M001", "Alice Auma")
	f.registerMember(t, "M002", "Bob Okello")

	for _, txn := range []string{"SAV-1", "SAV-2"} {
		_, err := f.savings.RecordDeposit(ctx, &RecordDepositInput{
			MemberID: "M001", Amount: dec("1000"), TransactionID: txn,
		})
		require.NoError(t, err)
	}
	_, err := f.savings.RecordDeposit(ctx, &RecordDepositInput{
		MemberID: "M002", Amount: dec("500"), TransactionID: "SAV-3",
	})
	require.NoError(t, err)

	_, err = f.loans.Apply(ctx, &ApplyLoanInput{
		MemberID: "M001", LoanAmount: dec("20000"), LoanPeriod: 6,
		InterestRate: dec("10"), LoanTransactionID: "LN-1",
	})
	require.NoError(t, err)

	_, err = f.payments.CreateIntent(ctx, &CreateIntentInput{
		MemberID: "M001", PaymentType: models.PaymentTypeDeposit, Amount: dec("1000"),
	})
	require.NoError(t, err)

	deleted, err := f.members.Delete(ctx, "M001")
	require.NoError(t, err)
	assert.True(t, deleted)

	// Every savings, loan and payment row referencing the member is gone
	var savingsCount, loanCount, paymentCount int64
	require.NoError(t, f.db.Model(&models.SavingsDeposit{}).Where("member_id = ?", "M001").Count(&savingsCount).Error)
	require.NoError(t, f.db.Model(&models.Loan{}).Where("member_id = ?", "M001").Count(&loanCount).Error)
	require.NoError(t, f.db.Model(&models.Payment{}).Where("member_id = ?", "M001").Count(&paymentCount).Error)
	assert.Zero(t, savingsCount)
	assert.Zero(t, loanCount)
	assert.Zero(t, paymentCount)

	// The other member's rows survive
	require.NoError(t, f.db.Model(&models.SavingsDeposit{}).Where("member_id = ?", "M002").Count(&savingsCount).Error)
	assert.EqualValues(t, 1, savingsCount)
}

func TestDeleteMemberNotFound(t *testing.T) {
	f := newFixture(t)

	deleted, err := f.members.Delete(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.False(t, deleted)
}
