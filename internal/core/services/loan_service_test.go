package services

import (
	"context"
	"testing"
	"time"

	"sacco-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLoanValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerMember(t, "M001", "Alice Auma")

	cases := []ApplyLoanInput{
		{MemberID: "", LoanAmount: dec("1000"), LoanPeriod: 6},
		{MemberID: "M001", LoanAmount: dec("0"), LoanPeriod: 6},
		{MemberID: "M001", LoanAmount: dec("-10"), LoanPeriod: 6},
		{MemberID: "M001", LoanAmount: dec("1000"), LoanPeriod: 0},
		{MemberID: "M001", LoanAmount: dec("1000"), LoanPeriod: 6, InterestRate: dec("-1")},
	}

	for _, input := range cases {
		_, err := f.loans.Apply(ctx, &input)
		assert.True(t, domain.IsValidation(err), "input %+v should fail validation", input)
	}
}

func TestApplyLoanUnknownMember(t *testing.T) {
	f := newFixture(t)

	_, err := f.loans.Apply(context.Background(), &ApplyLoanInput{
		MemberID: "GHOST", LoanAmount: dec("1000"), LoanPeriod: 6, InterestRate: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestApplyLoanPersistsFlatTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerMember(t, "M001", "Alice Auma")

	// 100,000 at 12% flat over 12 months
	loan, err := f.loans.Apply(ctx, &ApplyLoanInput{
		MemberID:          "M001",
		LoanAmount:        dec("100000"),
		LoanPeriod:        12,
		InterestRate:      dec("12"),
		LoanDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LoanTransactionID: "LN-1",
	})
	require.NoError(t, err)

	assert.True(t, loan.TotalRepayment.Equal(dec("112000")), "total = %s", loan.TotalRepayment)
	assert.True(t, loan.MonthlyInstallment.Equal(dec("9333.33")), "monthly = %s", loan.MonthlyInstallment)

	// The stored totals come from the flat formula and stay put; they are
	// not recomputed when the amortizing view is requested
	view, err := f.loans.Schedule(ctx, "LN-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, view.Loan.TotalRepayment.Equal(dec("112000")))
	require.Len(t, view.Installments, 12)
	assert.True(t, view.Installments[0].Interest.Equal(dec("1000")))

	// Before the first due date the full principal is outstanding
	assert.True(t, view.Outstanding.Equal(dec("100000")))
}

func TestLoanScheduleNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.loans.Schedule(context.Background(), "NOPE", time.Now())
	assert.ErrorIs(t, err, domain.ErrLoanNotFound)
}

func TestApplyLoanDuplicateTransactionID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerMember(t, "M001", "Alice Auma")

	input := &ApplyLoanInput{
		MemberID: "M001", LoanAmount: dec("5000"), LoanPeriod: 3,
		InterestRate: dec("5"), LoanTransactionID: "LN-1",
	}
	_, err := f.loans.Apply(ctx, input)
	require.NoError(t, err)

	_, err = f.loans.Apply(ctx, input)
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)

	loans, err := f.loans.ListByMember(ctx, "M001")
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}

func TestDeleteLoan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerMember(t, "M001", "Alice Auma")

	_, err := f.loans.Apply(ctx, &ApplyLoanInput{
		MemberID: "M001", LoanAmount: dec("5000"), LoanPeriod: 3,
		InterestRate: dec("5"), LoanTransactionID: "LN-1",
	})
	require.NoError(t, err)

	deleted, err := f.loans.Delete(ctx, "LN-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.loans.Delete(ctx, "LN-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
