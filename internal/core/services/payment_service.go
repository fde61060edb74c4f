package services

import (
	"context"
	"strings"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService records externally-initiated payment intents. Intents are
// created PENDING and never transitioned; there is no gateway callback
// handling, so each row is a recorded intent, not a completed transaction.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	memberRepo  repositories.MemberRepository
	settings    *SettingsService
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	memberRepo repositories.MemberRepository,
	settings *SettingsService,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		settings:    settings,
	}
}

// CreateIntentInput represents a payment intent
type CreateIntentInput struct {
	MemberID    string
	PaymentType models.PaymentType
	Amount      decimal.Decimal
	Currency    string
	Meta        string
}

// CreateIntent validates and records a pending payment intent with a
// generated external reference
func (s *PaymentService) CreateIntent(ctx context.Context, input *CreateIntentInput) (*models.Payment, error) {
	memberID := strings.TrimSpace(input.MemberID)
	if memberID == "" {
		return nil, domain.NewValidationError("member_id", "is required")
	}
	if input.Amount.Sign() <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if !input.PaymentType.Valid() {
		return nil, domain.ErrInvalidPaymentType
	}

	exists, err := s.memberRepo.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrMemberNotFound
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		if settings, err := s.settings.Get(ctx); err == nil {
			currency = settings.Currency
		} else {
			currency = "UGX"
		}
	}

	payment := &models.Payment{
		MemberID:    memberID,
		PaymentType: input.PaymentType,
		Amount:      input.Amount,
		Currency:    currency,
		ExternalRef: uuid.NewString(),
		Status:      models.PaymentStatusPending,
		Meta:        strings.TrimSpace(input.Meta),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, translateConstraint(err)
	}

	return payment, nil
}

// ListByMember lists a member's payment intents
func (s *PaymentService) ListByMember(ctx context.Context, memberID string) ([]*models.Payment, error) {
	return s.paymentRepo.ListByMember(ctx, memberID)
}
