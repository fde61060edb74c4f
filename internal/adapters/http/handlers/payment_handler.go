package handlers

import (
	"errors"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/core/services"
	"sacco-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment intent endpoints. Intents are recorded but
// no gateway is attached yet, so they stay pending.
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntentRequest represents payment intent request body
type CreateIntentRequest struct {
	MemberID    string `json:"member_id"`
	PaymentType string `json:"payment_type"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Meta        string `json:"meta"`
}

// CreateIntent handles payment intent creation
// @Summary Create payment intent
// @Description Record a pending payment intent for a member
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateIntentRequest true "Payment intent data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return response.BadRequest(c, "Amount must be a decimal number")
	}

	input := &services.CreateIntentInput{
		MemberID:    req.MemberID,
		PaymentType: models.PaymentType(req.PaymentType),
		Amount:      amount,
		Currency:    req.Currency,
		Meta:        req.Meta,
	}

	payment, err := h.paymentService.CreateIntent(c.Context(), input)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrInvalidPaymentType):
			return response.BadRequest(c, "Payment type must be deposit or loan_repayment")
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to create payment intent")
		}
	}

	return response.Created(c, "Payment intent created", payment)
}

// ListByMember handles listing a member's payment intents
// @Summary List member payments
// @Description List payment intents for a member, newest first
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /payments/member/{member_id} [get]
func (h *PaymentHandler) ListByMember(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListByMember(c.Context(), c.Params("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "Payments retrieved successfully", payments)
}
