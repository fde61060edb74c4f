package handlers

import (
	"errors"
	"time"

	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/core/services"
	"sacco-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SavingsHandler handles savings deposit endpoints
type SavingsHandler struct {
	savingsService *services.SavingsService
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsService *services.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// RecordDepositRequest represents deposit request body. Interest rate is
// optional and falls back to the organization default when omitted.
type RecordDepositRequest struct {
	MemberID      string  `json:"member_id"`
	Amount        string  `json:"amount"`
	Date          string  `json:"date"`
	TransactionID string  `json:"transaction_id"`
	InterestRate  *string `json:"interest_rate"`
}

// RecordDeposit handles savings deposit recording
// @Summary Record deposit
// @Description Record a savings deposit for a member
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RecordDepositRequest true "Deposit data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /savings [post]
func (h *SavingsHandler) RecordDeposit(c *fiber.Ctx) error {
	var req RecordDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return response.BadRequest(c, "Amount must be a decimal number")
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return response.BadRequest(c, "Date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	var rate *decimal.Decimal
	if req.InterestRate != nil {
		parsed, err := decimal.NewFromString(*req.InterestRate)
		if err != nil {
			return response.BadRequest(c, "Interest rate must be a decimal number")
		}
		rate = &parsed
	}

	input := &services.RecordDepositInput{
		MemberID:      req.MemberID,
		Amount:        amount,
		Date:          date,
		TransactionID: req.TransactionID,
		InterestRate:  rate,
	}

	deposit, err := h.savingsService.RecordDeposit(c.Context(), input)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrDuplicateTransaction):
			return response.Conflict(c, "Transaction ID already recorded")
		default:
			return response.InternalServerError(c, "Failed to record deposit")
		}
	}

	return response.Created(c, "Deposit recorded successfully", deposit)
}

// ListByMember handles listing a member's deposits
// @Summary List member deposits
// @Description List savings deposits for a member, newest first
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /savings/member/{member_id} [get]
func (h *SavingsHandler) ListByMember(c *fiber.Ctx) error {
	deposits, err := h.savingsService.ListByMember(c.Context(), c.Params("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list deposits")
	}

	return response.Success(c, "Deposits retrieved successfully", deposits)
}

// Delete handles deposit removal
// @Summary Delete deposit
// @Description Delete a savings deposit by transaction ID (admin only)
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} response.Response
// @Router /savings/{transaction_id} [delete]
func (h *SavingsHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.savingsService.Delete(c.Context(), c.Params("transaction_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete deposit")
	}
	if !deleted {
		return response.Warning(c, "No deposit found with that transaction ID")
	}

	return response.Success(c, "Deposit deleted successfully", nil)
}

// Accrue handles compound interest projection for a member's savings
// @Summary Accrue savings interest
// @Description Project compound interest on each of a member's deposits
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Param as_of query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /savings/member/{member_id}/accrue [get]
func (h *SavingsHandler) Accrue(c *fiber.Ctx) error {
	asOf := time.Now()
	if q := c.Query("as_of"); q != "" {
		parsed, err := time.Parse(dateLayout, q)
		if err != nil {
			return response.BadRequest(c, "as_of must be in YYYY-MM-DD format")
		}
		asOf = parsed
	}

	summary, err := h.savingsService.Accrue(c.Context(), c.Params("member_id"), asOf)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to accrue interest")
		}
	}

	return response.Success(c, "Accrued interest computed", summary)
}
