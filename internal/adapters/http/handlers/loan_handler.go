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

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// ApplyLoanRequest represents loan application request body
type ApplyLoanRequest struct {
	MemberID          string `json:"member_id"`
	LoanAmount        string `json:"loan_amount"`
	LoanPeriod        int    `json:"loan_period"`
	InterestRate      string `json:"interest_rate"`
	LoanDate          string `json:"loan_date"`
	LoanTransactionID string `json:"loan_transaction_id"`
}

// Apply handles loan applications
// @Summary Apply for loan
// @Description Record a loan with flat-rate repayment totals
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ApplyLoanRequest true "Loan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Apply(c *fiber.Ctx) error {
	var req ApplyLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.LoanAmount)
	if err != nil {
		return response.BadRequest(c, "Loan amount must be a decimal number")
	}

	rate, err := decimal.NewFromString(req.InterestRate)
	if err != nil {
		return response.BadRequest(c, "Interest rate must be a decimal number")
	}

	var loanDate time.Time
	if req.LoanDate != "" {
		parsed, err := time.Parse(dateLayout, req.LoanDate)
		if err != nil {
			return response.BadRequest(c, "Loan date must be in YYYY-MM-DD format")
		}
		loanDate = parsed
	}

	input := &services.ApplyLoanInput{
		MemberID:          req.MemberID,
		LoanAmount:        amount,
		LoanPeriod:        req.LoanPeriod,
		InterestRate:      rate,
		LoanDate:          loanDate,
		LoanTransactionID: req.LoanTransactionID,
	}

	loan, err := h.loanService.Apply(c.Context(), input)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrDuplicateTransaction):
			return response.Conflict(c, "Loan transaction ID already recorded")
		default:
			return response.InternalServerError(c, "Failed to record loan")
		}
	}

	return response.Created(c, "Loan recorded successfully", loan)
}

// ListByMember handles listing a member's loans
// @Summary List member loans
// @Description List loans for a member, newest first
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /loans/member/{member_id} [get]
func (h *LoanHandler) ListByMember(c *fiber.Ctx) error {
	loans, err := h.loanService.ListByMember(c.Context(), c.Params("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved successfully", loans)
}

// Delete handles loan removal
// @Summary Delete loan
// @Description Delete a loan by transaction ID (admin only)
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param transaction_id path string true "Loan transaction ID"
// @Success 200 {object} response.Response
// @Router /loans/{transaction_id} [delete]
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.loanService.Delete(c.Context(), c.Params("transaction_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete loan")
	}
	if !deleted {
		return response.Warning(c, "No loan found with that transaction ID")
	}

	return response.Success(c, "Loan deleted successfully", nil)
}

// Schedule handles the amortization schedule view
// @Summary Loan schedule
// @Description Amortization schedule and outstanding balance for a loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param transaction_id path string true "Loan transaction ID"
// @Param as_of query string false "Valuation date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loans/{transaction_id}/schedule [get]
func (h *LoanHandler) Schedule(c *fiber.Ctx) error {
	asOf := time.Now()
	if q := c.Query("as_of"); q != "" {
		parsed, err := time.Parse(dateLayout, q)
		if err != nil {
			return response.BadRequest(c, "as_of must be in YYYY-MM-DD format")
		}
		asOf = parsed
	}

	view, err := h.loanService.Schedule(c.Context(), c.Params("transaction_id"), asOf)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		default:
			return response.InternalServerError(c, "Failed to build schedule")
		}
	}

	return response.Success(c, "Schedule computed successfully", view)
}
