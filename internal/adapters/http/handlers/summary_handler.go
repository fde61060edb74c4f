package handlers

import (
	"sacco-ledger/internal/core/services"
	"sacco-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SummaryHandler handles financial summary and export endpoints
type SummaryHandler struct {
	summaryService *services.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Summary handles the financial summary view
// @Summary Financial summary
// @Description Savings and loan totals with per-row detail, optionally for one member
// @Tags Summary
// @Produce json
// @Security BearerAuth
// @Param member_id query string false "Filter by member ID"
// @Success 200 {object} response.Response
// @Router /summary [get]
func (h *SummaryHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.summaryService.Summary(c.Context(), c.Query("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to build summary")
	}

	return response.Success(c, "Summary retrieved successfully", summary)
}

// ManualInterest handles one-off interest calculation on current savings
// @Summary Manual interest calculation
// @Description Simple percentage interest on a member's total savings
// @Tags Summary
// @Produce json
// @Security BearerAuth
// @Param member_id query string false "Filter by member ID"
// @Param rate query string true "Annual rate percentage"
// @Success 200 {object} response.Response
// @Router /summary/manual-interest [get]
func (h *SummaryHandler) ManualInterest(c *fiber.Ctx) error {
	rate, err := decimal.NewFromString(c.Query("rate"))
	if err != nil {
		return response.BadRequest(c, "Rate must be a decimal number")
	}

	summary, err := h.summaryService.Summary(c.Context(), c.Query("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to compute interest")
	}

	interest := h.summaryService.ManualInterest(summary.TotalSavings, rate)

	return response.Success(c, "Interest computed successfully", fiber.Map{
		"total_savings": summary.TotalSavings,
		"rate":          rate,
		"interest":      interest,
	})
}

// ExportSavings handles savings CSV export
// @Summary Export savings CSV
// @Description Download savings deposits as CSV, optionally for one member
// @Tags Summary
// @Produce text/csv
// @Security BearerAuth
// @Param member_id query string false "Filter by member ID"
// @Success 200 {string} string "CSV data"
// @Router /summary/export/savings [get]
func (h *SummaryHandler) ExportSavings(c *fiber.Ctx) error {
	data, err := h.summaryService.SavingsCSV(c.Context(), c.Query("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to export savings")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="savings.csv"`)
	return c.Send(data)
}

// ExportLoans handles loan CSV export
// @Summary Export loans CSV
// @Description Download loans as CSV, optionally for one member
// @Tags Summary
// @Produce text/csv
// @Security BearerAuth
// @Param member_id query string false "Filter by member ID"
// @Success 200 {string} string "CSV data"
// @Router /summary/export/loans [get]
func (h *SummaryHandler) ExportLoans(c *fiber.Ctx) error {
	data, err := h.summaryService.LoansCSV(c.Context(), c.Query("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to export loans")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="loans.csv"`)
	return c.Send(data)
}
