package handlers

import (
	"errors"
	"time"

	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/core/services"
	"sacco-ledger/internal/pkg/pagination"
	"sacco-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// MemberHandler handles member registry endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// RegisterMemberRequest represents member registration request body
type RegisterMemberRequest struct {
	MemberID         string `json:"member_id"`
	Name             string `json:"name"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registration_date"`
}

// Register handles member registration
// @Summary Register member
// @Description Register a new member with a unique member ID
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterMemberRequest true "Member data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	var req RegisterMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var registrationDate time.Time
	if req.RegistrationDate != "" {
		parsed, err := time.Parse(dateLayout, req.RegistrationDate)
		if err != nil {
			return response.BadRequest(c, "Registration date must be in YYYY-MM-DD format")
		}
		registrationDate = parsed
	}

	input := &services.RegisterMemberInput{
		MemberID:         req.MemberID,
		Name:             req.Name,
		Contact:          req.Contact,
		Email:            req.Email,
		RegistrationDate: registrationDate,
	}

	member, err := h.memberService.Register(c.Context(), input)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrMemberAlreadyExists):
			return response.Conflict(c, "Member ID already registered")
		default:
			return response.InternalServerError(c, "Failed to register member")
		}
	}

	return response.Created(c, "Member registered successfully", member)
}

// Get handles member lookup
// @Summary Get member
// @Description Get a member by member ID
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{member_id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	member, err := h.memberService.Get(c.Context(), c.Params("member_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to retrieve member")
		}
	}

	return response.Success(c, "Member retrieved successfully", member)
}

// List handles member listing with pagination
// @Summary List members
// @Description List members ordered by registration date
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	members, total, err := h.memberService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully", pagination.NewResponse(members, params, total))
}

// Delete handles member removal
// @Summary Delete member
// @Description Delete a member and all linked savings and loans (admin only)
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Response
// @Router /members/{member_id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.memberService.Delete(c.Context(), c.Params("member_id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete member")
	}
	if !deleted {
		return response.Warning(c, "No member found with that ID")
	}

	return response.Success(c, "Member and linked records deleted", nil)
}
