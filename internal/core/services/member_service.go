package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/core/domain"

	"gorm.io/gorm"
)

// emailPattern is a deliberately loose check: something@something.something
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MemberService handles member registration and lifecycle
type MemberService struct {
	memberRepo repositories.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// RegisterMemberInput represents member registration input
type RegisterMemberInput struct {
	MemberID         string
	Name             string
	Contact          string
	Email            string
	RegistrationDate time.Time
}

// Register validates and registers a new member. Nothing is persisted when
// validation fails.
func (s *MemberService) Register(ctx context.Context, input *RegisterMemberInput) (*models.Member, error) {
	memberID := strings.TrimSpace(input.MemberID)
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	if memberID == "" {
		return nil, domain.NewValidationError("member_id", "is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if email != "" && !emailPattern.MatchString(email) {
		return nil, domain.NewValidationError("email", "is not a valid email address")
	}

	registrationDate := input.RegistrationDate
	if registrationDate.IsZero() {
		registrationDate = time.Now()
	}
	registrationDate = truncateToDate(registrationDate)
	if registrationDate.After(truncateToDate(time.Now())) {
		return nil, domain.NewValidationError("registration_date", "cannot be in the future")
	}

	member := &models.Member{
		MemberID:         memberID,
		Name:             name,
		Contact:          strings.TrimSpace(input.Contact),
		Email:            email,
		RegistrationDate: registrationDate,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(translateConstraint(err), domain.ErrDuplicateEntry) {
			return nil, domain.ErrMemberAlreadyExists
		}
		return nil, err
	}

	return member, nil
}

// Get fetches a member by its external member id
func (s *MemberService) Get(ctx context.Context, memberID string) (*models.Member, error) {
	member, err := s.memberRepo.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// List lists members with pagination
func (s *MemberService) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.List(ctx, offset, limit)
}

// Delete removes a member. The store cascades deletion of every savings and
// loan row referencing it. Returns false when no such member existed.
func (s *MemberService) Delete(ctx context.Context, memberID string) (bool, error) {
	if strings.TrimSpace(memberID) == "" {
		return false, domain.NewValidationError("member_id", "is required")
	}

	rows, err := s.memberRepo.Delete(ctx, memberID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// truncateToDate drops the time-of-day; the ledger stores calendar dates
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
