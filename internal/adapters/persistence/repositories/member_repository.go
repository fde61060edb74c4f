package repositories

import (
	"context"

	"sacco-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByMemberID gets a member by its external member id
func (r *memberRepository) GetByMemberID(ctx context.Context, memberID string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists members with pagination, most recently registered first
func (r *memberRepository) List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("registration_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error

	return members, total, err
}

// Delete removes a member. Savings and loan rows referencing the member are
// removed by the foreign-key cascade. Returns the number of member rows
// deleted (zero or one).
func (r *memberRepository) Delete(ctx context.Context, memberID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).Delete(&models.Member{})
	return res.RowsAffected, res.Error
}

// Exists checks if a member id is registered
func (r *memberRepository) Exists(ctx context.Context, memberID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("member_id = ?", memberID).Count(&count).Error
	return count > 0, err
}
