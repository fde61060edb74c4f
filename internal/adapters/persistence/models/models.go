package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Enumerations (closed sets, checked at the boundary)
// ============================================================

// Role is a user role
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTeller Role = "teller"
)

// Valid reports whether the role is part of the closed set
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeller
}

// Compounding is a compounding frequency for savings accrual
type Compounding string

const (
	CompoundDaily   Compounding = "Daily"
	CompoundMonthly Compounding = "Monthly"
)

func (c Compounding) Valid() bool {
	return c == CompoundDaily || c == CompoundMonthly
}

// PaymentType classifies a recorded payment intent
type PaymentType string

const (
	PaymentTypeDeposit       PaymentType = "deposit"
	PaymentTypeLoanRepayment PaymentType = "loan_repayment"
)

func (p PaymentType) Valid() bool {
	return p == PaymentTypeDeposit || p == PaymentTypeLoanRepayment
}

// PaymentStatus tracks the state of a payment intent. Intents are created
// PENDING and never transitioned here; there is no gateway callback.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// ============================================================
// Ledger Tables
// ============================================================

// Member represents the members table
type Member struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	MemberID         string    `gorm:"uniqueIndex;size:30;not null" json:"member_id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Contact          string    `gorm:"size:30" json:"contact,omitempty"`
	Email            string    `gorm:"size:100" json:"email,omitempty"`
	RegistrationDate time.Time `gorm:"type:date;not null" json:"registration_date"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Deleting a member removes every savings, loan and payment row that
	// references it
	Savings  []SavingsDeposit `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Loans    []Loan           `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Payments []Payment        `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// SavingsDeposit represents the savings_deposits table. Rows are inserted
// and deleted, never updated in place.
type SavingsDeposit struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TransactionID string          `gorm:"uniqueIndex;size:50;not null" json:"transaction_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date          time.Time       `gorm:"type:date;not null" json:"date"`
	MemberID      string          `gorm:"size:30;not null;index" json:"member_id"`
	InterestRate  decimal.Decimal `gorm:"type:decimal(5,2)" json:"interest_rate"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (SavingsDeposit) TableName() string {
	return "savings_deposits"
}

// Loan represents the loans table. TotalRepayment and MonthlyInstallment are
// computed once at insert time with the flat-rate formula and stored
// redundantly; the amortization schedule is a separate on-demand view and is
// never written back here.
type Loan struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	LoanTransactionID  string          `gorm:"uniqueIndex;size:50;not null" json:"loan_transaction_id"`
	LoanAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"loan_amount"`
	LoanPeriod         int             `gorm:"not null" json:"loan_period"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	TotalRepayment     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_repayment"`
	MonthlyInstallment decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_installment"`
	LoanDate           time.Time       `gorm:"type:date;not null" json:"loan_date"`
	MemberID           string          `gorm:"size:30;not null;index" json:"member_id"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Loan) TableName() string {
	return "loans"
}

// ============================================================
// Auth & Settings Tables
// ============================================================

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:'teller'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// OrgSettings represents the org_settings singleton row. Exactly one row
// (ID = 1) exists at all times; the seeder creates it.
type OrgSettings struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	OrgName            string          `gorm:"size:100;not null" json:"org_name"`
	Currency           string          `gorm:"size:10;not null" json:"currency"`
	PrimaryColor       string          `gorm:"size:20" json:"primary_color"`
	DefaultSavingsRate decimal.Decimal `gorm:"type:decimal(5,2)" json:"default_savings_rate"`
	DefaultCompounding Compounding     `gorm:"size:10;not null;default:'Monthly'" json:"default_compounding"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrgSettings) TableName() string {
	return "org_settings"
}

// Payment represents the payments table: a recorded payment intent, not a
// completed transaction.
type Payment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	MemberID    string          `gorm:"size:30;not null;index" json:"member_id"`
	PaymentType PaymentType     `gorm:"size:20;not null" json:"payment_type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string          `gorm:"size:10;not null" json:"currency"`
	ExternalRef string          `gorm:"uniqueIndex;size:64;not null" json:"external_ref"`
	Status      PaymentStatus   `gorm:"size:10;not null;default:'PENDING'" json:"status"`
	Meta        string          `gorm:"type:text" json:"meta,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all ledger tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&SavingsDeposit{},
		&Loan{},
		&User{},
		&OrgSettings{},
		&Payment{},
	)
}
