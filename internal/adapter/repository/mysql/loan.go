package mysql

import (
	"context"
	"errors"

	loanDomain "peerlend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, loanID uint64) (*loanDomain.Loan, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks and rejects FOR UPDATE
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	res := q.
		Where("id = ?", loanID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

// AppendOffer assigns the next submission-order index; callers run it inside
// a transaction that holds the loan row lock, so the count cannot race.
func (r *LoanRepository) AppendOffer(ctx context.Context, o *loanDomain.Offer) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&loanDomain.Offer{}).
		Where("loan_id = ?", o.LoanID).
		Count(&count).Error; err != nil {
		return err
	}
	o.Idx = int(count)
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *LoanRepository) GetOffer(ctx context.Context, loanID uint64, idx int) (*loanDomain.Offer, error) {
	var out loanDomain.Offer
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND idx = ?", loanID, idx).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrInvalidOfferIndex
	}
	return &out, res.Error
}

func (r *LoanRepository) ListOffers(ctx context.Context, loanID uint64) ([]loanDomain.Offer, error) {
	var out []loanDomain.Offer
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("idx ASC").
		Find(&out)
	return out, res.Error
}
