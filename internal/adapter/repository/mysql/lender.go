package mysql

import (
	"context"
	"errors"

	lenderDomain "peerlend/internal/domain/lender"

	"gorm.io/gorm"
)

type LenderRepository struct{ db *gorm.DB }

func NewLenderRepository(db *gorm.DB) *LenderRepository { return &LenderRepository{db: db} }

func (r *LenderRepository) Create(ctx context.Context, l *lenderDomain.Lender) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LenderRepository) GetByAddress(ctx context.Context, address string) (*lenderDomain.Lender, error) {
	var out lenderDomain.Lender
	res := r.db.WithContext(ctx).Where("address = ?", address).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, lenderDomain.ErrNotRegistered
	}
	return &out, res.Error
}

func (r *LenderRepository) ReplaceRequirements(ctx context.Context, address string, refs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("lender_address = ?", address).
			Delete(&lenderDomain.ProofRequirement{}).Error; err != nil {
			return err
		}
		rows := make([]lenderDomain.ProofRequirement, 0, len(refs))
		for i, ref := range refs {
			rows = append(rows, lenderDomain.ProofRequirement{
				LenderAddress: address,
				Position:      i,
				Ref:           ref,
			})
		}
		return tx.Create(&rows).Error
	})
}

func (r *LenderRepository) AddRequirement(ctx context.Context, address, ref string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&lenderDomain.ProofRequirement{}).
			Where("lender_address = ?", address).
			Count(&count).Error; err != nil {
			return err
		}
		row := lenderDomain.ProofRequirement{
			LenderAddress: address,
			Position:      int(count),
			Ref:           ref,
		}
		return tx.Create(&row).Error
	})
}

// RemoveRequirement deletes ref using swap-with-last: the final entry moves
// into the removed slot, so positions stay dense but order among the
// survivors is not preserved.
func (r *LenderRepository) RemoveRequirement(ctx context.Context, address, ref string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target lenderDomain.ProofRequirement
		res := tx.
			Where("lender_address = ? AND ref = ?", address, ref).
			Order("position ASC").
			First(&target)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return lenderDomain.ErrRequirementNotFound
		}
		if res.Error != nil {
			return res.Error
		}

		var last lenderDomain.ProofRequirement
		if err := tx.
			Where("lender_address = ?", address).
			Order("position DESC").
			First(&last).Error; err != nil {
			return err
		}

		if err := tx.Delete(&target).Error; err != nil {
			return err
		}
		if last.ID != target.ID {
			if err := tx.
				Model(&lenderDomain.ProofRequirement{}).
				Where("id = ?", last.ID).
				Update("position", target.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *LenderRepository) ListRequirements(ctx context.Context, address string) ([]lenderDomain.ProofRequirement, error) {
	var out []lenderDomain.ProofRequirement
	res := r.db.WithContext(ctx).
		Where("lender_address = ?", address).
		Order("position ASC").
		Find(&out)
	return out, res.Error
}

func (r *LenderRepository) AppendFundedLoan(ctx context.Context, address string, loanID uint64) error {
	row := lenderDomain.FundedLoan{LenderAddress: address, LoanID: loanID}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *LenderRepository) ListFundedLoans(ctx context.Context, address string) ([]lenderDomain.FundedLoan, error) {
	var out []lenderDomain.FundedLoan
	res := r.db.WithContext(ctx).
		Where("lender_address = ?", address).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
