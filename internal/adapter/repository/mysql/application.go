package mysql

import (
	"context"
	"errors"

	appDomain "peerlend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, a *appDomain.Application) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appDomain.ErrAlreadyApplied
	}
	return err
}

func (r *ApplicationRepository) GetApplication(ctx context.Context, loanID uint64, lender string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND lender = ?", loanID, lender).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, appDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ApplicationRepository) CreateReview(ctx context.Context, rev *appDomain.Review) error {
	err := r.db.WithContext(ctx).Create(rev).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appDomain.ErrAlreadyReviewed
	}
	return err
}

func (r *ApplicationRepository) GetReview(ctx context.Context, loanID uint64, lender string) (*appDomain.Review, error) {
	var out appDomain.Review
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND lender = ?", loanID, lender).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, appDomain.ErrNotFound
	}
	return &out, res.Error
}
