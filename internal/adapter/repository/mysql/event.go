package mysql

import (
	"context"

	eventDomain "peerlend/internal/domain/event"

	"gorm.io/gorm"
)

type EventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Append(ctx context.Context, e *eventDomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]eventDomain.Event, error) {
	var out []eventDomain.Event
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *EventRepository) ListByActor(ctx context.Context, actor string) ([]eventDomain.Event, error) {
	var out []eventDomain.Event
	res := r.db.WithContext(ctx).
		Where("actor = ?", actor).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
