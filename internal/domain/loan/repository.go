package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, loanID uint64) (*Loan, error)
	// GetByIDForUpdate locks the loan row for the duration of the enclosing
	// transaction (SELECT ... FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, loanID uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error

	// AppendOffer assigns the next submission-order index for the loan and
	// inserts the offer.
	AppendOffer(ctx context.Context, o *Offer) error
	GetOffer(ctx context.Context, loanID uint64, idx int) (*Offer, error)
	ListOffers(ctx context.Context, loanID uint64) ([]Offer, error)
}
