package offer

import (
	"context"
	"errors"

	domainApp "peerlend/internal/domain/application"
	domainEvent "peerlend/internal/domain/event"
	domainLoan "peerlend/internal/domain/loan"
	"peerlend/internal/domain/uow"
	"peerlend/pkg/id"
)

type Usecase struct {
	loans domainLoan.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx}
}

// Review records the lender's single decision on an application. The review
// record is committed in both branches, so one lender can never mix an accept
// and a reject, or submit two offers, for the same loan.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	var dto *ReviewDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if _, err := r.Lenders.GetByAddress(ctx, in.Caller); err != nil {
			return err
		}
		if _, err := r.Applications.GetApplication(ctx, in.LoanID, in.Caller); err != nil {
			if errors.Is(err, domainApp.ErrNotFound) {
				return domainApp.ErrNoApplication
			}
			return err
		}
		if l.Funded {
			return domainLoan.ErrAlreadyFunded
		}

		_, err := r.Applications.GetReview(ctx, in.LoanID, in.Caller)
		switch {
		case err == nil:
			return domainApp.ErrAlreadyReviewed
		case !errors.Is(err, domainApp.ErrNotFound):
			return err
		}

		if in.Accept && in.InterestOffered > l.MaxInterest {
			return domainLoan.ErrOfferTooHigh
		}

		// review record first, then the offer append
		rev := &domainApp.Review{LoanID: in.LoanID, Lender: in.Caller, Accepted: in.Accept}
		if err := r.Applications.CreateReview(ctx, rev); err != nil {
			return err
		}
		dto = &ReviewDTO{
			LoanID:     l.ID,
			Lender:     in.Caller,
			Accepted:   in.Accept,
			ReviewedAt: rev.CreatedAt,
		}

		if !in.Accept {
			return r.Events.Append(ctx, &domainEvent.Event{
				EventID:      id.NewID32(),
				Type:         domainEvent.TypeOfferRejected,
				LoanID:       &l.ID,
				Actor:        in.Caller,
				Counterparty: l.Borrower,
			})
		}

		o := &domainLoan.Offer{
			LoanID:          l.ID,
			Lender:          in.Caller,
			InterestOffered: in.InterestOffered,
		}
		if err := r.Loans.AppendOffer(ctx, o); err != nil {
			return err
		}
		dto.Offer = &OfferDTO{
			LoanID:          l.ID,
			OfferIndex:      o.Idx,
			Lender:          o.Lender,
			InterestOffered: o.InterestOffered,
			CreatedAt:       o.CreatedAt,
		}
		return r.Events.Append(ctx, &domainEvent.Event{
			EventID:      id.NewID32(),
			Type:         domainEvent.TypeOfferSubmitted,
			LoanID:       &l.ID,
			Actor:        in.Caller,
			Counterparty: l.Borrower,
			Amount:       in.InterestOffered,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// GetOffers returns the full offer list in submission order.
func (u *Usecase) GetOffers(ctx context.Context, loanID uint64) ([]OfferDTO, error) {
	if _, err := u.loans.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	rows, err := u.loans.ListOffers(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]OfferDTO, 0, len(rows))
	for _, o := range rows {
		out = append(out, OfferDTO{
			LoanID:          o.LoanID,
			OfferIndex:      o.Idx,
			Lender:          o.Lender,
			InterestOffered: o.InterestOffered,
			CreatedAt:       o.CreatedAt,
		})
	}
	return out, nil
}

// Accept binds the loan to one offer. Selection is single-shot and
// irreversible; the remaining offers stay in history but are no longer
// actionable.
func (u *Usecase) Accept(ctx context.Context, in AcceptInput) (*AcceptanceDTO, error) {
	var dto *AcceptanceDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Borrower != in.Caller {
			return domainLoan.ErrNotBorrower
		}
		if l.Funded {
			return domainLoan.ErrAlreadyFunded
		}
		if l.SelectedLender != nil {
			return domainLoan.ErrAlreadySelected
		}

		o, err := r.Loans.GetOffer(ctx, in.LoanID, in.OfferIndex)
		if err != nil {
			return err
		}
		// the chosen lender must still be registered at acceptance time
		if _, err := r.Lenders.GetByAddress(ctx, o.Lender); err != nil {
			return err
		}

		l.SelectedLender = &o.Lender
		l.Interest = o.InterestOffered
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &domainEvent.Event{
			EventID:      id.NewID32(),
			Type:         domainEvent.TypeOfferAccepted,
			LoanID:       &l.ID,
			Actor:        in.Caller,
			Counterparty: o.Lender,
			Amount:       o.InterestOffered,
		}); err != nil {
			return err
		}
		dto = &AcceptanceDTO{
			LoanID:         l.ID,
			SelectedLender: o.Lender,
			Interest:       o.InterestOffered,
			OfferIndex:     o.Idx,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
