package loan

import (
	"context"
	"time"

	domainEvent "peerlend/internal/domain/event"
	domainLoan "peerlend/internal/domain/loan"
	"peerlend/internal/domain/uow"
	"peerlend/pkg/id"
)

type Usecase struct {
	loans  domainLoan.Repository
	events domainEvent.Repository
	uow    uow.UnitOfWork
}

func NewUsecase(loans domainLoan.Repository, events domainEvent.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, events: events, uow: tx}
}

func toDTO(l *domainLoan.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:          l.ID,
		Borrower:        l.Borrower,
		Token:           l.Token,
		AmountRequested: l.AmountRequested,
		MaxInterest:     l.MaxInterest,
		DueDate:         l.DueDate,
		Interest:        l.Interest,
		Funded:          l.Funded,
		Repaid:          l.Repaid,
		CreatedAt:       l.CreatedAt,
	}
	if l.SelectedLender != nil {
		dto.SelectedLender = *l.SelectedLender
	}
	return dto
}

// Request opens a new loan on the ledger. The assigned id is sequential and
// never reused.
func (u *Usecase) Request(ctx context.Context, in RequestLoanInput) (*LoanDTO, error) {
	if in.AmountRequested <= 0 {
		return nil, domainLoan.ErrInvalidAmount
	}
	if in.MaxInterest < 0 {
		return nil, domainLoan.ErrInvalidInterest
	}
	if !in.DueDate.After(time.Now().UTC()) {
		return nil, domainLoan.ErrDueDateNotFuture
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l := &domainLoan.Loan{
			Borrower:        in.Borrower,
			Token:           in.Token,
			AmountRequested: in.AmountRequested,
			MaxInterest:     in.MaxInterest,
			DueDate:         in.DueDate.UTC(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &domainEvent.Event{
			EventID: id.NewID32(),
			Type:    domainEvent.TypeLoanRequested,
			LoanID:  &l.ID,
			Actor:   in.Borrower,
			Amount:  in.AmountRequested,
		}); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Events returns the loan's audit trail in append order.
func (u *Usecase) Events(ctx context.Context, loanID uint64) ([]EventDTO, error) {
	if _, err := u.loans.GetByID(ctx, loanID); err != nil {
		return nil, err
	}
	rows, err := u.events.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]EventDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, EventDTO{
			EventID:      e.EventID,
			Type:         e.Type,
			Actor:        e.Actor,
			Counterparty: e.Counterparty,
			Amount:       e.Amount,
			Detail:       e.Detail,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out, nil
}
