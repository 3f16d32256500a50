package settlement

import (
	"context"
	"fmt"
	"math"
	"time"

	domainEvent "peerlend/internal/domain/event"
	domainLoan "peerlend/internal/domain/loan"
	"peerlend/internal/domain/lock"
	"peerlend/internal/domain/token"
	"peerlend/internal/domain/uow"
	"peerlend/pkg/id"
)

// Usecase executes the two value-transfer steps of a loan. Both run under a
// per-loan mutual-exclusion guard because the token service call can re-enter
// this API before it returns, and both follow validate → external transfer →
// commit ordering: the funded/repaid flags are only written after the
// transfer succeeded, and a failed transfer rolls the whole transaction back.
type Usecase struct {
	transferer token.Transferer
	guard      lock.Locker
	uow        uow.UnitOfWork
	now        func() time.Time
}

func NewUsecase(t token.Transferer, guard lock.Locker, tx uow.UnitOfWork) *Usecase {
	return &Usecase{transferer: t, guard: guard, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

func guardKey(loanID uint64) string { return fmt.Sprintf("settlement:%d", loanID) }

// Fund moves the principal from the selected lender to the borrower and
// marks the loan funded.
func (u *Usecase) Fund(ctx context.Context, loanID uint64, caller string) (*FundResultDTO, error) {
	key := guardKey(loanID)
	if err := u.guard.Acquire(ctx, key); err != nil {
		return nil, err
	}
	defer func() { _ = u.guard.Release(ctx, key) }()

	var dto *FundResultDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.SelectedLender == nil || *l.SelectedLender != caller {
			return domainLoan.ErrNotSelectedLender
		}
		if l.Funded {
			return domainLoan.ErrAlreadyFunded
		}

		if err := u.transferer.TransferFrom(ctx, l.Token, caller, l.Borrower, l.AmountRequested); err != nil {
			return err
		}

		l.Funded = true
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Lenders.AppendFundedLoan(ctx, caller, l.ID); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &domainEvent.Event{
			EventID:      id.NewID32(),
			Type:         domainEvent.TypeLoanFunded,
			LoanID:       &l.ID,
			Actor:        caller,
			Counterparty: l.Borrower,
			Amount:       l.AmountRequested,
		}); err != nil {
			return err
		}
		dto = &FundResultDTO{
			LoanID:   l.ID,
			Lender:   caller,
			Borrower: l.Borrower,
			Amount:   l.AmountRequested,
			Funded:   true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Repay moves principal plus interest back to the selected lender and marks
// the loan repaid. Repayment must happen on or before the due date.
func (u *Usecase) Repay(ctx context.Context, loanID uint64, caller string) (*RepayResultDTO, error) {
	key := guardKey(loanID)
	if err := u.guard.Acquire(ctx, key); err != nil {
		return nil, err
	}
	defer func() { _ = u.guard.Release(ctx, key) }()

	var dto *RepayResultDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Borrower != caller {
			return domainLoan.ErrNotBorrower
		}
		if !l.Funded {
			return domainLoan.ErrNotFunded
		}
		if l.Repaid {
			return domainLoan.ErrAlreadyRepaid
		}
		if u.now().After(l.DueDate) {
			return domainLoan.ErrPastDue
		}

		if l.AmountRequested > math.MaxInt64-l.Interest {
			return domainLoan.ErrAmountOverflow
		}
		totalDue := l.AmountRequested + l.Interest

		lender := *l.SelectedLender
		if err := u.transferer.TransferFrom(ctx, l.Token, caller, lender, totalDue); err != nil {
			return err
		}

		l.Repaid = true
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &domainEvent.Event{
			EventID:      id.NewID32(),
			Type:         domainEvent.TypeLoanRepaid,
			LoanID:       &l.ID,
			Actor:        caller,
			Counterparty: lender,
			Amount:       totalDue,
		}); err != nil {
			return err
		}
		dto = &RepayResultDTO{
			LoanID:   l.ID,
			Borrower: caller,
			Lender:   lender,
			TotalDue: totalDue,
			Repaid:   true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
