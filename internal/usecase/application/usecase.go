package application

import (
	"context"
	"errors"

	domainApp "peerlend/internal/domain/application"
	domainEvent "peerlend/internal/domain/event"
	domainLender "peerlend/internal/domain/lender"
	domainLoan "peerlend/internal/domain/loan"
	"peerlend/internal/domain/oracle"
	"peerlend/internal/domain/uow"
	"peerlend/pkg/id"
)

type Usecase struct {
	oracle oracle.ProofOracle
	uow    uow.UnitOfWork
}

func NewUsecase(po oracle.ProofOracle, tx uow.UnitOfWork) *Usecase {
	return &Usecase{oracle: po, uow: tx}
}

// Apply gates the borrower's application to one lender behind that lender's
// full proof-requirement list. The scan is all-or-nothing: the first
// unverified requirement aborts before the application record is written.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Borrower != in.Caller {
			return domainLoan.ErrNotBorrower
		}
		if l.Funded {
			return domainLoan.ErrAlreadyFunded
		}
		if _, err := r.Lenders.GetByAddress(ctx, in.Lender); err != nil {
			return err
		}

		_, err := r.Applications.GetApplication(ctx, in.LoanID, in.Lender)
		switch {
		case err == nil:
			return domainApp.ErrAlreadyApplied
		case !errors.Is(err, domainApp.ErrNotFound):
			return err
		}

		reqs, err := r.Lenders.ListRequirements(ctx, in.Lender)
		if err != nil {
			return err
		}
		if len(reqs) == 0 {
			return domainLender.ErrNoRequirementsSet
		}

		if err := u.verifyAll(ctx, in.Caller, reqs, in.Presentations); err != nil {
			return err
		}

		a := &domainApp.Application{LoanID: in.LoanID, Lender: in.Lender}
		if err := r.Applications.CreateApplication(ctx, a); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &domainEvent.Event{
			EventID:      id.NewID32(),
			Type:         domainEvent.TypeLoanApplied,
			LoanID:       &l.ID,
			Actor:        in.Caller,
			Counterparty: in.Lender,
		}); err != nil {
			return err
		}
		dto = &ApplicationDTO{
			LoanID:    l.ID,
			Borrower:  l.Borrower,
			Lender:    in.Lender,
			AppliedAt: a.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// verifyAll checks requirement i against presentation/status i, in list
// order, short-circuiting on the first failure. The oracle is only read.
func (u *Usecase) verifyAll(ctx context.Context, subject string, reqs []domainLender.ProofRequirement, presentations []string) error {
	if len(presentations) == 0 {
		for _, req := range reqs {
			ok, err := u.oracle.ProofStatus(ctx, subject, req.Ref)
			if err != nil {
				return err
			}
			if !ok {
				return domainApp.ErrProofNotVerified
			}
		}
		return nil
	}

	if len(presentations) != len(reqs) {
		return domainApp.ErrPresentationCountMismatch
	}
	for i, req := range reqs {
		ok, err := u.oracle.Verify(ctx, req.Ref, presentations[i])
		if err != nil {
			return err
		}
		if !ok {
			return domainApp.ErrProofNotVerified
		}
	}
	return nil
}
