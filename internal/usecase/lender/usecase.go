package lender

import (
	"context"
	"errors"
	"strings"

	domainEvent "peerlend/internal/domain/event"
	domainLender "peerlend/internal/domain/lender"
	"peerlend/internal/domain/uow"
	"peerlend/pkg/id"
)

type Usecase struct {
	lenders domainLender.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(lenders domainLender.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{lenders: lenders, uow: tx}
}

// Register marks the caller as a lender. Registration is one-way; a second
// call fails with ErrAlreadyRegistered.
func (u *Usecase) Register(ctx context.Context, caller string) (*LenderDTO, error) {
	var dto *LenderDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Lenders.GetByAddress(ctx, caller)
		switch {
		case err == nil:
			return domainLender.ErrAlreadyRegistered
		case !errors.Is(err, domainLender.ErrNotRegistered):
			return err
		}

		l := &domainLender.Lender{Address: caller}
		if err := r.Lenders.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Events.Append(ctx, &domainEvent.Event{
			EventID: id.NewID32(),
			Type:    domainEvent.TypeLenderRegistered,
			Actor:   caller,
		}); err != nil {
			return err
		}
		dto = &LenderDTO{Address: l.Address, RegisteredAt: l.CreatedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SetRequiredProofs replaces the caller's entire requirement list; last write
// wins.
func (u *Usecase) SetRequiredProofs(ctx context.Context, caller string, refs []string) error {
	if len(refs) == 0 {
		return domainLender.ErrEmptyRequirements
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Lenders.GetByAddress(ctx, caller); err != nil {
			return err
		}
		if err := r.Lenders.ReplaceRequirements(ctx, caller, refs); err != nil {
			return err
		}
		return r.Events.Append(ctx, &domainEvent.Event{
			EventID: id.NewID32(),
			Type:    domainEvent.TypeRequirementsSet,
			Actor:   caller,
			Detail:  strings.Join(refs, ","),
		})
	})
}

func (u *Usecase) AddRequiredProof(ctx context.Context, caller, ref string) error {
	if strings.TrimSpace(ref) == "" {
		return domainLender.ErrEmptyRequirements
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Lenders.GetByAddress(ctx, caller); err != nil {
			return err
		}
		if err := r.Lenders.AddRequirement(ctx, caller, ref); err != nil {
			return err
		}
		return r.Events.Append(ctx, &domainEvent.Event{
			EventID: id.NewID32(),
			Type:    domainEvent.TypeRequirementAdded,
			Actor:   caller,
			Detail:  ref,
		})
	})
}

// RemoveRequiredProof removes ref by swapping the last list entry into its
// slot; only set membership is stable afterwards.
func (u *Usecase) RemoveRequiredProof(ctx context.Context, caller, ref string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Lenders.GetByAddress(ctx, caller); err != nil {
			return err
		}
		if err := r.Lenders.RemoveRequirement(ctx, caller, ref); err != nil {
			return err
		}
		return r.Events.Append(ctx, &domainEvent.Event{
			EventID: id.NewID32(),
			Type:    domainEvent.TypeRequirementRemoved,
			Actor:   caller,
			Detail:  ref,
		})
	})
}

// GetRequiredProofs returns the lender's current list in position order.
func (u *Usecase) GetRequiredProofs(ctx context.Context, lenderAddr string) (*RequirementsDTO, error) {
	if _, err := u.lenders.GetByAddress(ctx, lenderAddr); err != nil {
		return nil, err
	}
	rows, err := u.lenders.ListRequirements(ctx, lenderAddr)
	if err != nil {
		return nil, err
	}
	refs := make([]string, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, row.Ref)
	}
	return &RequirementsDTO{Lender: lenderAddr, Refs: refs}, nil
}

// GetFundedLoans returns the lender's append-only funded-loan log.
func (u *Usecase) GetFundedLoans(ctx context.Context, lenderAddr string) ([]FundedLoanDTO, error) {
	if _, err := u.lenders.GetByAddress(ctx, lenderAddr); err != nil {
		return nil, err
	}
	rows, err := u.lenders.ListFundedLoans(ctx, lenderAddr)
	if err != nil {
		return nil, err
	}
	out := make([]FundedLoanDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FundedLoanDTO{LoanID: row.LoanID, FundedAt: row.CreatedAt})
	}
	return out, nil
}
