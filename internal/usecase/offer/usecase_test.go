package offer

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainApp "peerlend/internal/domain/application"
	domainEvent "peerlend/internal/domain/event"
	domainLender "peerlend/internal/domain/lender"
	domainLoan "peerlend/internal/domain/loan"
	"peerlend/internal/domain/uow"
	"peerlend/internal/testutil/appmock"
	"peerlend/internal/testutil/eventmock"
	"peerlend/internal/testutil/lendermock"
	"peerlend/internal/testutil/loanmock"
	"peerlend/internal/testutil/uowmock"
)

var (
	borrowerAddr = strings.Repeat("1", 40)
	lenderAddr   = strings.Repeat("a", 40)
)

type fixture struct {
	loan   *domainLoan.Loan
	loans  *loanmock.Repo
	lender *lendermock.Repo
	apps   *appmock.Repo
	events *eventmock.Repo
	uc     *Usecase
}

// newFixture wires an open loan with max interest 500, a registered lender,
// and an existing application from the borrower to that lender.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		loan: &domainLoan.Loan{ID: 7, Borrower: borrowerAddr, AmountRequested: 10_000, MaxInterest: 500},
	}
	f.loans = &loanmock.Repo{
		GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) { return f.loan, nil },
		GetByIDFn:          func(context.Context, uint64) (*domainLoan.Loan, error) { return f.loan, nil },
		AppendOfferFn: func(_ context.Context, o *domainLoan.Offer) error {
			o.Idx = 0
			return nil
		},
	}
	f.lender = &lendermock.Repo{
		GetByAddressFn: func(_ context.Context, address string) (*domainLender.Lender, error) {
			return &domainLender.Lender{Address: address}, nil
		},
	}
	f.apps = &appmock.Repo{
		GetApplicationFn: func(_ context.Context, loanID uint64, lender string) (*domainApp.Application, error) {
			return &domainApp.Application{LoanID: loanID, Lender: lender}, nil
		},
	}
	f.events = &eventmock.Repo{}
	m := uowmock.NewPassthrough(uow.Repos{
		Loans:        f.loans,
		Lenders:      f.lender,
		Applications: f.apps,
		Events:       f.events,
	})
	f.uc = NewUsecase(f.loans, m)
	return f
}

func TestReview_Accept_AppendsOffer(t *testing.T) {
	f := newFixture(t)
	var review *domainApp.Review
	f.apps.CreateReviewFn = func(_ context.Context, r *domainApp.Review) error {
		review = r
		return nil
	}

	dto, err := f.uc.Review(context.Background(), ReviewInput{
		LoanID: 7, Caller: lenderAddr, Accept: true, InterestOffered: 300,
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if review == nil || !review.Accepted {
		t.Fatalf("review row mismatch: %+v", review)
	}
	if dto.Offer == nil || dto.Offer.OfferIndex != 0 || dto.Offer.InterestOffered != 300 {
		t.Fatalf("offer DTO mismatch: %+v", dto.Offer)
	}
	if types := f.events.Types(); len(types) != 1 || types[0] != domainEvent.TypeOfferSubmitted {
		t.Fatalf("event types = %v", types)
	}
	if f.events.Appended[0].Amount != 300 {
		t.Fatalf("event amount = %d", f.events.Appended[0].Amount)
	}
}

func TestReview_Reject_NoOffer(t *testing.T) {
	f := newFixture(t)
	f.loans.AppendOfferFn = func(context.Context, *domainLoan.Offer) error {
		t.Fatal("rejection must not append an offer")
		return nil
	}

	dto, err := f.uc.Review(context.Background(), ReviewInput{LoanID: 7, Caller: lenderAddr, Accept: false})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if dto.Accepted || dto.Offer != nil {
		t.Fatalf("reject DTO mismatch: %+v", dto)
	}
	if types := f.events.Types(); len(types) != 1 || types[0] != domainEvent.TypeOfferRejected {
		t.Fatalf("event types = %v", types)
	}
}

func TestReview_OfferAboveMax(t *testing.T) {
	f := newFixture(t)
	f.apps.CreateReviewFn = func(context.Context, *domainApp.Review) error {
		t.Fatal("no review row when the offer exceeds the cap")
		return nil
	}
	_, err := f.uc.Review(context.Background(), ReviewInput{
		LoanID: 7, Caller: lenderAddr, Accept: true, InterestOffered: 501,
	})
	if !errors.Is(err, domainLoan.ErrOfferTooHigh) {
		t.Fatalf("want ErrOfferTooHigh, got %v", err)
	}
}

func TestReview_RejectIgnoresInterestCap(t *testing.T) {
	f := newFixture(t)
	// a reject with an over-cap figure still goes through; the figure is unused
	if _, err := f.uc.Review(context.Background(), ReviewInput{
		LoanID: 7, Caller: lenderAddr, Accept: false, InterestOffered: 9_999,
	}); err != nil {
		t.Fatalf("Review: %v", err)
	}
}

func TestReview_Twice(t *testing.T) {
	f := newFixture(t)
	f.apps.GetReviewFn = func(_ context.Context, loanID uint64, lender string) (*domainApp.Review, error) {
		return &domainApp.Review{LoanID: loanID, Lender: lender, Accepted: false}, nil
	}
	_, err := f.uc.Review(context.Background(), ReviewInput{LoanID: 7, Caller: lenderAddr, Accept: true, InterestOffered: 100})
	if !errors.Is(err, domainApp.ErrAlreadyReviewed) {
		t.Fatalf("want ErrAlreadyReviewed, got %v", err)
	}
}

func TestReview_NoApplication(t *testing.T) {
	f := newFixture(t)
	f.apps.GetApplicationFn = func(context.Context, uint64, string) (*domainApp.Application, error) {
		return nil, domainApp.ErrNotFound
	}
	_, err := f.uc.Review(context.Background(), ReviewInput{LoanID: 7, Caller: lenderAddr, Accept: true})
	if !errors.Is(err, domainApp.ErrNoApplication) {
		t.Fatalf("want ErrNoApplication, got %v", err)
	}
}

func TestReview_FundedLoan(t *testing.T) {
	f := newFixture(t)
	f.loan.Funded = true
	_, err := f.uc.Review(context.Background(), ReviewInput{LoanID: 7, Caller: lenderAddr, Accept: true})
	if !errors.Is(err, domainLoan.ErrAlreadyFunded) {
		t.Fatalf("want ErrAlreadyFunded, got %v", err)
	}
}

func TestReview_UnregisteredCaller(t *testing.T) {
	f := newFixture(t)
	f.lender.GetByAddressFn = func(context.Context, string) (*domainLender.Lender, error) {
		return nil, domainLender.ErrNotRegistered
	}
	_, err := f.uc.Review(context.Background(), ReviewInput{LoanID: 7, Caller: lenderAddr, Accept: true})
	if !errors.Is(err, domainLender.ErrNotRegistered) {
		t.Fatalf("want ErrNotRegistered, got %v", err)
	}
}

func TestGetOffers_SubmissionOrder(t *testing.T) {
	f := newFixture(t)
	other := strings.Repeat("b", 40)
	f.loans.ListOffersFn = func(context.Context, uint64) ([]domainLoan.Offer, error) {
		return []domainLoan.Offer{
			{LoanID: 7, Idx: 0, Lender: lenderAddr, InterestOffered: 300},
			{LoanID: 7, Idx: 1, Lender: other, InterestOffered: 250},
		}, nil
	}
	got, err := f.uc.GetOffers(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetOffers: %v", err)
	}
	if len(got) != 2 || got[0].OfferIndex != 0 || got[1].OfferIndex != 1 {
		t.Fatalf("offers mismatch: %+v", got)
	}
	if got[1].Lender != other || got[1].InterestOffered != 250 {
		t.Fatalf("second offer mismatch: %+v", got[1])
	}
}

func TestGetOffers_MissingLoan(t *testing.T) {
	f := newFixture(t)
	f.loans.GetByIDFn = func(context.Context, uint64) (*domainLoan.Loan, error) {
		return nil, domainLoan.ErrNotFound
	}
	if _, err := f.uc.GetOffers(context.Background(), 99); !errors.Is(err, domainLoan.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAccept_Happy(t *testing.T) {
	f := newFixture(t)
	f.loans.GetOfferFn = func(_ context.Context, loanID uint64, idx int) (*domainLoan.Offer, error) {
		return &domainLoan.Offer{LoanID: loanID, Idx: idx, Lender: lenderAddr, InterestOffered: 300}, nil
	}
	saved := false
	f.loans.SaveFn = func(_ context.Context, l *domainLoan.Loan) error {
		saved = true
		if l.SelectedLender == nil || *l.SelectedLender != lenderAddr || l.Interest != 300 {
			t.Fatalf("loan not bound to offer: %+v", l)
		}
		return nil
	}

	dto, err := f.uc.Accept(context.Background(), AcceptInput{LoanID: 7, Caller: borrowerAddr, OfferIndex: 0})
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if !saved {
		t.Fatal("loan not saved")
	}
	if dto.SelectedLender != lenderAddr || dto.Interest != 300 || dto.OfferIndex != 0 {
		t.Fatalf("DTO mismatch: %+v", dto)
	}
	if types := f.events.Types(); len(types) != 1 || types[0] != domainEvent.TypeOfferAccepted {
		t.Fatalf("event types = %v", types)
	}
}

func TestAccept_NotBorrower(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Accept(context.Background(), AcceptInput{LoanID: 7, Caller: lenderAddr, OfferIndex: 0})
	if !errors.Is(err, domainLoan.ErrNotBorrower) {
		t.Fatalf("want ErrNotBorrower, got %v", err)
	}
}

func TestAccept_SecondSelection(t *testing.T) {
	f := newFixture(t)
	f.loan.SelectedLender = &lenderAddr
	_, err := f.uc.Accept(context.Background(), AcceptInput{LoanID: 7, Caller: borrowerAddr, OfferIndex: 0})
	if !errors.Is(err, domainLoan.ErrAlreadySelected) {
		t.Fatalf("want ErrAlreadySelected, got %v", err)
	}
}

func TestAccept_InvalidIndex(t *testing.T) {
	f := newFixture(t)
	f.loans.GetOfferFn = func(context.Context, uint64, int) (*domainLoan.Offer, error) {
		return nil, domainLoan.ErrInvalidOfferIndex
	}
	_, err := f.uc.Accept(context.Background(), AcceptInput{LoanID: 7, Caller: borrowerAddr, OfferIndex: 5})
	if !errors.Is(err, domainLoan.ErrInvalidOfferIndex) {
		t.Fatalf("want ErrInvalidOfferIndex, got %v", err)
	}
}

func TestAccept_LenderNoLongerRegistered(t *testing.T) {
	f := newFixture(t)
	f.loans.GetOfferFn = func(_ context.Context, loanID uint64, idx int) (*domainLoan.Offer, error) {
		return &domainLoan.Offer{LoanID: loanID, Idx: idx, Lender: lenderAddr, InterestOffered: 300}, nil
	}
	f.lender.GetByAddressFn = func(context.Context, string) (*domainLender.Lender, error) {
		return nil, domainLender.ErrNotRegistered
	}
	f.loans.SaveFn = func(context.Context, *domainLoan.Loan) error {
		t.Fatal("selection must not be saved for an unregistered lender")
		return nil
	}
	_, err := f.uc.Accept(context.Background(), AcceptInput{LoanID: 7, Caller: borrowerAddr, OfferIndex: 0})
	if !errors.Is(err, domainLender.ErrNotRegistered) {
		t.Fatalf("want ErrNotRegistered, got %v", err)
	}
}

func TestAccept_FundedLoan(t *testing.T) {
	f := newFixture(t)
	f.loan.Funded = true
	_, err := f.uc.Accept(context.Background(), AcceptInput{LoanID: 7, Caller: borrowerAddr, OfferIndex: 0})
	if !errors.Is(err, domainLoan.ErrAlreadyFunded) {
		t.Fatalf("want ErrAlreadyFunded, got %v", err)
	}
}
