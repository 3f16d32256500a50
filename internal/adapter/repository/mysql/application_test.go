package mysql

import (
	"context"
	"errors"
	"testing"

	domain "peerlend/internal/domain/application"
)

func TestApplication_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := &domain.Application{LoanID: 7, Lender: addr('a')}
	if err := repo.CreateApplication(ctx, a); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	got, err := repo.GetApplication(ctx, 7, addr('a'))
	if err != nil {
		t.Fatalf("GetApplication: %v", err)
	}
	if got.LoanID != 7 || got.Lender != addr('a') {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	if _, err := repo.GetApplication(ctx, 7, addr('b')); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("other lender: want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetApplication(ctx, 8, addr('a')); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("other loan: want ErrNotFound, got %v", err)
	}
}

func TestApplication_DuplicateBecomesAlreadyApplied(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	if err := repo.CreateApplication(ctx, &domain.Application{LoanID: 7, Lender: addr('a')}); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	err := repo.CreateApplication(ctx, &domain.Application{LoanID: 7, Lender: addr('a')})
	if !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("want ErrAlreadyApplied, got %v", err)
	}

	// same lender on a different loan is fine
	if err := repo.CreateApplication(ctx, &domain.Application{LoanID: 8, Lender: addr('a')}); err != nil {
		t.Fatalf("different loan: %v", err)
	}
}

func TestReview_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	r := &domain.Review{LoanID: 7, Lender: addr('a'), Accepted: true}
	if err := repo.CreateReview(ctx, r); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	got, err := repo.GetReview(ctx, 7, addr('a'))
	if err != nil {
		t.Fatalf("GetReview: %v", err)
	}
	if !got.Accepted {
		t.Fatalf("accepted flag lost: %+v", got)
	}

	if _, err := repo.GetReview(ctx, 7, addr('b')); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReview_DuplicateBecomesAlreadyReviewed(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	if err := repo.CreateReview(ctx, &domain.Review{LoanID: 7, Lender: addr('a'), Accepted: false}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	// switching the verdict does not help; the row is write-once
	err := repo.CreateReview(ctx, &domain.Review{LoanID: 7, Lender: addr('a'), Accepted: true})
	if !errors.Is(err, domain.ErrAlreadyReviewed) {
		t.Fatalf("want ErrAlreadyReviewed, got %v", err)
	}
}
