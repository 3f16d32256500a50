package verifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProofStatus_SendsQueryAndParsesResult(t *testing.T) {
	var gotPath, gotSubject, gotRef string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSubject = r.URL.Query().Get("subject")
		gotRef = r.URL.Query().Get("request_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_verified":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ok, err := c.ProofStatus(context.Background(), strings.Repeat("1", 40), "kyc&basic")
	if err != nil {
		t.Fatalf("ProofStatus: %v", err)
	}
	if !ok {
		t.Fatal("expected verified")
	}
	if gotPath != "/status" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotSubject != strings.Repeat("1", 40) {
		t.Fatalf("subject: got %q", gotSubject)
	}
	if gotRef != "kyc&basic" {
		t.Fatalf("request_id not query-escaped round trip: got %q", gotRef)
	}
}

func TestProofStatus_FalseResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"is_verified":false}`))
	}))
	defer srv.Close()

	ok, err := NewClient(srv.URL).ProofStatus(context.Background(), "s", "r")
	if err != nil {
		t.Fatalf("ProofStatus: %v", err)
	}
	if ok {
		t.Fatal("expected not verified")
	}
}

func TestProofStatus_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).ProofStatus(context.Background(), "s", "r"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestVerify_PostsPayloadAndParsesResult(t *testing.T) {
	var got verifyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/verify" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	ok, err := NewClient(srv.URL).Verify(context.Background(), strings.Repeat("a", 32), "presentation-blob")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected valid")
	}
	if got.VerifierRef != strings.Repeat("a", 32) {
		t.Fatalf("verifier_ref: got %q", got.VerifierRef)
	}
	if got.Presentation != "presentation-blob" {
		t.Fatalf("presentation: got %q", got.Presentation)
	}
}

func TestVerify_InvalidPresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid":false}`))
	}))
	defer srv.Close()

	ok, err := NewClient(srv.URL).Verify(context.Background(), "ref", "bad")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected invalid")
	}
}

func TestVerify_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Verify(context.Background(), "ref", "p"); err == nil {
		t.Fatal("expected error on 502")
	}
}
