package order

import (
	"context"
	"testing"

	"shop-backend/internal/domain"
)

type stubRepo struct {
	email string
	page  domain.PageRequest
}

func (s *stubRepo) ListByCustomerEmail(_ context.Context, email string, page domain.PageRequest) (domain.Page[*domain.Order], error) {
	s.email = email
	s.page = page
	return domain.Page[*domain.Order]{Items: []*domain.Order{{TrackingNumber: "t-1"}}, Number: page.Number, Size: page.Size, TotalElements: 1}, nil
}

func TestHistory_PassesEmailThroughUnchanged(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	got, err := svc.History(context.Background(), " Ada@X.com", domain.NewPageRequest(1, 5))
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if repo.email != " Ada@X.com" {
		t.Fatalf("email should not be normalised, got %q", repo.email)
	}
	if repo.page.Number != 1 || repo.page.Size != 5 {
		t.Fatalf("unexpected page request %+v", repo.page)
	}
	if len(got.Items) != 1 || got.Items[0].TrackingNumber != "t-1" {
		t.Fatalf("unexpected page %+v", got)
	}
}
