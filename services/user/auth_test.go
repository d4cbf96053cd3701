package user

import (
	"context"
	"testing"

	userRepo "homeserve/database/repository/user"
	"homeserve/models"

	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	GetByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) FindEligibleProviders(ctx context.Context, criteria userRepo.EligibleProviderCriteria) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) SetVerified(ctx context.Context, id string, verified bool) error { return nil }

func (s *stubUserRepo) UpdateLocation(ctx context.Context, id string, lng, lat float64) error {
	return nil
}

func (s *stubUserRepo) UpdatePushToken(ctx context.Context, id string, token string) error {
	return nil
}

func (s *stubUserRepo) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	return nil
}

func (s *stubUserRepo) UpdateProfileImage(ctx context.Context, id string, imageURL string) error {
	return nil
}

func (s *stubUserRepo) AwardEarnings(ctx context.Context, providerID string, amount float64) error {
	return nil
}

func (s *stubUserRepo) AwardLoyaltyPoints(ctx context.Context, providerID string, points int) (int, error) {
	return points, nil
}

func (s *stubUserRepo) ConvertGiftCredit(ctx context.Context, providerID string) (bool, error) {
	return false, nil
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: &stubUserRepo{}}
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@b.com", Password: "password1"}},
		{"missing email", RegisterRequest{Name: "A", Password: "password1"}},
		{"missing password", RegisterRequest{Name: "A", Email: "a@b.com"}},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.com", Password: "short"}},
		{"bad role", RegisterRequest{Name: "A", Email: "a@b.com", Password: "password1", Role: "admin"}},
		{"provider without category", RegisterRequest{Name: "A", Email: "a@b.com", Password: "password1", Role: models.RoleProvider}},
	}
	for _, c := range cases {
		if _, err := svc.Register(ctx, c.req); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: &stubUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Email: email}, nil
		},
	}}

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "A", Email: "a@b.com", Password: "password1",
	})
	if err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	svc := &DefaultUserService{Repo: &stubUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == "known@b.com" {
				return &models.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
			}
			return nil, nil
		},
	}}
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, "unknown@b.com", "whatever"); err == nil {
		t.Error("unknown email must fail")
	}
	if _, err := svc.Authenticate(ctx, "known@b.com", "wrong-password"); err == nil {
		t.Error("wrong password must fail")
	}
}
