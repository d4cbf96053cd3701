package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "homeserve/database/repository/user"
	"homeserve/models"
	"homeserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register validates and persists a new account, then issues a token.
func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleProvider {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if role == models.RoleProvider && strings.TrimSpace(req.ServiceCategory) == "" {
		return nil, fmt.Errorf("providers must declare a service category")
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:    string(hashedPassword),
		Role:            role,
		Phone:           req.Phone,
		ServiceCategory: strings.TrimSpace(req.ServiceCategory),
		WorkingHours:    req.WorkingHours,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Lat != 0 || req.Lng != 0 {
		userObj.LocationGeo = models.NewGeoPoint(req.Lng, req.Lat)
	}

	if err := s.Repo.Create(ctx, &userObj); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	s.cacheToken(ctx, userObj.ID, token)

	return &AuthResponse{Token: token, User: userObj.ToDTO()}, nil
}

// Authenticate checks credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	s.cacheToken(ctx, userRec.ID, token)

	return &AuthResponse{Token: token, User: userRec.ToDTO()}, nil
}

// GetByID fetches one account.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// cacheToken stores the token hash so the auth middleware can validate
// without a DB round trip.
func (s *DefaultUserService) cacheToken(ctx context.Context, userID, token string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	key := utils.AuthCachePrefix + userID
	if err := authCache.Set(ctx, key, utils.HashToken(token), tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.Error(err))
	}
}
