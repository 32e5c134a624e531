package authentication

import (
	"context"
	"errors"
	"strings"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "User"

type Service struct {
	repo       Repository
	expiryDays int
	now        func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:       repo,
		expiryDays: helper.GetenvInt("JWT_EXPIRY_DAYS", 7),
		now:        time.Now,
	}
}

func (s *Service) token(u User) (string, error) {
	claims := helper.GetNewJWTClaim()
	claims["id"] = u.ID.Hex()
	claims["email"] = u.Email
	claims["role"] = u.Role
	return helper.GenerateJWTToken(claims, s.expiryDays)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.ValidateStruct(entity, req); err != nil {
		return LoginResponse{}, err
	}
	if req.Role == "" {
		req.Role = RoleSupplier
	}
	hash, err := helper.GeneratePasswordHash(req.Password)
	if err != nil {
		return LoginResponse{}, helper.Unexpected("CREATE_ERROR", err.Error())
	}
	now := s.now().UTC()
	u, err := s.repo.Create(ctx, User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Role:      req.Role,
		Company:   req.Company,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, database.ErrDuplicate) {
		return LoginResponse{}, helper.Duplicate("User with email " + req.Email + " already exists")
	}
	if err != nil {
		return LoginResponse{}, database.Normalize(err, entity, "CREATE_ERROR")
	}
	token, err := s.token(u)
	if err != nil {
		return LoginResponse{}, helper.Unexpected("TOKEN_ERROR", err.Error())
	}
	return LoginResponse{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct("Login", req); err != nil {
		return LoginResponse{}, err
	}
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, database.ErrNotFound) {
		return LoginResponse{}, helper.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return LoginResponse{}, database.Normalize(err, entity, "FETCH_ERROR")
	}
	if !helper.CheckPasswordHash(req.Password, u.Password) {
		return LoginResponse{}, helper.Unauthorized("Invalid email or password")
	}
	token, err := s.token(u)
	if err != nil {
		return LoginResponse{}, helper.Unexpected("TOKEN_ERROR", err.Error())
	}
	return LoginResponse{Token: token, User: u}, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (User, error) {
	oid, err := helper.ParseObjectID(userID, "user")
	if err != nil {
		return User{}, err
	}
	u, err := s.repo.GetByID(ctx, oid)
	return u, database.Normalize(err, entity, "FETCH_ERROR")
}

// UpdateProfile merges the body over the stored profile. Email, role and password are not touched.
func (s *Service) UpdateProfile(ctx context.Context, userID string, body []byte) (User, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return User{}, err
	}
	in := u.profile()
	if err := helper.MergeBody(&in, body); err != nil {
		return User{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := helper.ValidateStruct(entity, in); err != nil {
		return User{}, err
	}
	updated, err := s.repo.UpdateProfile(ctx, u.ID, in)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if err := helper.ValidateStruct("Password", req); err != nil {
		return err
	}
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if !helper.CheckPasswordHash(req.OldPassword, u.Password) {
		return helper.BadRequest("Current password is incorrect")
	}
	hash, err := helper.GeneratePasswordHash(req.NewPassword)
	if err != nil {
		return helper.Unexpected("UPDATE_ERROR", err.Error())
	}
	return database.Normalize(s.repo.SetPassword(ctx, u.ID, hash), entity, "UPDATE_ERROR")
}
