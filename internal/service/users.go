package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type RegisterParams struct {
	Email    string
	FullName string
	Phone    string
	Password string
	Role     string
}

// Register creates a new account. Self-registered users get the lider
// role; a requested role is honored only when the caller is an
// authenticated admin (the admin user surface), so an anonymous
// registration can never name its own role.
func (s *Service) Register(ctx context.Context, params RegisterParams) (entity.User, error) {
	role := entity.RoleLider

	if actor, err := entity.UserFromContext(ctx); err == nil && actor.Role == entity.RoleAdmin {
		if params.Role != "" {
			role = params.Role
		}
	}

	if err := ValidateRegisterParams(params.Email, params.FullName, params.Password, role); err != nil {
		return entity.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        params.Email,
		FullName:     params.FullName,
		Phone:        params.Phone,
		Role:         role,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	s.notifier.SendUserRegistered(ctx, user)

	return user, nil
}

// Login checks credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (entity.UserTokens, error) {
	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return entity.UserTokens{}, fmt.Errorf("find user: %w", entity.ErrInvalidCredentials)
	}

	if !user.Active {
		return entity.UserTokens{}, fmt.Errorf("user %s: %w", user.ID, entity.ErrUserInactive)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entity.UserTokens{}, fmt.Errorf("password mismatch: %w", entity.ErrInvalidCredentials)
	}

	tokens, err := s.issuer.Issue(user)
	if err != nil {
		return entity.UserTokens{}, fmt.Errorf("issue token: %w", err)
	}

	return tokens, nil
}

func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	user, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("find user %s: %w", id, err)
	}

	return user, nil
}

func (s *Service) Users(ctx context.Context, filter entity.UsersFilter) ([]entity.User, int, error) {
	users, count, err := s.repo.Users(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, count, nil
}

type UpdateUserParams struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Phone    string
	Role     string
	Active   bool
}

func (s *Service) UpdateUser(ctx context.Context, params UpdateUserParams) (entity.User, error) {
	if !entity.IsValidRole(params.Role) {
		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrUnknownRole, params.Role)
	}

	user, err := s.repo.UserByID(ctx, params.ID)
	if err != nil {
		return entity.User{}, fmt.Errorf("find user %s: %w", params.ID, err)
	}

	user.Email = params.Email
	user.FullName = params.FullName
	user.Phone = params.Phone
	user.Role = params.Role
	user.Active = params.Active
	user.UpdatedAt = time.Now()

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return entity.User{}, fmt.Errorf("update user %s: %w", params.ID, err)
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	// An admin removing their own account would lock the tenant out.
	if actor.ID == id {
		return fmt.Errorf("cannot delete own account: %w", entity.ErrConflict)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	return nil
}
