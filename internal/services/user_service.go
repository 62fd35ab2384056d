package services

import (
	"context"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"
)

type CreateUserInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Role       domain.UserRole
	Address    string
	City       string
	PostalCode string
}

type UpdateUserInput struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Role       *domain.UserRole
	Address    *string
	City       *string
	PostalCode *string
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user", id)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("a user with email '%s' already exists", in.Email)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	user := &domain.User{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Role:       role,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, in UpdateUserInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.Conflictf("a user with email '%s' already exists", *in.Email)
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.PostalCode != nil {
		user.PostalCode = *in.PostalCode
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user; their orders keep a null user reference.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, user)
}
