package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(repo repository.UsersRepositoryI) *UserService {
	if repo == nil {
		log.Fatal("on user service provided nil repo")
	}
	return &UserService{
		repo: repo,
	}
}

func (us *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	if req == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("request is nil"))
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
	}
	err := us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("creating user error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("getting user error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*entity.User, error) {
	if req == nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("request is nil"))
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}
	err = us.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("updating user error: " + err.Error())
	}
	return user, nil
}
