package usecase

import (
	"context"
	"errors"

	"healthcare-management/internal/converter"
	"healthcare-management/internal/delivery/dto"
	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/domain/repository"
	"healthcare-management/pkg/apperror"
	"healthcare-management/pkg/jwt"
	"healthcare-management/pkg/password"
	"healthcare-management/pkg/session"

	"github.com/sirupsen/logrus"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	sessions   session.Store
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessions session.Store,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		sessions:   sessions,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, storeError("Failed to register user", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to register user", err)
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, storeError("Failed to register user", err)
	}

	return u.authenticate(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, storeError("Failed to login", err)
	}
	if user == nil || !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.authenticate(ctx, user)
}

// authenticate issues a token for user and opens a session. The user row
// already exists at this point, so a session store failure degrades to a
// token-only response instead of failing the request.
func (u *authUsecase) authenticate(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	token, err := u.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to generate token", err)
	}

	var sessionID string
	sess, err := u.sessions.Create(ctx, user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to create session, continuing with token only: %+v", err)
	} else {
		sessionID = sess.ID
	}

	return converter.UserToAuthResponse(user, token, sessionID), nil
}

// Logout destroys the session if one exists. A store failure is logged and
// not reported; the client discards its cookie either way.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Destroy(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to destroy session: %+v", err)
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, storeError("Failed to get user", err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	return converter.UserToResponse(user), nil
}
