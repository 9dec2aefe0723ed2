package service

import (
	"context"
	"errors"
	"time"

	"guestdesk/internal/dto"
	"guestdesk/internal/models"
	"guestdesk/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStaffNotFound      = errors.New("staff account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffExists        = errors.New("staff account already exists")
)

type AuthService struct {
	staffRepo  StaffStore
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthService(staffRepo StaffStore, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		staffRepo:  staffRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, _ := s.staffRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrStaffExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	staff := &models.Staff{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return s.tokenResponse(staff)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	staff, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, staff.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(staff)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	staffID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	return s.tokenResponse(staff)
}

func (s *AuthService) tokenResponse(staff *models.Staff) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(staff.ID.String(), staff.Username, staff.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(staff.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		Staff: dto.StaffResponse{
			ID:       staff.ID.String(),
			Username: staff.Username,
			Email:    staff.Email,
		},
	}, nil
}
