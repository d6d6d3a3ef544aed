package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &authServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login verifies credentials and issues a token pair. A missing account
// and a wrong password produce the same rejection so the endpoint does
// not leak which emails exist.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	pair, err := s.issueTokenPair(emp)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	slog.Info("Employee logged in", "employee_id", emp.ID)

	return auth.LoginResponse{
		TokenPair:  pair,
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
		Role:       string(emp.Role),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The
// used token is revoked so it cannot be replayed.
func (s *authServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenPair, error) {
	if req.RefreshToken == "" {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	employeeID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenPair{}, auth.ErrInvalidToken
		}
		return auth.TokenPair{}, err
	}
	if !emp.IsActive {
		return auth.TokenPair{}, auth.ErrAccountInactive
	}

	pair, err := s.issueTokenPair(emp)
	if err != nil {
		return auth.TokenPair{}, err
	}

	s.jwtService.RevokeToken(req.RefreshToken)

	return pair, nil
}

func (s *authServiceImpl) issueTokenPair(emp employee.Employee) (auth.TokenPair, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}
