package auth

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type stubEmployeeRepo struct {
	byEmail map[string]employee.Employee
	byID    map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := s.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func seedEmployee(t *testing.T, password string, active bool) (employee.Employee, *stubEmployeeRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	emp := employee.Employee{
		ID:           "emp-1",
		FullName:     "Budi Santoso",
		Email:        "budi@example.com",
		PasswordHash: string(hash),
		Role:         employee.RoleKaryawan,
		IsActive:     active,
	}
	repo := &stubEmployeeRepo{
		byEmail: map[string]employee.Employee{emp.Email: emp},
		byID:    map[string]employee.Employee{emp.ID: emp},
	}
	return emp, repo
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	emp, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	response, err := authService.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, emp.ID, response.EmployeeID)
	assert.Equal(t, string(employee.RoleKaryawan), response.Role)
	assert.Greater(t, response.AccessTokenExpiresAt, int64(0))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	emp, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "wrong-password"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	_, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	// Same rejection as a wrong password
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	emp, repo := seedEmployee(t, "password123", false)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAuthService_Login_InvalidEmailFormat(t *testing.T) {
	ctx := context.Background()
	_, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: "password123"})

	assert.Error(t, err)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	emp, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	login, err := authService.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})
	require.NoError(t, err)

	pair, err := authService.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestAuthService_Refresh_ReplayRejected(t *testing.T) {
	ctx := context.Background()
	emp, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	login, err := authService.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})
	require.NoError(t, err)

	_, err = authService.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	// The first refresh revoked the token
	_, err = authService.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	emp, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	login, err := authService.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})
	require.NoError(t, err)

	_, err = authService.Refresh(ctx, auth.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	ctx := context.Background()
	_, repo := seedEmployee(t, "password123", true)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Refresh(ctx, auth.RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
