package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	"github.com/jhoicas/FeriaStock-api/internal/domain/repository"
	"github.com/jhoicas/FeriaStock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Largo mínimo de contraseña. Se valida aquí (core) y no solo en la UI,
// para que no pueda saltarse por un punto de entrada alternativo.
const minPasswordLen = 4

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: primer arranque, alta de usuarios y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// NeedsSetup devuelve true si aún no existe ningún usuario (primer arranque).
func (uc *AuthUseCase) NeedsSetup(ctx context.Context) (bool, error) {
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// BootstrapAdmin crea la cuenta admin inicial. Solo procede mientras no
// exista ningún usuario; después devuelve ErrSetupAlreadyDone.
func (uc *AuthUseCase) BootstrapAdmin(ctx context.Context, in dto.CreateAdminRequest) (*dto.UserResponse, error) {
	needs, err := uc.NeedsSetup(ctx)
	if err != nil {
		return nil, err
	}
	if !needs {
		return nil, domain.ErrSetupAlreadyDone
	}
	return uc.createUser(ctx, in.Username, in.Password, in.ConfirmPassword, true)
}

// RegisterUser crea un usuario (pensado para admins; el handler aplica el
// middleware de rol). Devuelve ErrUsernameAlreadyExists si el username ya
// existe; el registro previo queda intacto.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	return uc.createUser(ctx, in.Username, in.Password, in.ConfirmPassword, in.IsAdmin)
}

func (uc *AuthUseCase) createUser(ctx context.Context, username, password, confirm string, isAdmin bool) (*dto.UserResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidInput
	}
	if password != confirm {
		return nil, domain.ErrPasswordMismatch
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Cualquier fallo (usuario inexistente o contraseña incorrecta) devuelve el
// mismo ErrUnauthorized, sin distinguir cuál campo falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
