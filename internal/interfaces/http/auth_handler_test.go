package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FeriaStock-api/internal/application/auth"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	apphttp "github.com/jhoicas/FeriaStock-api/internal/interfaces/http"
)

// memUserRepo repositorio en memoria para los tests del handler.
type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	u := *user
	r.users[user.Username] = &u
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) Count(_ context.Context) (int, error) { return len(r.users), nil }

func buildAuthApp() *fiber.App {
	uc := auth.NewAuthUseCase(&memUserRepo{users: map[string]*entity.User{}}, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	app := fiber.New()
	h := apphttp.NewAuthHandler(uc)
	app.Get("/api/auth/setup", h.SetupStatus)
	app.Post("/api/auth/setup", h.Setup)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/users", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireAdmin(), h.CreateUser)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, authHeader string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Flujo completo de primer arranque: setup pendiente → crear admin → login →
// crear un usuario regular con el token de admin.
func TestAuthFlow_PrimerArranque(t *testing.T) {
	app := buildAuthApp()

	// 1. Sin usuarios: needs_setup=true
	req := httptest.NewRequest(http.MethodGet, "/api/auth/setup", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var status dto.SetupStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.True(t, status.NeedsSetup)

	// 2. Crear el admin inicial
	resp = postJSON(t, app, "/api/auth/setup", dto.CreateAdminRequest{
		Username: "admin", Password: "1234", ConfirmPassword: "1234",
	}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// 3. Un segundo setup queda rechazado
	resp = postJSON(t, app, "/api/auth/setup", dto.CreateAdminRequest{
		Username: "otro", Password: "1234", ConfirmPassword: "1234",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 4. Login del admin
	resp = postJSON(t, app, "/api/auth/login", dto.LoginRequest{Username: "admin", Password: "1234"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()
	require.NotEmpty(t, login.Token)
	assert.True(t, login.User.IsAdmin)

	// 5. El admin crea un usuario regular
	resp = postJSON(t, app, "/api/auth/users", dto.CreateUserRequest{
		Username: "operador", Password: "1234", ConfirmPassword: "1234",
	}, "Bearer "+login.Token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// 6. El usuario regular NO puede crear usuarios
	resp = postJSON(t, app, "/api/auth/login", dto.LoginRequest{Username: "operador", Password: "1234"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var opLogin dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&opLogin))
	resp.Body.Close()
	assert.False(t, opLogin.User.IsAdmin)

	resp = postJSON(t, app, "/api/auth/users", dto.CreateUserRequest{
		Username: "intruso", Password: "1234", ConfirmPassword: "1234",
	}, "Bearer "+opLogin.Token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginHandler_CredencialesInvalidas_MensajeGenerico(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/setup", dto.CreateAdminRequest{
		Username: "admin", Password: "1234", ConfirmPassword: "1234",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Password incorrecta y username inexistente devuelven el mismo cuerpo
	for _, in := range []dto.LoginRequest{
		{Username: "admin", Password: "equivocada"},
		{Username: "nadie", Password: "1234"},
	} {
		resp := postJSON(t, app, "/api/auth/login", in, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, "UNAUTHORIZED", body.Code)
		assert.Equal(t, "usuario o contraseña inválidos", body.Message)
	}
}

func TestSetupHandler_ValidacionDePassword(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/auth/setup", dto.CreateAdminRequest{
		Username: "admin", Password: "123", ConfirmPassword: "123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, "PASSWORD_TOO_SHORT", body.Code)

	resp = postJSON(t, app, "/api/auth/setup", dto.CreateAdminRequest{
		Username: "admin", Password: "1234", ConfirmPassword: "4321",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
