package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/models"
	"investdesk/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(email, password string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	authenticateFn   func(email, password string) (*models.User, error)
}

func (m *mockUserService) CreateUser(email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Authenticate(email, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return &models.User{}, nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/profile", injectUserID(1), handler.GetProfile)
	return r
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestRegister(t *testing.T) {
	t.Run("valid_registration", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{
			createUserFn: func(email, password string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: 1}, Email: email}, nil
			},
		})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodPost, "/auth/register",
			`{"email":"ops@example.com","password":"longenoughpassword"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == nil || result["token"] == "" {
			t.Error("expected token in response")
		}
	})

	t.Run("invalid_email", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodPost, "/auth/register",
			`{"email":"not-an-email","password":"longenoughpassword"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{
			createUserFn: func(email, password string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodPost, "/auth/register",
			`{"email":"ops@example.com","password":"longenoughpassword"}`)

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{
			authenticateFn: func(email, password string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: 7}, Email: email, IsActive: true}, nil
			},
		})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodPost, "/auth/login",
			`{"email":"ops@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		result := parseJSON(t, rec)
		user, _ := result["user"].(map[string]interface{})
		if user == nil || user["email"] != "ops@example.com" {
			t.Errorf("expected user in response, got %v", result)
		}
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodPost, "/auth/login",
			`{"email":"ops@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("missing_password", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodPost, "/auth/login", `{"email":"ops@example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("returns_account", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{
			getUserByIDFn: func(id uint) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "ops@example.com"}, nil
			},
		})
		router := setupAuthRouter(handler)

		rec := doRequest(router, http.MethodGet, "/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		result := parseJSON(t, rec)
		user, _ := result["user"].(map[string]interface{})
		if user == nil || user["email"] != "ops@example.com" {
			t.Errorf("expected account in response, got %v", result)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{})
		r := gin.New()
		r.GET("/profile", handler.GetProfile)

		rec := doRequest(r, http.MethodGet, "/profile", "")

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}
