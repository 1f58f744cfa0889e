package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkgarage/internal/controllers"
	"parkgarage/internal/models"
	"parkgarage/internal/services"
)

type staticPersonStore struct {
	people []models.Person
}

func (s *staticPersonStore) PeopleByUsername(_ context.Context, username string) ([]models.Person, error) {
	var matched []models.Person
	for _, p := range s.people {
		if p.Username == username {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func loginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := services.HashPassword("hunter2")
	require.NoError(t, err)

	gate := services.NewCredentialGate(&staticPersonStore{people: []models.Person{
		{Username: "ana", Password: hash, Role: models.RoleLessor},
	}})

	r := gin.New()
	login := r.Group("/api/login")
	login.POST("/user", controllers.LoginUser(gate))
	login.POST("/admin", controllers.LoginAdministrator(gate))
	login.POST("/lessor", controllers.LoginLessor(gate))
	return r
}

func postLogin(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginStatusMapping(t *testing.T) {
	r := loginRouter(t)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"unknown user", "/api/login/user", `{"username":"nobody","password":"hunter2"}`, http.StatusNotFound},
		{"wrong password", "/api/login/user", `{"username":"ana","password":"nope"}`, http.StatusUnauthorized},
		{"role forbidden", "/api/login/admin", `{"username":"ana","password":"hunter2"}`, http.StatusForbidden},
		{"role allowed", "/api/login/lessor", `{"username":"ana","password":"hunter2"}`, http.StatusOK},
		{"generic login", "/api/login/user", `{"username":"ana","password":"hunter2"}`, http.StatusOK},
		{"missing fields", "/api/login/user", `{"username":"ana"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(r, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLoginSuccessReturnsPersonWithoutPassword(t *testing.T) {
	r := loginRouter(t)

	w := postLogin(r, "/api/login/user", `{"username":"ana","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"login successful"`)
	assert.Contains(t, w.Body.String(), `"username":"ana"`)
	assert.NotContains(t, w.Body.String(), "password")
}
