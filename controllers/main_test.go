package controllers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adisheth/car-rental-website/config"
	"github.com/Adisheth/car-rental-website/middlewares"
	"github.com/Adisheth/car-rental-website/models"
	"github.com/Adisheth/car-rental-website/routes"
	"github.com/Adisheth/car-rental-website/storage"
	"github.com/Adisheth/car-rental-website/utils"
)

const testSecret = "controllers-test-secret"

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	cfg    *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		Port:          "0",
		JWTSecret:     testSecret,
		DBPath:        filepath.Join(dir, "test.db"),
		UploadDir:     filepath.Join(dir, "public"),
		TemplatesGlob: "../templates/*",
	}

	db, err := config.ConnectDatabase(context.Background(), cfg.DBPath)
	require.NoError(t, err)

	images, err := storage.NewImageStore(cfg.UploadDir)
	require.NoError(t, err)

	router := routes.SetupRouter(db, cfg, images, zap.NewNop())
	return &testApp{db: db, router: router, cfg: cfg}
}

func (a *testApp) createUser(t *testing.T, email, password string, isAdmin bool) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		ID:        uuid.NewString(),
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Phone:     "555-0100",
		Password:  hash,
		IsAdmin:   isAdmin,
	}
	require.NoError(t, a.db.Create(&user).Error)
	return user
}

func (a *testApp) createCar(t *testing.T, name string, price int64, available bool) models.Car {
	t.Helper()
	car := models.Car{
		ID:           uuid.NewString(),
		Name:         name,
		Category:     "SUV",
		Price:        price,
		Seats:        5,
		Transmission: "Automatic",
		Fuel:         "Petrol",
		Available:    available,
	}
	require.NoError(t, a.db.Create(&car).Error)
	return car
}

func (a *testApp) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	tok, err := utils.CreateToken(a.cfg.JWTSecret, user, false)
	require.NoError(t, err)
	return &http.Cookie{Name: middlewares.SessionCookie, Value: tok}
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func formRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// multipartRequest builds a multipart form request, optionally carrying
// one uploaded file under the "image" field.
func multipartRequest(t *testing.T, method, path string, fields map[string]string, imageName string, imageBody io.Reader) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = io.Copy(part, imageBody)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
