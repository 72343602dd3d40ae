package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"TRECGEN/internal/config"
	"TRECGEN/internal/contract"
	"TRECGEN/internal/middleware"
	"TRECGEN/internal/models"
	"TRECGEN/internal/pdffill"
	"TRECGEN/internal/services"
	"TRECGEN/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testAuthConfig = &config.AuthConfig{
	JWTSecret:        "test-secret",
	TokenExpireHours: 1,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_txlock=immediate",
		filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.TeamContractDefaults{},
		&models.Owner{},
		&models.Property{},
		&models.Contract{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

// seedUser creates a team with the given credits plus one user, and returns a
// valid bearer token for that user.
func seedUser(t *testing.T, db *gorm.DB, teamID string, credits int) string {
	t.Helper()

	if err := db.Create(&models.Team{ID: teamID, Name: "Team " + teamID, Credits: credits}).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		ID:           "user-" + teamID,
		Email:        teamID + "@example.com",
		PasswordHash: string(hash),
		Name:         "Test User",
		TeamID:       teamID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, _, err := middleware.GenerateToken(user.ID, teamID, user.Email, testAuthConfig)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

type fakeFiller struct{}

func (fakeFiller) Fill(d *contract.ContractData) (*pdffill.Result, error) {
	return &pdffill.Result{PDF: []byte("%PDF-1.7 test output")}, nil
}

type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) UploadFile(ctx context.Context, reader io.Reader, objectName, contentType string) (*storage.UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	s.objects[objectName] = data
	return &storage.UploadResult{ObjectName: objectName, Size: int64(len(data))}, nil
}

func (s *fakeStore) ReadFile(ctx context.Context, objectName string) (io.ReadCloser, error) {
	data, ok := s.objects[objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) DeleteFile(ctx context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

func (s *fakeStore) GetSignedURL(objectName string, expiry time.Duration) (string, error) {
	return "https://signed.example/" + objectName, nil
}

// newTestRouter wires the authenticated API surface against the given
// database, with fakes for filling and storage.
func newTestRouter(db *gorm.DB) *gin.Engine {
	creditSvc := services.NewCreditService(db)
	defaultsSvc := services.NewDefaultsService(db)
	generationSvc := services.NewGenerationService(db, creditSvc, defaultsSvc, fakeFiller{}, newFakeStore())
	bulkSvc := services.NewBulkService(db, creditSvc, generationSvc, defaultsSvc, fakeFiller{}, newFakeStore())

	authHandler := NewAuthHandler(db, testAuthConfig)
	contractHandler := NewContractHandler(generationSvc, newFakeStore())
	bulkHandler := NewBulkHandler(bulkSvc)
	defaultsHandler := NewDefaultsHandler(defaultsSvc)
	creditHandler := NewCreditHandler(creditSvc)

	r := gin.New()
	r.POST("/api/auth/login", authHandler.Login)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(testAuthConfig))
	{
		v1.POST("/contracts", contractHandler.Generate)
		v1.GET("/contracts", contractHandler.List)
		v1.GET("/contracts/:contractId/download", contractHandler.Download)
		v1.POST("/contracts/bulk", bulkHandler.GenerateBulk)
		v1.POST("/properties/upload", bulkHandler.UploadProperties)
		v1.GET("/properties", bulkHandler.ListProperties)
		v1.GET("/defaults", defaultsHandler.Get)
		v1.PUT("/defaults", defaultsHandler.Put)
		v1.GET("/credits", creditHandler.Balance)
	}
	return r
}
