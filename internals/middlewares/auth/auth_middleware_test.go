package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ebarangay_backend/internals/configs"
	"ebarangay_backend/internals/constants"
	database "ebarangay_backend/internals/databases"
	userModel "ebarangay_backend/internals/features/users/auth/model"
)

type AuthMiddlewareSuite struct {
	suite.Suite
	db   *gorm.DB
	app  *fiber.App
	user *userModel.UserModel
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) SetupTest() {
	configs.JWTSecret = "test-signing-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	s.user = &userModel.UserModel{
		UserName: "pedro.reyes",
		Password: "irrelevant-hash",
		Role:     constants.RoleStaff,
	}
	s.Require().NoError(db.Create(s.user).Error)

	app := fiber.New()
	protected := app.Group("/u", AuthMiddleware(db))
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("userRole"),
		})
	})

	back := app.Group("/a", AuthMiddleware(db),
		OnlyRoles("", constants.StaffAndAbove...))
	back.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	s.app = app
}

func (s *AuthMiddlewareSuite) signToken(userID uuid.UUID, role string, ttl time.Duration) string {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        userID.String(),
		"sub":       userID.String(),
		"role":      role,
		"user_name": "pedro.reyes",
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) get(path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	resp.Body.Close()
	return resp.StatusCode
}

func (s *AuthMiddlewareSuite) TestValidToken() {
	token := s.signToken(s.user.ID, s.user.Role, time.Hour)
	s.Equal(fiber.StatusOK, s.get("/u/whoami", token))
}

func (s *AuthMiddlewareSuite) TestMissingToken() {
	s.Equal(fiber.StatusUnauthorized, s.get("/u/whoami", ""))
}

func (s *AuthMiddlewareSuite) TestGarbageToken() {
	s.Equal(fiber.StatusUnauthorized, s.get("/u/whoami", "not-a-jwt"))
}

func (s *AuthMiddlewareSuite) TestExpiredTokenBeyondLeeway() {
	token := s.signToken(s.user.ID, s.user.Role, -5*time.Minute)
	s.Equal(fiber.StatusUnauthorized, s.get("/u/whoami", token))
}

func (s *AuthMiddlewareSuite) TestExpiredTokenWithinLeeway() {
	// a few seconds past exp still clears the 30s clock-skew allowance
	token := s.signToken(s.user.ID, s.user.Role, -10*time.Second)
	s.Equal(fiber.StatusOK, s.get("/u/whoami", token))
}

func (s *AuthMiddlewareSuite) TestWrongSignature() {
	token := s.signToken(s.user.ID, s.user.Role, time.Hour)
	configs.JWTSecret = "a-different-secret"
	defer func() { configs.JWTSecret = "test-signing-secret" }()
	s.Equal(fiber.StatusUnauthorized, s.get("/u/whoami", token))
}

func (s *AuthMiddlewareSuite) TestDeactivatedAccount() {
	s.Require().NoError(s.db.Model(s.user).Update("is_active", false).Error)
	token := s.signToken(s.user.ID, s.user.Role, time.Hour)
	s.Equal(fiber.StatusForbidden, s.get("/u/whoami", token))
}

func (s *AuthMiddlewareSuite) TestUnknownUserInToken() {
	token := s.signToken(uuid.New(), constants.RoleResident, time.Hour)
	s.Equal(fiber.StatusUnauthorized, s.get("/u/whoami", token))
}

func (s *AuthMiddlewareSuite) TestRoleGateBlocksResidents() {
	resident := &userModel.UserModel{
		UserName: "maria.santos",
		Password: "irrelevant-hash",
		Role:     constants.RoleResident,
	}
	s.Require().NoError(s.db.Create(resident).Error)

	s.Equal(fiber.StatusForbidden,
		s.get("/a/ping", s.signToken(resident.ID, resident.Role, time.Hour)))
	s.Equal(fiber.StatusOK,
		s.get("/a/ping", s.signToken(s.user.ID, s.user.Role, time.Hour)))
}
