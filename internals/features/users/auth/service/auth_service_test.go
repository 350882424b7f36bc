package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ebarangay_backend/internals/configs"
	"ebarangay_backend/internals/constants"
	database "ebarangay_backend/internals/databases"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	userModel "ebarangay_backend/internals/features/users/auth/model"
)

type AuthServiceSuite struct {
	suite.Suite
	db  *gorm.DB
	app *fiber.App
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	configs.JWTSecret = "test-signing-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error { return Login(db, c) })
	app.Post("/reset-password", func(c *fiber.Ctx) error { return ResetPassword(db, c) })
	s.app = app
}

func (s *AuthServiceSuite) seedResidentAccount(username, password, householdNumber string) *userModel.UserModel {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)

	user := &userModel.UserModel{
		UserName: username,
		Password: string(hash),
		Role:     constants.RoleResident,
	}
	s.Require().NoError(s.db.Create(user).Error)

	resident := &residentModel.ResidentModel{
		ResidentUserID:          user.ID,
		ResidentFirstName:       "Maria",
		ResidentLastName:        "Santos",
		ResidentContactNo:       "09181234567",
		ResidentAddress:         "Purok 1, Barangay San Isidro",
		ResidentHouseholdNumber: &householdNumber,
		ResidentIssuedBy:        uuid.New(),
	}
	s.Require().NoError(s.db.Create(resident).Error)
	return user
}

func (s *AuthServiceSuite) seedStaffAccount(username, password, householdNumber string) *userModel.UserModel {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)

	user := &userModel.UserModel{
		UserName: username,
		Password: string(hash),
		Role:     constants.RoleStaff,
	}
	s.Require().NoError(s.db.Create(user).Error)

	staff := &residentModel.StaffModel{
		StaffUserID:          user.ID,
		StaffFirstName:       "Ramon",
		StaffLastName:        "Reyes",
		StaffContactNo:       "09191234567",
		StaffAddress:         "Purok 3, Barangay San Isidro",
		StaffHouseholdNumber: &householdNumber,
		StaffIssuedBy:        uuid.New(),
	}
	s.Require().NoError(s.db.Create(staff).Error)
	return user
}

func (s *AuthServiceSuite) postJSON(path, body string) (int, map[string]json.RawMessage) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func (s *AuthServiceSuite) TestLoginSuccess() {
	s.seedResidentAccount("maria.santos", "correct-horse-42", "HH-ABCD1234")

	status, env := s.postJSON("/login", `{"username": "maria.santos", "password": "correct-horse-42"}`)
	s.Equal(fiber.StatusOK, status)

	var data struct {
		Token string `json:"token"`
		User  struct {
			UserName string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	s.Require().NoError(json.Unmarshal(env["data"], &data))
	s.NotEmpty(data.Token)
	s.Equal("maria.santos", data.User.UserName)
	s.Equal(constants.RoleResident, data.User.Role)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	s.seedResidentAccount("maria.santos", "correct-horse-42", "HH-ABCD1234")

	status, env := s.postJSON("/login", `{"username": "maria.santos", "password": "wrong"}`)
	s.Equal(fiber.StatusUnauthorized, status)
	s.JSONEq(`"Invalid username or password"`, string(env["message"]))
}

func (s *AuthServiceSuite) TestLoginUnknownUserSameAnswer() {
	status, env := s.postJSON("/login", `{"username": "nobody.here", "password": "whatever"}`)
	s.Equal(fiber.StatusUnauthorized, status)
	s.JSONEq(`"Invalid username or password"`, string(env["message"]))
}

func (s *AuthServiceSuite) TestLoginDeactivatedAccount() {
	user := s.seedResidentAccount("maria.santos", "correct-horse-42", "HH-ABCD1234")
	s.Require().NoError(s.db.Model(user).Update("is_active", false).Error)

	status, _ := s.postJSON("/login", `{"username": "maria.santos", "password": "correct-horse-42"}`)
	s.Equal(fiber.StatusForbidden, status)
}

func (s *AuthServiceSuite) TestResetPasswordWithHouseholdNumber() {
	s.seedResidentAccount("maria.santos", "old-password-1", "HH-ABCD1234")

	// household number matches case-insensitively
	status, _ := s.postJSON("/reset-password",
		`{"username": "maria.santos", "household_number": "hh-abcd1234", "new_password": "brand-new-pass"}`)
	s.Equal(fiber.StatusOK, status)

	status, _ = s.postJSON("/login", `{"username": "maria.santos", "password": "brand-new-pass"}`)
	s.Equal(fiber.StatusOK, status)

	status, _ = s.postJSON("/login", `{"username": "maria.santos", "password": "old-password-1"}`)
	s.Equal(fiber.StatusUnauthorized, status)
}

func (s *AuthServiceSuite) TestResetPasswordStaffAccount() {
	s.seedStaffAccount("ramon.reyes", "old-password-1", "HH-EF012345")

	status, _ := s.postJSON("/reset-password",
		`{"username": "ramon.reyes", "household_number": "HH-EF012345", "new_password": "brand-new-pass"}`)
	s.Equal(fiber.StatusOK, status)

	status, _ = s.postJSON("/login", `{"username": "ramon.reyes", "password": "brand-new-pass"}`)
	s.Equal(fiber.StatusOK, status)
}

func (s *AuthServiceSuite) TestResetPasswordWrongHouseholdNumber() {
	s.seedResidentAccount("maria.santos", "old-password-1", "HH-ABCD1234")

	status, env := s.postJSON("/reset-password",
		`{"username": "maria.santos", "household_number": "HH-WRONG000", "new_password": "brand-new-pass"}`)
	s.Equal(fiber.StatusForbidden, status)
	s.JSONEq(`"Household number does not match"`, string(env["message"]))
}

func (s *AuthServiceSuite) TestResetPasswordUnknownUserSameAnswer() {
	status, env := s.postJSON("/reset-password",
		`{"username": "nobody.here", "household_number": "HH-ABCD1234", "new_password": "brand-new-pass"}`)
	s.Equal(fiber.StatusForbidden, status)
	s.JSONEq(`"Household number does not match"`, string(env["message"]))
}
