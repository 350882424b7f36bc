package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	database "ebarangay_backend/internals/databases"
	"ebarangay_backend/internals/features/residents/digitalid/model"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
)

type DigitalIDControllerSuite struct {
	suite.Suite
	db     *gorm.DB
	app    *fiber.App
	userID uuid.UUID
}

func TestDigitalIDControllerSuite(t *testing.T) {
	suite.Run(t, new(DigitalIDControllerSuite))
}

func (s *DigitalIDControllerSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
	s.userID = uuid.New()

	ctrl := NewDigitalIDController(db)
	app := fiber.New()
	user := app.Group("/api/u", func(c *fiber.Ctx) error {
		c.Locals("user_id", s.userID.String())
		return c.Next()
	})
	user.Get("/digital-id", ctrl.Mine)
	user.Get("/digital-id/qr.png", ctrl.QRPNG)
	s.app = app
}

func (s *DigitalIDControllerSuite) seedDigitalID() *model.DigitalIDModel {
	resident := &residentModel.ResidentModel{
		ResidentUserID:    s.userID,
		ResidentFirstName: "Juan",
		ResidentLastName:  "Dela Cruz",
		ResidentContactNo: "09171234567",
		ResidentAddress:   "Purok 3, Barangay San Isidro",
		ResidentIssuedBy:  uuid.New(),
	}
	s.Require().NoError(s.db.Create(resident).Error)

	did := &model.DigitalIDModel{
		DigitalIDResidentID: resident.ResidentID,
		DigitalIDIdentifier: "ID-" + s.userID.String(),
		DigitalIDQRPayload:  datatypes.JSON(`{"identifier": "ID-test", "name": "Juan Dela Cruz"}`),
		DigitalIDIssuedBy:   uuid.New(),
		DigitalIDIssuedAt:   time.Now().UTC(),
	}
	s.Require().NoError(s.db.Create(did).Error)
	return did
}

func (s *DigitalIDControllerSuite) TestMine() {
	did := s.seedDigitalID()

	req := httptest.NewRequest(http.MethodGet, "/api/u/digital-id", nil)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env struct {
		Data model.DigitalIDModel `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(raw, &env))
	s.Equal(did.DigitalIDIdentifier, env.Data.DigitalIDIdentifier)
}

func (s *DigitalIDControllerSuite) TestMineWithoutProfile() {
	req := httptest.NewRequest(http.MethodGet, "/api/u/digital-id", nil)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *DigitalIDControllerSuite) TestQRRendersPNG() {
	s.seedDigitalID()

	req := httptest.NewRequest(http.MethodGet, "/api/u/digital-id/qr.png", nil)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("image/png", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().Greater(len(raw), 8)
	// PNG magic bytes
	s.Equal([]byte{0x89, 0x50, 0x4E, 0x47}, raw[:4])
}
