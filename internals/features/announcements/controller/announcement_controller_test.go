package controller

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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	database "ebarangay_backend/internals/databases"
)

type AnnouncementControllerSuite struct {
	suite.Suite
	db      *gorm.DB
	app     *fiber.App
	staffID uuid.UUID
}

func TestAnnouncementControllerSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementControllerSuite))
}

func (s *AnnouncementControllerSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
	s.staffID = uuid.New()

	ctrl := NewAnnouncementController(db)
	app := fiber.New()
	app.Get("/api/public/announcements", ctrl.List)

	back := app.Group("/api/a", func(c *fiber.Ctx) error {
		c.Locals("user_id", s.staffID.String())
		return c.Next()
	})
	back.Post("/announcements", ctrl.Create)
	back.Put("/announcements/:id", ctrl.Update)
	back.Delete("/announcements/:id", ctrl.Delete)

	s.app = app
}

func (s *AnnouncementControllerSuite) request(method, path, body string) (int, map[string]json.RawMessage) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func (s *AnnouncementControllerSuite) create(title string, pinned bool) uuid.UUID {
	body := fmt.Sprintf(`{"title": %q, "body": "Details follow.", "is_pinned": %t}`, title, pinned)
	status, env := s.request(http.MethodPost, "/api/a/announcements", body)
	s.Require().Equal(fiber.StatusCreated, status)

	var data struct {
		AnnouncementID uuid.UUID `json:"announcement_id"`
	}
	s.Require().NoError(json.Unmarshal(env["data"], &data))
	return data.AnnouncementID
}

func (s *AnnouncementControllerSuite) TestPinnedAnnouncementsListFirst() {
	s.create("Garbage collection schedule", false)
	s.create("Typhoon advisory", true)
	s.create("Basketball league signups", false)

	status, env := s.request(http.MethodGet, "/api/public/announcements", "")
	s.Equal(fiber.StatusOK, status)

	var items []struct {
		Title    string `json:"title"`
		IsPinned bool   `json:"is_pinned"`
	}
	s.Require().NoError(json.Unmarshal(env["data"], &items))
	s.Require().Len(items, 3)
	s.Equal("Typhoon advisory", items[0].Title)
	s.True(items[0].IsPinned)
}

func (s *AnnouncementControllerSuite) TestUpdateAndDelete() {
	id := s.create("Draft notice", false)

	status, env := s.request(http.MethodPut, "/api/a/announcements/"+id.String(),
		`{"title": "Final notice", "body": "Updated details.", "is_pinned": true}`)
	s.Equal(fiber.StatusOK, status)

	var data struct {
		Title    string `json:"title"`
		IsPinned bool   `json:"is_pinned"`
	}
	s.Require().NoError(json.Unmarshal(env["data"], &data))
	s.Equal("Final notice", data.Title)
	s.True(data.IsPinned)

	status, _ = s.request(http.MethodDelete, "/api/a/announcements/"+id.String(), "")
	s.Equal(fiber.StatusOK, status)

	status, _ = s.request(http.MethodDelete, "/api/a/announcements/"+id.String(), "")
	s.Equal(fiber.StatusNotFound, status)
}

func (s *AnnouncementControllerSuite) TestCreateValidation() {
	status, env := s.request(http.MethodPost, "/api/a/announcements", `{"title": "x"}`)
	s.Equal(fiber.StatusBadRequest, status)
	s.JSONEq(`"VALIDATION_ERROR"`, string(env["error_kind"]))
}
