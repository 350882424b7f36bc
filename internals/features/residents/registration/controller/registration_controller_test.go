package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ebarangay_backend/internals/constants"
	database "ebarangay_backend/internals/databases"
	"ebarangay_backend/internals/features/residents/registration/model"
)

type envelope struct {
	Code      int             `json:"code"`
	Status    string          `json:"status"`
	ErrorKind string          `json:"error_kind"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type RegistrationControllerSuite struct {
	suite.Suite
	db      *gorm.DB
	app     *fiber.App
	actorID uuid.UUID
}

func TestRegistrationControllerSuite(t *testing.T) {
	suite.Run(t, new(RegistrationControllerSuite))
}

func (s *RegistrationControllerSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
	s.actorID = uuid.New()

	ctrl := NewRegistrationController(db, nil)
	app := fiber.New()
	app.Post("/api/registration-requests", ctrl.Submit)
	app.Get("/api/registration-requests", ctrl.Lookup)

	back := app.Group("/api/a", func(c *fiber.Ctx) error {
		c.Locals("user_id", s.actorID.String())
		role := c.Get("X-Actor-Role")
		if role == "" {
			role = constants.RoleStaff
		}
		c.Locals("userRole", role)
		return c.Next()
	})
	back.Get("/registration-requests", ctrl.List)
	back.Post("/registration-decisions", ctrl.Decide)
	s.app = app
}

func (s *RegistrationControllerSuite) do(req *http.Request) (int, envelope) {
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env envelope
	s.Require().NoError(json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func (s *RegistrationControllerSuite) postJSON(path, body string, headers map[string]string) (int, envelope) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return s.do(req)
}

const validSubmission = `{
	"first_name": "Juan",
	"last_name": "Dela Cruz",
	"contact_no": "09171234567",
	"birthdate": "1990-05-14",
	"gender": "male",
	"address": "Purok 3, Barangay San Isidro",
	"is_head_of_family": true
}`

func (s *RegistrationControllerSuite) TestSubmitThenLookup() {
	status, env := s.postJSON("/api/registration-requests", validSubmission, nil)
	s.Equal(fiber.StatusCreated, status)
	s.Equal("success", env.Status)

	var created struct {
		ReferenceNumber string `json:"reference_number"`
		Status          string `json:"status"`
		IsSenior        bool   `json:"is_senior"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.Regexp(`^REF-\d{8}-\d{4}$`, created.ReferenceNumber)
	s.Equal(model.RequestStatusPending, created.Status)
	s.False(created.IsSenior)

	req := httptest.NewRequest(http.MethodGet, "/api/registration-requests?ref="+created.ReferenceNumber, nil)
	status, env = s.do(req)
	s.Equal(fiber.StatusOK, status)

	var lookup struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Role   string `json:"role"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &lookup))
	s.Equal("Juan Dela Cruz", lookup.Name)
	s.Equal(model.RequestStatusPending, lookup.Status)
	s.Equal(constants.RoleResident, lookup.Role)
}

func (s *RegistrationControllerSuite) TestLookupUnknownReference() {
	req := httptest.NewRequest(http.MethodGet, "/api/registration-requests?ref=REF-20260831-0000", nil)
	status, env := s.do(req)
	s.Equal(fiber.StatusNotFound, status)
	s.Equal("NOT_FOUND", env.ErrorKind)
}

func (s *RegistrationControllerSuite) TestSubmitHeadOfFamilyWithHeadIDRejected() {
	body := strings.Replace(validSubmission,
		`"is_head_of_family": true`,
		fmt.Sprintf(`"is_head_of_family": true, "head_id": %q`, uuid.NewString()), 1)

	status, env := s.postJSON("/api/registration-requests", body, nil)
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", env.ErrorKind)
}

func (s *RegistrationControllerSuite) TestSubmitMissingFieldsRejected() {
	status, env := s.postJSON("/api/registration-requests", `{"first_name": "Juan"}`, nil)
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", env.ErrorKind)
}

func (s *RegistrationControllerSuite) seedPending() *model.RegistrationRequestModel {
	req := &model.RegistrationRequestModel{
		RequestReferenceNumber: "REF-20260831-" + uuid.NewString()[:4],
		RequestFirstName:       "Maria",
		RequestLastName:        "Santos",
		RequestContactNo:       "09181234567",
		RequestBirthdate:       mustDate("1985-01-20"),
		RequestAddress:         "Purok 1, Barangay San Isidro",
		RequestRole:            constants.RoleResident,
	}
	s.Require().NoError(s.db.Create(req).Error)
	return req
}

func (s *RegistrationControllerSuite) TestStaffRejectWithoutReason() {
	req := s.seedPending()

	body := fmt.Sprintf(`{"request_id": %q, "approve": false}`, req.RequestID)
	status, env := s.postJSON("/api/a/registration-decisions", body, nil)
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("VALIDATION_ERROR", env.ErrorKind)

	// still pending, the rejection never went through
	var stored model.RegistrationRequestModel
	s.Require().NoError(s.db.Where("request_id = ?", req.RequestID).First(&stored).Error)
	s.Equal(model.RequestStatusPending, stored.RequestStatus)
}

func (s *RegistrationControllerSuite) TestAdminRejectWithoutReasonAllowed() {
	req := s.seedPending()

	body := fmt.Sprintf(`{"request_id": %q, "approve": false}`, req.RequestID)
	status, env := s.postJSON("/api/a/registration-decisions", body,
		map[string]string{"X-Actor-Role": constants.RoleAdmin})
	s.Equal(fiber.StatusOK, status)

	var outcome struct {
		Approved bool `json:"approved"`
		Rejected bool `json:"rejected"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &outcome))
	s.True(outcome.Rejected)
	s.False(outcome.Approved)
}

func (s *RegistrationControllerSuite) TestDecideApproveOverHTTP() {
	req := s.seedPending()

	body := fmt.Sprintf(`{"request_id": %q, "approve": true, "rejection_reason": null}`, req.RequestID)
	status, env := s.postJSON("/api/a/registration-decisions", body, nil)
	s.Equal(fiber.StatusOK, status)

	var outcome struct {
		Approved   bool       `json:"approved"`
		UserID     *uuid.UUID `json:"user_id"`
		ResidentID *uuid.UUID `json:"resident_id"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &outcome))
	s.True(outcome.Approved)
	s.NotNil(outcome.UserID)
	s.NotNil(outcome.ResidentID)

	// deciding the same request again conflicts
	status, env = s.postJSON("/api/a/registration-decisions", body, nil)
	s.Equal(fiber.StatusConflict, status)
	s.Equal("INVALID_STATE", env.ErrorKind)
}

func mustDate(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}
