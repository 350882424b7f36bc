package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ebarangay_backend/internals/constants"
	digitalIDModel "ebarangay_backend/internals/features/residents/digitalid/model"
	householdModel "ebarangay_backend/internals/features/residents/household/model"
	regHelper "ebarangay_backend/internals/features/residents/registration/helper"
	"ebarangay_backend/internals/features/residents/registration/model"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	userModel "ebarangay_backend/internals/features/users/auth/model"
	"ebarangay_backend/internals/notifier"
)

const maxUsernameRetries = 5

// ProvisioningError marks failures to allocate a unique username (or an
// equivalent provisioning dead end) so the controller can surface the
// PROVISIONING_ERROR kind instead of a generic 500.
type ProvisioningError struct {
	Reason string
}

func (e *ProvisioningError) Error() string {
	return "provisioning failed: " + e.Reason
}

// Actor is the authenticated staff/admin account submitting a decision.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// Outcome reports what a decision did. Credentials never travel here;
// they go out through the notifier only.
type Outcome struct {
	Approved   bool
	Rejected   bool
	UserID     *uuid.UUID
	ResidentID *uuid.UUID
}

type ApprovalService struct {
	DB       *gorm.DB
	Notifier *notifier.Service
}

func NewApprovalService(db *gorm.DB, n *notifier.Service) *ApprovalService {
	return &ApprovalService{DB: db, Notifier: n}
}

// pendingNotification is assembled inside the transaction and fired only
// after commit, so a rollback never leaks credentials.
type pendingNotification struct {
	email           string
	approved        bool
	username        string
	tempPassword    string
	householdNumber *string
	rejectionReason *string
}

// Decide moves one PENDING registration request to a terminal status.
// On approval it provisions, in a single transaction: the account, the
// household linkage, the resident/staff profile and the digital ID.
func (s *ApprovalService) Decide(ctx context.Context, requestID uuid.UUID, actor Actor, approve bool, rejectionReason *string) (*Outcome, error) {
	outcome := &Outcome{}
	var notif *pendingNotification

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req model.RegistrationRequestModel
		if err := lockForUpdate(tx).
			Where("request_id = ?", requestID).
			First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Registration request not found")
			}
			return err
		}

		// staff may only decide resident applications
		if actor.Role == constants.RoleStaff && req.RequestRole != constants.RoleResident {
			return fiber.NewError(fiber.StatusForbidden, "Staff may not decide staff or admin applications")
		}

		// one-way transition: refuse anything already terminal, including
		// the loser of a concurrent double decision (the row lock above
		// serializes them)
		if req.IsTerminal() {
			return fiber.NewError(fiber.StatusConflict, "Request already decided")
		}

		if !approve {
			req.RequestStatus = model.RequestStatusRejected
			req.RequestRejectionReason = rejectionReason
			if err := tx.Save(&req).Error; err != nil {
				return err
			}
			outcome.Rejected = true
			if req.RequestEmail != nil {
				notif = &pendingNotification{
					email:           *req.RequestEmail,
					rejectionReason: rejectionReason,
				}
			}
			return nil
		}

		n, err := s.provision(tx, &req, actor, outcome)
		if err != nil {
			return err
		}
		notif = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(notif)
	return outcome, nil
}

// provision runs the approve path inside the caller's transaction.
func (s *ApprovalService) provision(tx *gorm.DB, req *model.RegistrationRequestModel, actor Actor, outcome *Outcome) (*pendingNotification, error) {
	now := time.Now().UTC()

	// 1) temporary credential
	tempPassword, err := regHelper.GenerateTempPassword(10)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 2) unique username, bounded retries
	username, err := s.allocateUsername(tx, req, now)
	if err != nil {
		return nil, err
	}

	// 3) account
	user := userModel.UserModel{
		UserName: username,
		Password: string(hash),
		Role:     req.RequestRole,
	}
	if err := tx.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			// lost a race on the unique index after our lookup said free
			return nil, &ProvisioningError{Reason: "username no longer unique"}
		}
		return nil, err
	}
	outcome.UserID = &user.ID

	// 4–7) role profile + household + digital ID
	var householdNumber *string
	if req.RequestRole == constants.RoleResident {
		resident, hhNumber, err := s.provisionResident(tx, req, actor, user.ID, now)
		if err != nil {
			return nil, err
		}
		outcome.ResidentID = &resident.ResidentID
		householdNumber = hhNumber
	} else {
		_, hhNumber, err := s.provisionStaff(tx, req, actor, user.ID)
		if err != nil {
			return nil, err
		}
		householdNumber = hhNumber
	}

	// 8) terminal transition
	req.RequestStatus = model.RequestStatusApproved
	req.RequestApprovedBy = &actor.ID
	req.RequestApprovedAt = &now
	req.RequestHouseholdNumber = householdNumber
	if err := tx.Save(req).Error; err != nil {
		return nil, err
	}
	outcome.Approved = true

	// 9) credential delivery, after commit
	if req.RequestEmail == nil {
		return nil, nil
	}
	return &pendingNotification{
		email:           *req.RequestEmail,
		approved:        true,
		username:        username,
		tempPassword:    tempPassword,
		householdNumber: householdNumber,
	}, nil
}

// provisionStaff creates the back-office profile. Demographic flags are
// copied from the request just like the resident path; household linkage
// is a number only, resolved through the head token when one was given
// (it backs the household-number password recovery for staff).
func (s *ApprovalService) provisionStaff(tx *gorm.DB, req *model.RegistrationRequestModel, actor Actor, userID uuid.UUID) (*residentModel.StaffModel, *string, error) {
	staff := residentModel.StaffModel{
		StaffUserID:       userID,
		StaffFirstName:    req.RequestFirstName,
		StaffLastName:     req.RequestLastName,
		StaffContactNo:    req.RequestContactNo,
		StaffEmail:        req.RequestEmail,
		StaffBirthdate:    req.RequestBirthdate,
		StaffGender:       req.RequestGender,
		StaffAddress:      req.RequestAddress,
		StaffIs4PsMember:  req.RequestIs4PsMember,
		StaffIsPWD:        req.RequestIsPWD,
		StaffIsIndigenous: req.RequestIsIndigenous,
		StaffIsSLP:        req.RequestIsSLP,
		StaffIsSenior:     req.RequestIsSenior,
		StaffIssuedBy:     actor.ID,
	}

	if req.RequestHeadID != nil {
		var hh householdModel.HouseholdModel
		err := tx.Where("household_head_token = ?", *req.RequestHeadID).First(&hh).Error
		switch {
		case err == nil:
			staff.StaffHouseholdNumber = &hh.HouseholdNumber
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("[WARN] request %s: head_id %s does not resolve to a household, linking skipped",
				req.RequestID, *req.RequestHeadID)
		default:
			return nil, nil, err
		}
	}

	if err := tx.Create(&staff).Error; err != nil {
		return nil, nil, err
	}
	return &staff, staff.StaffHouseholdNumber, nil
}

// provisionResident creates the resident row, resolves its household
// linkage and issues the digital ID.
func (s *ApprovalService) provisionResident(tx *gorm.DB, req *model.RegistrationRequestModel, actor Actor, userID uuid.UUID, now time.Time) (*residentModel.ResidentModel, *string, error) {
	resident := residentModel.ResidentModel{
		ResidentUserID:         userID,
		ResidentFirstName:      req.RequestFirstName,
		ResidentLastName:       req.RequestLastName,
		ResidentContactNo:      req.RequestContactNo,
		ResidentEmail:          req.RequestEmail,
		ResidentBirthdate:      req.RequestBirthdate,
		ResidentGender:         req.RequestGender,
		ResidentAddress:        req.RequestAddress,
		ResidentIsHeadOfFamily: req.RequestIsHeadOfFamily,
		ResidentIs4PsMember:    req.RequestIs4PsMember,
		ResidentIsPWD:          req.RequestIsPWD,
		ResidentIsIndigenous:   req.RequestIsIndigenous,
		ResidentIsSLP:          req.RequestIsSLP,
		ResidentIsSenior:       req.RequestIsSenior,
		ResidentIssuedBy:       actor.ID,
	}

	var household *householdModel.HouseholdModel

	switch {
	case req.RequestIsHeadOfFamily:
		hh := householdModel.HouseholdModel{
			HouseholdID:        uuid.New(),
			HouseholdAddress:   req.RequestAddress,
			HouseholdHeadToken: uuid.New(),
		}
		hh.HouseholdNumber = deriveHouseholdNumber(hh.HouseholdID)
		if err := tx.Create(&hh).Error; err != nil {
			return nil, nil, err
		}
		household = &hh
		resident.ResidentHouseholdID = &hh.HouseholdID
		resident.ResidentHeadID = &hh.HouseholdHeadToken
		resident.ResidentHouseholdNumber = &hh.HouseholdNumber

	case req.RequestHeadID != nil:
		var hh householdModel.HouseholdModel
		err := tx.Where("household_head_token = ?", *req.RequestHeadID).First(&hh).Error
		switch {
		case err == nil:
			resident.ResidentHouseholdID = &hh.HouseholdID
			resident.ResidentHeadID = req.RequestHeadID
			resident.ResidentHouseholdNumber = &hh.HouseholdNumber
		case errors.Is(err, gorm.ErrRecordNotFound):
			// unresolvable head reference: proceed without linkage, but
			// leave a trace for the back office
			log.Printf("[WARN] request %s: head_id %s does not resolve to a household, linking skipped",
				req.RequestID, *req.RequestHeadID)
		default:
			return nil, nil, err
		}
	}

	if err := tx.Create(&resident).Error; err != nil {
		return nil, nil, err
	}

	// back-link the new head
	if household != nil {
		household.HouseholdHeadResidentID = &resident.ResidentID
		if err := tx.Model(&householdModel.HouseholdModel{}).
			Where("household_id = ?", household.HouseholdID).
			Update("household_head_resident_id", resident.ResidentID).Error; err != nil {
			return nil, nil, err
		}
	}

	if err := s.issueDigitalID(tx, &resident, userID, actor, now); err != nil {
		return nil, nil, err
	}

	return &resident, resident.ResidentHouseholdNumber, nil
}

func (s *ApprovalService) issueDigitalID(tx *gorm.DB, resident *residentModel.ResidentModel, userID uuid.UUID, actor Actor, now time.Time) error {
	payload := map[string]interface{}{
		"identifier":       "ID-" + userID.String(),
		"resident_id":      resident.ResidentID,
		"name":             resident.FullName(),
		"contact_no":       resident.ResidentContactNo,
		"email":            resident.ResidentEmail,
		"birthdate":        resident.ResidentBirthdate.Format("2006-01-02"),
		"gender":           resident.ResidentGender,
		"address":          resident.ResidentAddress,
		"household_number": resident.ResidentHouseholdNumber,
		"is_4ps_member":    resident.ResidentIs4PsMember,
		"is_pwd":           resident.ResidentIsPWD,
		"is_indigenous":    resident.ResidentIsIndigenous,
		"is_slp":           resident.ResidentIsSLP,
		"is_senior":        resident.ResidentIsSenior,
		"issued_at":        now.Format(time.RFC3339),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	did := digitalIDModel.DigitalIDModel{
		DigitalIDResidentID: resident.ResidentID,
		DigitalIDIdentifier: "ID-" + userID.String(),
		DigitalIDQRPayload:  datatypes.JSON(raw),
		DigitalIDIssuedBy:   actor.ID,
		DigitalIDIssuedAt:   now,
	}
	return tx.Create(&did).Error
}

// allocateUsername finds a free username within maxUsernameRetries
// attempts or gives up with a ProvisioningError.
func (s *ApprovalService) allocateUsername(tx *gorm.DB, req *model.RegistrationRequestModel, now time.Time) (string, error) {
	base := regHelper.DeriveUsername(req.RequestEmail, req.RequestLastName, now)
	candidate := base
	for attempt := 0; attempt < maxUsernameRetries; attempt++ {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_name = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		suffix, err := regHelper.RandomSuffix()
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%s", base, suffix)
	}
	return "", &ProvisioningError{Reason: fmt.Sprintf("no unique username after %d attempts", maxUsernameRetries)}
}

func (s *ApprovalService) dispatch(n *pendingNotification) {
	if n == nil || s.Notifier == nil {
		return
	}
	if n.approved {
		s.Notifier.NotifyApproval(n.email, n.username, n.tempPassword, n.householdNumber)
		return
	}
	s.Notifier.NotifyRejection(n.email, n.rejectionReason)
}

// deriveHouseholdNumber builds the displayable household number from the
// household's id. Deterministic: the same household always renders the
// same number.
func deriveHouseholdNumber(id uuid.UUID) string {
	return "HH-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// lockForUpdate takes a row lock on postgres. The sqlite used by tests
// has no FOR UPDATE; its writes serialize on the file lock anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
