package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/identity"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/models"
)

// Error variables
var (
	ErrHouseholdNameTaken = errors.New("household name already in use")
	ErrHouseholdNotFound  = errors.New("household not found")
	ErrNotAdministrator   = errors.New("administrator or owner role required")
	ErrNotOwner           = errors.New("only the owner can delete the household")
	ErrAlreadyMember      = errors.New("user is already a member of this household")
	ErrInviteeNotFound    = errors.New("no account exists for the invited email")
)

// HouseholdReader defines read-only operations for households.
type HouseholdReader interface {
	GetByID(ctx context.Context, householdID uuid.UUID) (*models.HouseholdDB, error)
	GetByName(ctx context.Context, name string) (*models.HouseholdDB, error)
	List(ctx context.Context, limit, offset int) ([]models.HouseholdDB, error)
}

// HouseholdWriter defines write operations for households.
type HouseholdWriter interface {
	Save(ctx context.Context, household models.HouseholdDB) error
	Delete(ctx context.Context, householdID uuid.UUID) error
}

// MembershipReader defines read-only operations for memberships.
type MembershipReader interface {
	GetByHouseholdAndUser(ctx context.Context, householdID, userID uuid.UUID) (*models.MembershipDB, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]models.MembershipDB, error)
}

// MembershipWriter defines write operations for memberships.
type MembershipWriter interface {
	Save(ctx context.Context, membership models.MembershipDB) error
	DeleteByHousehold(ctx context.Context, householdID uuid.UUID) error
}

// IdentityReader resolves emails against the external identity directory.
type IdentityReader interface {
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
}

// HouseholdService handles household CRUD and membership administration.
type HouseholdService struct {
	reader       HouseholdReader
	writer       HouseholdWriter
	memberReader MembershipReader
	memberWriter MembershipWriter
	directory    IdentityReader
	events       EventWriter
}

// NewHouseholdService creates a new HouseholdService instance.
func NewHouseholdService(
	reader HouseholdReader,
	writer HouseholdWriter,
	memberReader MembershipReader,
	memberWriter MembershipWriter,
	directory IdentityReader,
	events EventWriter,
) *HouseholdService {
	return &HouseholdService{
		reader:       reader,
		writer:       writer,
		memberReader: memberReader,
		memberWriter: memberWriter,
		directory:    directory,
		events:       events,
	}
}

// Create creates a household and its owner membership. Both writes run in
// the request transaction, so a failed membership write rolls back the
// household row.
func (svc *HouseholdService) Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.HouseholdDB, error) {
	existing, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check household name", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("household name taken", "name", name)
		return nil, ErrHouseholdNameTaken
	}

	household := models.HouseholdDB{
		HouseholdID: uuid.New(),
		Name:        name,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := svc.writer.Save(ctx, household); err != nil {
		logger.Log.Errorw("failed to save household", "err", err)
		return nil, err
	}

	membership := models.MembershipDB{
		MemberID:    uuid.New(),
		HouseholdID: household.HouseholdID,
		UserID:      ownerID,
		Role:        models.RoleOwner,
	}

	if err := svc.memberWriter.Save(ctx, membership); err != nil {
		logger.Log.Errorw("failed to save owner membership", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, models.EventHouseholdCreated, household.HouseholdID, ownerID)

	return &household, nil
}

// List returns households. limit <= 0 returns everything.
func (svc *HouseholdService) List(ctx context.Context, limit, offset int) ([]models.HouseholdDB, error) {
	return svc.reader.List(ctx, limit, offset)
}

// Get returns a single household by id.
func (svc *HouseholdService) Get(ctx context.Context, householdID uuid.UUID) (*models.HouseholdDB, error) {
	household, err := svc.reader.GetByID(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if household == nil {
		return nil, ErrHouseholdNotFound
	}
	return household, nil
}

// Invite adds the user behind inviteeEmail to the household. The acting
// user must hold the administrator or owner role; the invitee is resolved
// through the identity directory and must not already be a member.
func (svc *HouseholdService) Invite(ctx context.Context, householdID, actingUserID uuid.UUID, inviteeEmail, role string) (*models.MembershipDB, error) {
	household, err := svc.reader.GetByID(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if household == nil {
		return nil, ErrHouseholdNotFound
	}

	acting, err := svc.memberReader.GetByHouseholdAndUser(ctx, householdID, actingUserID)
	if err != nil {
		return nil, err
	}
	if acting == nil || (acting.Role != models.RoleAdministrator && acting.Role != models.RoleOwner) {
		logger.Log.Errorw("invite without admin role", "household_id", householdID, "user_id", actingUserID)
		return nil, ErrNotAdministrator
	}

	invitee, err := svc.directory.GetByEmail(ctx, inviteeEmail)
	if err != nil {
		logger.Log.Errorw("identity lookup failed", "email", inviteeEmail, "err", err)
		return nil, err
	}
	if invitee == nil {
		return nil, ErrInviteeNotFound
	}

	existing, err := svc.memberReader.GetByHouseholdAndUser(ctx, householdID, invitee.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("invitee already a member", "household_id", householdID, "user_id", invitee.UserID)
		return nil, ErrAlreadyMember
	}

	if role == "" {
		role = models.RoleMember
	}

	membership := models.MembershipDB{
		MemberID:    uuid.New(),
		HouseholdID: householdID,
		UserID:      invitee.UserID,
		Role:        role,
	}

	if err := svc.memberWriter.Save(ctx, membership); err != nil {
		logger.Log.Errorw("failed to save membership", "err", err)
		return nil, err
	}

	return &membership, nil
}

// ListMembers returns the memberships of a household. An unknown household
// yields an empty list, never an error.
func (svc *HouseholdService) ListMembers(ctx context.Context, householdID uuid.UUID) ([]models.MembershipDB, error) {
	return svc.memberReader.ListByHousehold(ctx, householdID)
}

// Delete removes a household and all of its memberships, memberships first.
// Only the stored owner may delete; a nonexistent household is reported as
// ErrNotOwner as well, matching the legacy lookup-by-id-and-owner behavior.
func (svc *HouseholdService) Delete(ctx context.Context, householdID, actingUserID uuid.UUID) error {
	household, err := svc.reader.GetByID(ctx, householdID)
	if err != nil {
		return err
	}
	if household == nil || household.OwnerID != actingUserID {
		logger.Log.Errorw("delete by non-owner", "household_id", householdID, "user_id", actingUserID)
		return ErrNotOwner
	}

	if err := svc.memberWriter.DeleteByHousehold(ctx, householdID); err != nil {
		logger.Log.Errorw("failed to delete memberships", "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, householdID); err != nil {
		logger.Log.Errorw("failed to delete household", "err", err)
		return err
	}

	publishEvent(ctx, svc.events, models.EventHouseholdDeleted, householdID, actingUserID)

	return nil
}
