// file: internals/features/users/dto/member_profile_dto.go
package dto

import (
	"errors"

	"github.com/google/uuid"

	"seleksiku_backend/internals/features/users/model"
)

// CreateMemberProfileRequest — dipakai admin registry.
// Scope mengikuti role: member/chair wajib committee, supervisor wajib opportunity.
type CreateMemberProfileRequest struct {
	UserName      string     `json:"user_name" validate:"required,min=3,max=50"`
	FullName      string     `json:"full_name" validate:"required,max=200"`
	NationalID    string     `json:"national_id" validate:"required,max=20"`
	Last4         string     `json:"last4" validate:"required,len=4,numeric"`
	Role          string     `json:"role" validate:"required,oneof=supervisor member chair admin"`
	OpportunityID *uuid.UUID `json:"opportunity_id,omitempty"`
	CommitteeID   *uuid.UUID `json:"committee_id,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

func (r *CreateMemberProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return ValidateRoleScope(r.Role, r.OpportunityID, r.CommitteeID)
}

type UpdateMemberProfileRequest struct {
	FullName      *string    `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Last4         *string    `json:"last4,omitempty" validate:"omitempty,len=4,numeric"`
	Role          *string    `json:"role,omitempty" validate:"omitempty,oneof=supervisor member chair admin"`
	OpportunityID *uuid.UUID `json:"opportunity_id,omitempty"`
	CommitteeID   *uuid.UUID `json:"committee_id,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

func (r *UpdateMemberProfileRequest) Validate() error { return validate.Struct(r) }

// ValidateRoleScope: state ilegal (member/chair tanpa committee) ditolak sebelum
// sampai ke constraint DB, supaya pesannya jelas.
func ValidateRoleScope(role string, opportunityID, committeeID *uuid.UUID) error {
	switch role {
	case model.RoleMember, model.RoleChair:
		if committeeID == nil {
			return errors.New("role member/chair wajib terhubung ke committee")
		}
	case model.RoleSupervisor:
		if opportunityID == nil {
			return errors.New("role supervisor wajib terhubung ke opportunity")
		}
	}
	return nil
}
