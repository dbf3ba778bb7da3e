// file: internals/features/users/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"seleksiku_backend/internals/features/users/model"
)

var validate = validator.New()

// LoginRequest — kredensial: nomor identitas + 4 digit terakhir no. HP.
type LoginRequest struct {
	NationalID string `json:"national_id" validate:"required,max=20"`
	Last4      string `json:"last4" validate:"required,len=4,numeric"`
}

func (r *LoginRequest) Validate() error { return validate.Struct(r) }

type MemberProfileResponse struct {
	MemberProfileID   uuid.UUID  `json:"member_profile_id"`
	UserName          string     `json:"user_name"`
	FullName          string     `json:"full_name"`
	NationalID        string     `json:"national_id"`
	Role              string     `json:"role"`
	OpportunityID     *uuid.UUID `json:"opportunity_id,omitempty"`
	CommitteeID       *uuid.UUID `json:"committee_id,omitempty"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	TokenType   string                `json:"token_type"`
	ExpiresAt   time.Time             `json:"expires_at"`
	Profile     MemberProfileResponse `json:"profile"`
}

func FromProfileModel(m *model.MemberProfileModel) MemberProfileResponse {
	return MemberProfileResponse{
		MemberProfileID: m.MemberProfileID,
		UserName:        m.MemberProfileUserName,
		FullName:        m.MemberProfileFullName,
		NationalID:      m.MemberProfileNationalID,
		Role:            m.MemberProfileRole,
		OpportunityID:   m.MemberProfileOpportunityID,
		CommitteeID:     m.MemberProfileCommitteeID,
		IsActive:        m.MemberProfileIsActive,
		CreatedAt:       m.MemberProfileCreatedAt,
	}
}

func FromProfileModelList(items []model.MemberProfileModel) []MemberProfileResponse {
	out := make([]MemberProfileResponse, 0, len(items))
	for i := range items {
		out = append(out, FromProfileModel(&items[i]))
	}
	return out
}
