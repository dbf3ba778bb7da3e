// file: internals/features/users/model/member_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role profil. member/chair wajib terhubung ke committee (dijaga di DTO + constraint DB).
const (
	RoleSupervisor = "supervisor" // penilai berkas, terhubung ke opportunity
	RoleMember     = "member"     // anggota lajnah wawancara
	RoleChair      = "chair"      // ketua lajnah
	RoleAdmin      = "admin"      // admin distribusi / registry
)

type MemberProfileModel struct {
	// PK
	MemberProfileID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_profile_id" json:"member_profile_id"`

	// Identitas login
	MemberProfileUserName   string `gorm:"size:50;not null;uniqueIndex;column:member_profile_user_name" json:"member_profile_user_name"`
	MemberProfileFullName   string `gorm:"size:200;not null;column:member_profile_full_name" json:"member_profile_full_name"`
	MemberProfileNationalID string `gorm:"size:20;not null;uniqueIndex;column:member_profile_national_id" json:"member_profile_national_id"`

	// Kredensial: 4 digit terakhir no. HP, disimpan sebagai hash bcrypt
	MemberProfileLast4Hash string `gorm:"not null;column:member_profile_last4_hash" json:"-"`

	// Role & scope
	MemberProfileRole          string     `gorm:"type:varchar(20);not null;column:member_profile_role;check:member_profile_role_scope,member_profile_role NOT IN ('member'::varchar,'chair'::varchar) OR member_profile_committee_id IS NOT NULL" json:"member_profile_role"`
	MemberProfileOpportunityID *uuid.UUID `gorm:"type:uuid;column:member_profile_opportunity_id" json:"member_profile_opportunity_id,omitempty"`
	MemberProfileCommitteeID   *uuid.UUID `gorm:"type:uuid;column:member_profile_committee_id" json:"member_profile_committee_id,omitempty"`

	// Status & audit
	MemberProfileIsActive  bool      `gorm:"not null;default:true;column:member_profile_is_active" json:"member_profile_is_active"`
	MemberProfileCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:member_profile_created_at" json:"member_profile_created_at"`
	MemberProfileUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:member_profile_updated_at" json:"member_profile_updated_at"`
}

func (MemberProfileModel) TableName() string { return "member_profiles" }

// RoleNeedsCommittee: member & chair harus punya committee
func RoleNeedsCommittee(role string) bool {
	return role == RoleMember || role == RoleChair
}

func ValidRole(role string) bool {
	switch role {
	case RoleSupervisor, RoleMember, RoleChair, RoleAdmin:
		return true
	}
	return false
}
