package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateRoleScope(t *testing.T) {
	oppID := uuid.New()
	comID := uuid.New()

	assert.NoError(t, ValidateRoleScope("admin", nil, nil))
	assert.NoError(t, ValidateRoleScope("supervisor", &oppID, nil))
	assert.NoError(t, ValidateRoleScope("member", nil, &comID))
	assert.NoError(t, ValidateRoleScope("chair", &oppID, &comID))

	assert.Error(t, ValidateRoleScope("member", &oppID, nil))
	assert.Error(t, ValidateRoleScope("chair", nil, nil))
	assert.Error(t, ValidateRoleScope("supervisor", nil, &comID))
}

func TestCreateMemberProfileRequestValidate(t *testing.T) {
	comID := uuid.New()

	valid := CreateMemberProfileRequest{
		UserName:    "u1001",
		FullName:    "Ahmad",
		NationalID:  "1098765432",
		Last4:       "4321",
		Role:        "member",
		CommitteeID: &comID,
	}
	assert.NoError(t, valid.Validate())

	t.Run("last4 harus 4 digit angka", func(t *testing.T) {
		r := valid
		r.Last4 = "43a1"
		assert.Error(t, r.Validate())
		r.Last4 = "432"
		assert.Error(t, r.Validate())
	})
	t.Run("role tidak dikenal", func(t *testing.T) {
		r := valid
		r.Role = "manager"
		assert.Error(t, r.Validate())
	})
	t.Run("member tanpa committee", func(t *testing.T) {
		r := valid
		r.CommitteeID = nil
		assert.Error(t, r.Validate())
	})
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{NationalID: "1098765432", Last4: "4321"}).Validate())
	assert.Error(t, (&LoginRequest{NationalID: "", Last4: "4321"}).Validate())
	assert.Error(t, (&LoginRequest{NationalID: "1098765432", Last4: "43"}).Validate())
	assert.Error(t, (&LoginRequest{NationalID: "1098765432", Last4: "abcd"}).Validate())
}
