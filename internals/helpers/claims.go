// file: internals/helpers/claims.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil profile_id dari Locals (di-set oleh AuthMiddleware).
func GetProfileID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("profile_id").(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Sesi tidak valid")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

// GetOpportunityID mengembalikan uuid.Nil kalau profil tidak terhubung ke fursah/opportunity.
func GetOpportunityID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("opportunity_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GetCommitteeID mengembalikan uuid.Nil kalau profil tidak terhubung ke lajnah/committee.
func GetCommitteeID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("committee_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
