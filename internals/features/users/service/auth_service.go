// file: internals/features/users/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"seleksiku_backend/internals/configs"
	"seleksiku_backend/internals/features/users/dto"
	"seleksiku_backend/internals/features/users/model"
)

const accessTTLDefault = 24 * time.Hour

// Satu pesan untuk semua mode gagal login. Sengaja tidak dibedakan
// (salah last4 / profil tidak ada / nonaktif) supaya tidak bocor informasi.
const loginFailedMessage = "Data login tidak valid atau akun belum aktif."

/* ===============================
   Credential helpers
=================================*/

func HashLast4(last4 string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(last4)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func compareLast4(hash, last4 string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(last4))) == nil
}

/* ===============================
   Login
=================================*/

// Login mencari profil aktif berdasarkan national_id lalu membandingkan last4.
// Sukses menghasilkan JWT berisi profile_id + role + scope (opportunity/committee).
func Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	var prof model.MemberProfileModel
	err := db.First(&prof, "member_profile_national_id = ?", strings.TrimSpace(req.NationalID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, loginFailedMessage)
		}
		log.Println("[ERROR] Login lookup:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !prof.MemberProfileIsActive || !compareLast4(prof.MemberProfileLast4Hash, req.Last4) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, loginFailedMessage)
	}

	expiresAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"profile_id": prof.MemberProfileID.String(),
		"role":       prof.MemberProfileRole,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	if prof.MemberProfileOpportunityID != nil {
		claims["opportunity_id"] = prof.MemberProfileOpportunityID.String()
	}
	if prof.MemberProfileCommitteeID != nil {
		claims["committee_id"] = prof.MemberProfileCommitteeID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Println("[ERROR] Sign token:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Profile:     dto.FromProfileModel(&prof),
	}, nil
}

/* ===============================
   Logout (blacklist)
=================================*/

// Logout memasukkan token ke blacklist sampai masa berlakunya habis.
func Logout(db *gorm.DB, tokenString string) error {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah pernah di-blacklist → anggap sukses (idempotent)
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(err.Error(), "23505") {
			return nil
		}
		log.Println("[ERROR] Logout blacklist:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}
