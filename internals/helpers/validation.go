// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors mengubah error dari Validate() DTO menjadi peta field → pesan
// untuk JsonValidationError. Error non-validator (aturan manual di DTO)
// dipetakan ke kunci "body" apa adanya.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], validationMessage(fe))
		}
		return out
	}
	if err != nil {
		out["body"] = []string{err.Error()}
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "len":
		return "panjang harus " + fe.Param()
	case "min":
		return "minimal " + fe.Param()
	case "max":
		return "maksimal " + fe.Param()
	case "numeric":
		return "harus berupa angka"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}
