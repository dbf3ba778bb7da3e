package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	type loginForm struct {
		NationalID string `validate:"required,max=20"`
		Last4      string `validate:"required,len=4,numeric"`
	}
	v := validator.New()

	t.Run("error validator jadi peta per field", func(t *testing.T) {
		err := v.Struct(loginForm{Last4: "12"})
		require.Error(t, err)

		out := FieldErrors(err)
		assert.Equal(t, []string{"wajib diisi"}, out["nationalid"])
		assert.Equal(t, []string{"panjang harus 4"}, out["last4"])
	})

	t.Run("error manual masuk kunci body", func(t *testing.T) {
		out := FieldErrors(errors.New("skor berkas harus di antara 0 dan 50"))
		assert.Equal(t, []string{"skor berkas harus di antara 0 dan 50"}, out["body"])
	})

	t.Run("nil aman", func(t *testing.T) {
		assert.Empty(t, FieldErrors(nil))
	})
}
