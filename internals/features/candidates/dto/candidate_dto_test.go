package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestFileScoreRequestValidate(t *testing.T) {
	t.Run("skor saja", func(t *testing.T) {
		r := FileScoreRequest{Score: f64(42.5)}
		assert.NoError(t, r.Validate())
	})
	t.Run("ineligible saja", func(t *testing.T) {
		r := FileScoreRequest{NotEligible: true, Reason: "berkas tidak lengkap"}
		assert.NoError(t, r.Validate())
	})
	t.Run("dua-duanya ditolak", func(t *testing.T) {
		r := FileScoreRequest{Score: f64(10), NotEligible: true}
		assert.Error(t, r.Validate())
	})
	t.Run("kosong ditolak", func(t *testing.T) {
		r := FileScoreRequest{}
		assert.Error(t, r.Validate())
	})
	t.Run("skor di luar rentang", func(t *testing.T) {
		assert.Error(t, (&FileScoreRequest{Score: f64(-1)}).Validate())
		assert.Error(t, (&FileScoreRequest{Score: f64(50.5)}).Validate())
	})
	t.Run("batas rentang", func(t *testing.T) {
		assert.NoError(t, (&FileScoreRequest{Score: f64(0)}).Validate())
		assert.NoError(t, (&FileScoreRequest{Score: f64(50)}).Validate())
	})
}

func TestInterviewScoreRequestValidate(t *testing.T) {
	assert.NoError(t, (&InterviewScoreRequest{Score: 0}).Validate())
	assert.NoError(t, (&InterviewScoreRequest{Score: 50, Notes: "bagus"}).Validate())
	assert.Error(t, (&InterviewScoreRequest{Score: 51}).Validate())
	assert.Error(t, (&InterviewScoreRequest{Score: -1}).Validate())
}

func TestMaskNationalID(t *testing.T) {
	assert.Equal(t, "******7890", maskNationalID("1234567890"))
	assert.Equal(t, "1234", maskNationalID("1234"))
	assert.Equal(t, "12", maskNationalID("12"))
}
