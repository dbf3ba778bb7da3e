package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// header lengkap dalam urutan sembarang
func fullHeaders() []string {
	out := make([]string, 0, len(ArabicHeaderMap))
	for label := range ArabicHeaderMap {
		out = append(out, label)
	}
	return out
}

func TestHeaderIndex(t *testing.T) {
	t.Run("semua kolom ada", func(t *testing.T) {
		idx, err := HeaderIndex(fullHeaders())
		require.NoError(t, err)
		assert.Len(t, idx, len(ArabicHeaderMap))
	})

	t.Run("header dengan spasi ekstra tetap cocok", func(t *testing.T) {
		headers := fullHeaders()
		headers[0] = "  " + headers[0] + "  "
		_, err := HeaderIndex(headers)
		assert.NoError(t, err)
	})

	t.Run("kolom hilang membatalkan import", func(t *testing.T) {
		headers := fullHeaders()
		_, err := HeaderIndex(headers[1:])
		require.Error(t, err)
		assert.Contains(t, err.Error(), headers[0])
	})

	t.Run("kolom tambahan diabaikan", func(t *testing.T) {
		headers := append([]string{"عمود إضافي"}, fullHeaders()...)
		idx, err := HeaderIndex(headers)
		require.NoError(t, err)
		assert.Equal(t, 1, idx[headers[1]])
	})
}

func TestCandidateFromRow(t *testing.T) {
	oppID := uuid.New()
	headers := fullHeaders()
	idx, err := HeaderIndex(headers)
	require.NoError(t, err)

	cells := make([]string, len(headers))
	set := func(label, v string) { cells[idx[label]] = v }

	set("السجل المدني", " 1234567890 ")
	set("اسم المتقدم", "أحمد محمد")
	set("رقم الجوال", "+966 50-123-4567")
	set("سنوات عمل مدير", "3.0")
	set("سنوات عمل وكيل", "")
	set("التخصص", "رياضيات")

	cand, ok := CandidateFromRow(oppID, cells, idx)
	require.True(t, ok)
	assert.Equal(t, oppID, cand.CandidateOpportunityID)
	assert.Equal(t, "1234567890", cand.CandidateNationalID)
	assert.Equal(t, "أحمد محمد", cand.CandidateFullName)
	assert.Equal(t, "966501234567", cand.CandidateMobile)
	assert.Equal(t, 3, cand.CandidateYearsDirector)
	assert.Equal(t, 0, cand.CandidateYearsDeputy)
	assert.Equal(t, "رياضيات", cand.CandidateSpecialization)

	t.Run("tanpa national_id dilewati", func(t *testing.T) {
		c2 := append([]string(nil), cells...)
		c2[idx["السجل المدني"]] = "  "
		_, ok := CandidateFromRow(oppID, c2, idx)
		assert.False(t, ok)
	})
	t.Run("tanpa nama dilewati", func(t *testing.T) {
		c2 := append([]string(nil), cells...)
		c2[idx["اسم المتقدم"]] = ""
		_, ok := CandidateFromRow(oppID, c2, idx)
		assert.False(t, ok)
	})
	t.Run("baris pendek tidak panik", func(t *testing.T) {
		_, ok := CandidateFromRow(oppID, []string{}, idx)
		assert.False(t, ok)
	})
}

func TestCleanInt(t *testing.T) {
	assert.Equal(t, 0, CleanInt(""))
	assert.Equal(t, 3, CleanInt("3"))
	assert.Equal(t, 3, CleanInt("3.0"))
	assert.Equal(t, 3, CleanInt("3,5")) // truncate, bukan round
	assert.Equal(t, 0, CleanInt("abc"))
}

func TestNormalizeMobile(t *testing.T) {
	assert.Equal(t, "966501234567", NormalizeMobile("+966 50 123 4567"))
	assert.Equal(t, "0501234567", NormalizeMobile("050-123-4567"))
	assert.Equal(t, "", NormalizeMobile("  "))
}
