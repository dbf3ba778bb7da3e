// file: internals/features/candidates/controller/queue_filters_test.go
package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCountPendingInterview(t *testing.T) {
	makeIDs := func(n int) []uuid.UUID {
		out := make([]uuid.UUID, n)
		for i := range out {
			out[i] = uuid.New()
		}
		return out
	}

	t.Run("antrian lebih dari satu halaman tetap dihitung penuh", func(t *testing.T) {
		ids := makeIDs(25)
		scored := map[uuid.UUID]struct{}{}
		assert.Equal(t, int64(25), countPendingInterview(ids, scored))
	})

	t.Run("kandidat yang sudah dinilai tidak ikut", func(t *testing.T) {
		ids := makeIDs(25)
		scored := map[uuid.UUID]struct{}{
			ids[0]:  {},
			ids[12]: {},
			ids[24]: {},
		}
		assert.Equal(t, int64(22), countPendingInterview(ids, scored))
	})

	t.Run("skor pada kandidat di luar daftar aktif diabaikan", func(t *testing.T) {
		ids := makeIDs(3)
		scored := map[uuid.UUID]struct{}{uuid.New(): {}}
		assert.Equal(t, int64(3), countPendingInterview(ids, scored))
	})

	t.Run("daftar kosong", func(t *testing.T) {
		assert.Equal(t, int64(0), countPendingInterview(nil, nil))
	})
}

func TestFileReviewStatusCond(t *testing.T) {
	cond, ok := fileReviewStatusCond("")
	assert.True(t, ok)
	assert.Empty(t, cond)

	cond, ok = fileReviewStatusCond("pending")
	assert.True(t, ok)
	assert.Equal(t, "candidate_file_score IS NULL AND candidate_file_not_eligible = false", cond)

	cond, ok = fileReviewStatusCond("done")
	assert.True(t, ok)
	assert.Equal(t, "(candidate_file_score IS NOT NULL OR candidate_file_not_eligible = true)", cond)

	_, ok = fileReviewStatusCond("selesai")
	assert.False(t, ok)
}
