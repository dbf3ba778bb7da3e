package workflow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestDeriveState(t *testing.T) {
	comID := uuid.New()

	tests := []struct {
		name           string
		snap           CandidateSnapshot
		interviewCount int
		want           State
	}{
		{"baru diimpor", CandidateSnapshot{}, 0, StateUnscored},
		{"berkas dinilai", CandidateSnapshot{FileScore: f64(40)}, 0, StateFileScored},
		{"ineligible juga dianggap selesai berkas", CandidateSnapshot{FileNotEligible: true}, 0, StateFileScored},
		{"terdistribusi tanpa skor wawancara", CandidateSnapshot{FileScore: f64(40), AssignedCommitteeID: &comID}, 0, StateAssigned},
		{"wawancara sebagian", CandidateSnapshot{FileScore: f64(40), AssignedCommitteeID: &comID}, 2, StateInterviewedPartial},
		{"wawancara lengkap", CandidateSnapshot{FileScore: f64(40), AssignedCommitteeID: &comID}, 3, StateInterviewedComplete},
		{"finalized menang atas semuanya", CandidateSnapshot{IsFinalized: true, AssignedCommitteeID: &comID}, 3, StateFinalized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveState(tt.snap, tt.interviewCount))
		})
	}
}

func TestCanScoreFile(t *testing.T) {
	assert.NoError(t, CanScoreFile(CandidateSnapshot{}))
	// skor berkas boleh direvisi setelah distribusi
	comID := uuid.New()
	assert.NoError(t, CanScoreFile(CandidateSnapshot{FileScore: f64(30), AssignedCommitteeID: &comID}))
	assert.ErrorIs(t, CanScoreFile(CandidateSnapshot{IsFinalized: true}), ErrFinalized)
}

func TestCanAssign(t *testing.T) {
	oppID := uuid.New()
	otherOpp := uuid.New()
	comID := uuid.New()

	ready := CandidateSnapshot{OpportunityID: oppID, FileScore: f64(35)}

	t.Run("siap dan lajnah terbuka", func(t *testing.T) {
		assert.NoError(t, CanAssign(ready, oppID, true))
	})
	t.Run("ineligible tetap bisa didistribusikan", func(t *testing.T) {
		snap := CandidateSnapshot{OpportunityID: oppID, FileNotEligible: true}
		assert.NoError(t, CanAssign(snap, oppID, true))
	})
	t.Run("berkas belum dinilai", func(t *testing.T) {
		snap := CandidateSnapshot{OpportunityID: oppID}
		assert.ErrorIs(t, CanAssign(snap, oppID, true), ErrNotReady)
	})
	t.Run("sudah terdistribusi bersifat informasional", func(t *testing.T) {
		snap := ready
		snap.AssignedCommitteeID = &comID
		assert.ErrorIs(t, CanAssign(snap, oppID, true), ErrAlreadyAssigned)
	})
	t.Run("lajnah beda opportunity", func(t *testing.T) {
		assert.ErrorIs(t, CanAssign(ready, otherOpp, true), ErrCommitteeMismatch)
	})
	t.Run("lajnah tertutup", func(t *testing.T) {
		assert.ErrorIs(t, CanAssign(ready, oppID, false), ErrCommitteeClosed)
	})
	t.Run("finalized", func(t *testing.T) {
		snap := ready
		snap.IsFinalized = true
		assert.ErrorIs(t, CanAssign(snap, oppID, true), ErrFinalized)
	})
}

func TestCanScoreInterview(t *testing.T) {
	comID := uuid.New()
	otherCom := uuid.New()

	assigned := CandidateSnapshot{FileScore: f64(35), AssignedCommitteeID: &comID}

	assert.NoError(t, CanScoreInterview(assigned, comID))
	assert.ErrorIs(t, CanScoreInterview(assigned, otherCom), ErrNotAssignedHere)
	assert.ErrorIs(t, CanScoreInterview(CandidateSnapshot{}, comID), ErrNotAssignedHere)

	finalized := assigned
	finalized.IsFinalized = true
	assert.ErrorIs(t, CanScoreInterview(finalized, comID), ErrFinalized)
}

func TestCanFinalize(t *testing.T) {
	comID := uuid.New()
	otherCom := uuid.New()

	scored := CandidateSnapshot{FileScore: f64(35), AssignedCommitteeID: &comID}
	ineligible := CandidateSnapshot{FileNotEligible: true, AssignedCommitteeID: &comID}

	t.Run("lengkap", func(t *testing.T) {
		assert.NoError(t, CanFinalize(scored, comID, 3, false))
	})
	t.Run("wawancara kurang dari 3", func(t *testing.T) {
		assert.ErrorIs(t, CanFinalize(scored, comID, 2, false), ErrInterviewIncomplete)
	})
	t.Run("wawancara lebih dari 3 juga ditolak", func(t *testing.T) {
		assert.ErrorIs(t, CanFinalize(scored, comID, 4, false), ErrInterviewIncomplete)
	})
	t.Run("lajnah lain", func(t *testing.T) {
		assert.ErrorIs(t, CanFinalize(scored, otherCom, 3, false), ErrNotAssignedHere)
	})
	t.Run("sudah final", func(t *testing.T) {
		snap := scored
		snap.IsFinalized = true
		assert.ErrorIs(t, CanFinalize(snap, comID, 3, false), ErrFinalized)
	})
	t.Run("ineligible boleh final saat kebijakan longgar", func(t *testing.T) {
		assert.NoError(t, CanFinalize(ineligible, comID, 3, false))
	})
	t.Run("ineligible ditolak saat kebijakan ketat", func(t *testing.T) {
		assert.ErrorIs(t, CanFinalize(ineligible, comID, 3, true), ErrFileScoreMissing)
	})
	t.Run("tanpa skor berkas selalu ditolak", func(t *testing.T) {
		bare := CandidateSnapshot{AssignedCommitteeID: &comID}
		assert.ErrorIs(t, CanFinalize(bare, comID, 3, false), ErrFileScoreMissing)
		assert.ErrorIs(t, CanFinalize(bare, comID, 3, true), ErrFileScoreMissing)
	})
}

func TestInterviewAverage(t *testing.T) {
	assert.Equal(t, 0.0, InterviewAverage(nil))
	assert.Equal(t, 0.0, InterviewAverage([]float64{40}))
	// rata-rata parsial tidak pernah dihitung
	assert.Equal(t, 0.0, InterviewAverage([]float64{40, 45}))
	assert.Equal(t, 0.0, InterviewAverage([]float64{40, 45, 50, 30}))
	assert.InDelta(t, 35.0, InterviewAverage([]float64{30, 35, 40}), 1e-9)
}

func TestFinalScore(t *testing.T) {
	avg := InterviewAverage([]float64{30, 35, 40})
	require.InDelta(t, 35.0, avg, 1e-9)

	assert.InDelta(t, 70.0, FinalScore(f64(35), false, avg), 1e-9)
	// ineligible selalu 0 walau ada skor wawancara
	assert.Equal(t, 0.0, FinalScore(nil, true, avg))
	assert.Equal(t, 0.0, FinalScore(f64(35), true, avg))
	// belum ada skor berkas
	assert.Equal(t, 0.0, FinalScore(nil, false, avg))
}
