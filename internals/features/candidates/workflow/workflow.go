// file: internals/features/candidates/workflow/workflow.go
//
// Satu-satunya tempat untuk aturan tahapan seleksi: state diturunkan dari flag
// kandidat + jumlah skor wawancara, tidak pernah disimpan. Semua guard dan
// aritmetika skor dikumpulkan di sini supaya controller tinggal memanggil
// di dalam transaksinya (setelah mengunci baris kandidat).
package workflow

import (
	"github.com/google/uuid"
)

// Jumlah skor wawancara yang wajib ada sebelum rata-rata dianggap sah.
const RequiredInterviewScores = 3

type State string

const (
	StateUnscored            State = "unscored"
	StateFileScored          State = "file_scored"
	StateAssigned            State = "assigned"
	StateInterviewedPartial  State = "interviewed_partial"
	StateInterviewedComplete State = "interviewed_complete"
	StateFinalized           State = "finalized"
)

// CandidateSnapshot — potret flag kandidat yang dibaca di dalam transaksi
// (setelah SELECT ... FOR UPDATE), bukan dari cache.
type CandidateSnapshot struct {
	OpportunityID       uuid.UUID
	FileScore           *float64
	FileNotEligible     bool
	AssignedCommitteeID *uuid.UUID
	IsFinalized         bool
}

// FileReviewed: tahap berkas selesai — ada skor numerik ATAU ditandai tidak
// memenuhi syarat. Definisi yang sama dipakai untuk kesiapan distribusi.
func (s CandidateSnapshot) FileReviewed() bool {
	return s.FileScore != nil || s.FileNotEligible
}

// DeriveState menghitung posisi kandidat di alur seleksi.
func DeriveState(s CandidateSnapshot, interviewCount int) State {
	if s.IsFinalized {
		return StateFinalized
	}
	if s.AssignedCommitteeID != nil {
		switch {
		case interviewCount >= RequiredInterviewScores:
			return StateInterviewedComplete
		case interviewCount > 0:
			return StateInterviewedPartial
		default:
			return StateAssigned
		}
	}
	if s.FileReviewed() {
		return StateFileScored
	}
	return StateUnscored
}

/* ===============================
   Guard errors
=================================*/

// GuardError — pelanggaran prasyarat tahapan; pesan siap tampil ke user.
type GuardError struct {
	Code    string
	Message string
}

func (e *GuardError) Error() string { return e.Message }

var (
	ErrFinalized = &GuardError{
		Code:    "FINALIZED",
		Message: "Kandidat sudah difinalisasi dan tidak dapat diubah.",
	}
	ErrNotReady = &GuardError{
		Code:    "NOT_READY",
		Message: "Kandidat belum siap didistribusikan (berkas belum dinilai).",
	}
	ErrAlreadyAssigned = &GuardError{
		Code:    "ALREADY_ASSIGNED",
		Message: "Kandidat sudah didistribusikan sebelumnya.",
	}
	ErrCommitteeClosed = &GuardError{
		Code:    "COMMITTEE_CLOSED",
		Message: "Lajnah tidak menerima distribusi (sudah ditutup).",
	}
	ErrCommitteeMismatch = &GuardError{
		Code:    "COMMITTEE_MISMATCH",
		Message: "Lajnah dan kandidat berada di opportunity yang berbeda.",
	}
	ErrNotAssignedHere = &GuardError{
		Code:    "NOT_ASSIGNED_HERE",
		Message: "Kandidat tidak terdaftar di lajnah Anda.",
	}
	ErrFileScoreMissing = &GuardError{
		Code:    "FILE_SCORE_MISSING",
		Message: "Skor berkas belum ada; finalisasi belum bisa dilakukan.",
	}
	ErrInterviewIncomplete = &GuardError{
		Code:    "INTERVIEW_INCOMPLETE",
		Message: "Skor wawancara belum lengkap (wajib tepat 3 penilai).",
	}
)

/* ===============================
   Stage guards
=================================*/

// CanScoreFile: tahap berkas boleh ditulis ulang kapan pun sebelum finalisasi.
func CanScoreFile(s CandidateSnapshot) error {
	if s.IsFinalized {
		return ErrFinalized
	}
	return nil
}

// CanAssign: distribusi sekali jalan ke lajnah terbuka dalam opportunity yang sama.
// ErrAlreadyAssigned diperlakukan informasional oleh pemanggil (bukan kegagalan).
func CanAssign(s CandidateSnapshot, committeeOpportunityID uuid.UUID, committeeOpen bool) error {
	if s.IsFinalized {
		return ErrFinalized
	}
	if s.AssignedCommitteeID != nil {
		return ErrAlreadyAssigned
	}
	if !s.FileReviewed() {
		return ErrNotReady
	}
	if committeeOpportunityID != s.OpportunityID {
		return ErrCommitteeMismatch
	}
	if !committeeOpen {
		return ErrCommitteeClosed
	}
	return nil
}

// CanScoreInterview: hanya untuk kandidat yang terdaftar di lajnah pemanggil
// dan belum final.
func CanScoreInterview(s CandidateSnapshot, committeeID uuid.UUID) error {
	if s.IsFinalized {
		return ErrFinalized
	}
	if s.AssignedCommitteeID == nil || *s.AssignedCommitteeID != committeeID {
		return ErrNotAssignedHere
	}
	return nil
}

// CanFinalize: transisi terminal. requireFileScore datang dari konfigurasi;
// false berarti kandidat ineligible (tanpa skor numerik) tetap boleh final.
func CanFinalize(s CandidateSnapshot, committeeID uuid.UUID, interviewCount int, requireFileScore bool) error {
	if s.IsFinalized {
		return ErrFinalized
	}
	if s.AssignedCommitteeID == nil || *s.AssignedCommitteeID != committeeID {
		return ErrNotAssignedHere
	}
	if requireFileScore {
		if s.FileScore == nil {
			return ErrFileScoreMissing
		}
	} else if !s.FileReviewed() {
		return ErrFileScoreMissing
	}
	if interviewCount != RequiredInterviewScores {
		return ErrInterviewIncomplete
	}
	return nil
}

/* ===============================
   Score arithmetic
=================================*/

// InterviewAverage: rata-rata hanya sah saat tepat 3 skor; selain itu 0.
// Kebijakan all-or-nothing, bukan rata-rata parsial.
func InterviewAverage(scores []float64) float64 {
	if len(scores) != RequiredInterviewScores {
		return 0
	}
	var total float64
	for _, v := range scores {
		total += v
	}
	return total / float64(RequiredInterviewScores)
}

// FinalScore = skor berkas + rata-rata wawancara; 0 untuk kandidat ineligible
// atau yang belum punya skor berkas.
func FinalScore(fileScore *float64, notEligible bool, interviewAvg float64) float64 {
	if notEligible || fileScore == nil {
		return 0
	}
	return *fileScore + interviewAvg
}
