// file: internals/features/candidates/controller/queue_filters.go
package controller

import "github.com/google/uuid"

// countPendingInterview menghitung kandidat yang belum dinilai member
// pemanggil dari seluruh daftar kandidat aktif lajnah.
func countPendingInterview(assignedIDs []uuid.UUID, scoredSet map[uuid.UUID]struct{}) int64 {
	var n int64
	for _, id := range assignedIDs {
		if _, ok := scoredSet[id]; !ok {
			n++
		}
	}
	return n
}

// fileReviewStatusCond memetakan query ?status= ke kondisi penilaian berkas.
// Kosong berarti tanpa filter; ok=false untuk nilai di luar pending/done.
func fileReviewStatusCond(status string) (cond string, ok bool) {
	switch status {
	case "":
		return "", true
	case "pending":
		return "candidate_file_score IS NULL AND candidate_file_not_eligible = false", true
	case "done":
		return "(candidate_file_score IS NOT NULL OR candidate_file_not_eligible = true)", true
	default:
		return "", false
	}
}
