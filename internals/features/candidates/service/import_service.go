// file: internals/features/candidates/service/import_service.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"seleksiku_backend/internals/features/candidates/model"
)

// Label header Arab pada file Excel rekrutmen → field kandidat.
// Semua label wajib ada; kalau ada yang hilang, import dibatalkan.
var ArabicHeaderMap = map[string]string{
	"اسم المتقدم":                  "full_name",
	"السجل المدني":                 "national_id",
	"رقم الجوال":                   "mobile",
	"التخصص":                       "specialization",
	"الرتبة الوظيفية":              "rank",
	"العمل الحالي":                 "current_work",
	"تاريخ المباشرة (هجري)":        "start_date_hijri",
	"مدرسة المتقدم":                "school",
	"قطاع المتقدم":                 "sector",
	"الوظيفة المتقدم عليها":        "applied_position",
	"مدرسة الفرصة":                 "opportunity_school",
	"قطاع الفرصة":                  "opportunity_sector",
	"سبق العمل في الإدارة المدرسية": "admin_exp",
	"سنوات عمل مدير":               "years_director",
	"سنوات عمل وكيل":               "years_deputy",
	"رابط السيرة الذاتية":          "cv_url",
}

var nonDigitRe = regexp.MustCompile(`\D+`)

func CleanStr(v string) string { return strings.TrimSpace(v) }

// CleanInt menoleransi "3", "3.0", dan sel kosong (→ 0).
func CleanInt(v string) int {
	s := CleanStr(v)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// NormalizeMobile membuang semua karakter non-digit (966xxxxxxxxx dibiarkan apa adanya).
func NormalizeMobile(v string) string {
	return nonDigitRe.ReplaceAllString(CleanStr(v), "")
}

// HeaderIndex memetakan label Arab → indeks kolom (0-based) dari baris header.
// Mengembalikan error yang menyebut label yang hilang.
func HeaderIndex(headers []string) (map[string]int, error) {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		pos[CleanStr(h)] = i
	}

	idx := make(map[string]int, len(ArabicHeaderMap))
	var missing []string
	for label := range ArabicHeaderMap {
		i, ok := pos[label]
		if !ok {
			missing = append(missing, label)
			continue
		}
		idx[label] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("kolom wajib tidak ditemukan di Excel: %v", missing)
	}
	return idx, nil
}

// CandidateFromRow membangun model kandidat dari satu baris sel.
// Mengembalikan (nil, false) kalau national_id atau nama kosong — baris dilewati.
func CandidateFromRow(opportunityID uuid.UUID, cells []string, idx map[string]int) (*model.CandidateModel, bool) {
	cell := func(label string) string {
		i := idx[label]
		if i >= len(cells) {
			return ""
		}
		return cells[i]
	}

	nationalID := CleanStr(cell("السجل المدني"))
	fullName := CleanStr(cell("اسم المتقدم"))
	if nationalID == "" || fullName == "" {
		return nil, false
	}

	return &model.CandidateModel{
		CandidateOpportunityID:     opportunityID,
		CandidateNationalID:        nationalID,
		CandidateFullName:          fullName,
		CandidateMobile:            NormalizeMobile(cell("رقم الجوال")),
		CandidateSpecialization:    CleanStr(cell("التخصص")),
		CandidateRank:              CleanStr(cell("الرتبة الوظيفية")),
		CandidateCurrentWork:       CleanStr(cell("العمل الحالي")),
		CandidateStartDateHijri:    CleanStr(cell("تاريخ المباشرة (هجري)")),
		CandidateSchool:            CleanStr(cell("مدرسة المتقدم")),
		CandidateSector:            CleanStr(cell("قطاع المتقدم")),
		CandidateAppliedPosition:   CleanStr(cell("الوظيفة المتقدم عليها")),
		CandidateOpportunitySchool: CleanStr(cell("مدرسة الفرصة")),
		CandidateOpportunitySector: CleanStr(cell("قطاع الفرصة")),
		CandidateAdminExp:          CleanStr(cell("سبق العمل في الإدارة المدرسية")),
		CandidateYearsDirector:     CleanInt(cell("سنوات عمل مدير")),
		CandidateYearsDeputy:       CleanInt(cell("سنوات عمل وكيل")),
		CandidateCVURL:             CleanStr(cell("رابط السيرة الذاتية")),
	}, true
}
