package attendance

import (
	"strings"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

// NormalizeKind classifies a raw event label. Labels shaped like
// "<Kind>: <free text>" (the mobile client appends the office name, e.g.
// "In: Head Office") classify by the prefix before the first colon; a bare
// label classifies as itself. Only the exact strings "In" and "Out" are
// recognized; everything else is Unknown.
func NormalizeKind(rawLabel string) attendance.Kind {
	label := strings.TrimSpace(rawLabel)
	if idx := strings.Index(label, ":"); idx >= 0 {
		label = strings.TrimSpace(label[:idx])
	}

	switch label {
	case string(attendance.KindIn):
		return attendance.KindIn
	case string(attendance.KindOut):
		return attendance.KindOut
	default:
		return attendance.KindUnknown
	}
}
