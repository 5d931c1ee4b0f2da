package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

func TestNormalizeKind(t *testing.T) {
	cases := []struct {
		name  string
		label string
		want  attendance.Kind
	}{
		{"bare in", "In", attendance.KindIn},
		{"bare out", "Out", attendance.KindOut},
		{"decorated in", "In: Delhi Office", attendance.KindIn},
		{"decorated out", "Out: Head Office", attendance.KindOut},
		{"whitespace around bare label", "  In  ", attendance.KindIn},
		{"whitespace before colon", "Out : Branch", attendance.KindOut},
		{"case sensitive", "in", attendance.KindUnknown},
		{"uppercase", "IN", attendance.KindUnknown},
		{"unrelated label", "Break: Lunch", attendance.KindUnknown},
		{"empty", "", attendance.KindUnknown},
		{"colon only", ":", attendance.KindUnknown},
		{"free text containing in", "Checked In", attendance.KindUnknown},
		{"double colon keeps first prefix", "In: Office: Floor 2", attendance.KindIn},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NormalizeKind(c.label))
		})
	}
}
