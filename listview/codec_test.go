package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuery_OmitsSentinelsAndDefaults(t *testing.T) {
	defaults := Filters{"status": "all", "city": "", "purpose": "residential"}
	filters := Filters{
		"status":  "قيد المراجعة",
		"city":    "null",          // sentinel, dropped
		"purpose": "residential",   // equals default, dropped
		"owner":   "  ",            // blank after trim, dropped
	}

	q := EncodeQuery(filters, defaults, 3, 25)

	assert.Equal(t, "قيد المراجعة", q.Get("status"))
	assert.False(t, q.Has("city"))
	assert.False(t, q.Has("purpose"))
	assert.False(t, q.Has("owner"))
	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "25", q.Get("per_page"))
}

func TestEncodeQuery_PageAndPerPageAlwaysPresent(t *testing.T) {
	q := EncodeQuery(Filters{}, Filters{}, 0, 0)
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "15", q.Get("per_page"))

	q = EncodeQuery(Filters{}, Filters{}, 2, 100)
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "100", q.Get("per_page"))
}

func TestEncodeQuery_EquivalentStatesEncodeEqually(t *testing.T) {
	defaults := Filters{"status": "all", "city": ""}
	a := EncodeQuery(Filters{"status": "all", "city": "الرياض"}, defaults, 1, 15)
	b := EncodeQuery(Filters{"city": "الرياض"}, defaults, 1, 15)
	assert.Equal(t, a.Encode(), b.Encode())
}

func TestFiltersClone_Independent(t *testing.T) {
	orig := Filters{"status": "all"}
	cp := orig.Clone()
	cp["status"] = "مفتوح"
	assert.Equal(t, "all", orig["status"])
}
