package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxOffset — верхняя граница offset: глубокий OFFSET в Postgres дорог.
const MaxOffset = 10000

// Page — окно выборки списка.
type Page struct {
	Limit  int
	Offset int
}

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ParsePage читает ?limit=&offset=.
// Нечисловой limit заменяется дефолтом, нечисловой или отрицательный offset — нулём.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) Page {
	p := Page{Limit: ClampInt(defaultLimit, 1, maxLimit)}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		p.Limit = ClampInt(v, 1, maxLimit)
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		p.Offset = min(v, MaxOffset)
	}
	return p
}
