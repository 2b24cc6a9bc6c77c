package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive numeric path parameter. It aborts with 422 when the value is malformed.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

// queryInt parses an optional integer query parameter, falling back to def when absent
func queryInt(ctx *gin.Context, name string, def int) (int, bool) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return value, true
}
