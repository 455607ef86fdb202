package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SocioProphet/zenflows/internal/pkg/page"
)

// parsePageParams reads the cursor and limit query params. A cursor that does
// not decode is caller error, rejected here so it never reaches the store.
func parsePageParams(c *gin.Context) (page.Params, error) {
	p := page.Params{Cursor: c.Query("cursor")}
	if _, err := page.Decode(p.Cursor); err != nil {
		return p, err
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return p, err
		}
		p.Limit = limit
	}
	return p, nil
}
