package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	api "thermostat_api"

	"github.com/gin-gonic/gin"
)

const (
	queryLimit      = "limite"
	errLimitInvalid = "limite debe ser un entero no negativo"
)

// parseLimit returns nil when limite is absent.
func parseLimit(c *gin.Context) (*int, bool) {
	qs, present := c.GetQuery(queryLimit)
	if !present {
		return nil, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil || n < 0 {
		return nil, false
	}
	return &n, true
}

// @Summary      Ambient temperature history
// @Description  Newest first. total counts every stored entry, regardless of limite.
// @Tags         termostato
// @Produce      json
// @Param        limite  query     int  false  "Maximum number of entries"  minimum(0)
// @Success      200     {object}  thermostat_api.HistoryResponse
// @Failure      400     {object}  thermostat_api.ErrorResponse
// @Router       /termostato/historial/ [get]
func (h *Handler) getHistory(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		abortWithError(c, http.StatusBadRequest, msgInvalidParam, errLimitInvalid)
		return
	}

	page := h.services.History(limit)
	entries := make([]api.HistoryEntry, 0, len(page.Entries))
	for _, o := range page.Entries {
		entries = append(entries, api.HistoryEntry{
			Temperature: o.Temperature,
			Timestamp:   o.RecordedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	c.JSON(http.StatusOK, api.HistoryResponse{History: entries, Total: page.Total})
}
