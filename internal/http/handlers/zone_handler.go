// README: Zone resolution handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"limoquote/internal/modules/zones"
)

type ZoneHandler struct {
	zones *zones.Service
}

func NewZoneHandler(svc *zones.Service) *ZoneHandler {
	return &ZoneHandler{zones: svc}
}

type resolveReq struct {
	Address string `json:"address"`
}

func (h *ZoneHandler) Resolve(c *gin.Context) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Address == "" {
		writeError(c, http.StatusBadRequest, "address is required")
		return
	}
	res, err := h.zones.Resolve(c.Request.Context(), req.Address)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
