package api

import (
	"net/http"

	resdto "gig-negotiation/internal/handler/dto/response"
	"gig-negotiation/internal/handler/httperr"
	"gig-negotiation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SweepHandler struct {
	sweeper commands.SweeperCommands
}

func NewSweepHandler(sweeper commands.SweeperCommands) *SweepHandler {
	return &SweepHandler{sweeper: sweeper}
}

// @Summary Trigger expiry sweep
// @Description Force-expire overdue order requests; escrow only
// @Tags internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /internal/sweep [post]
func (h *SweepHandler) TriggerSweep(c *gin.Context) {
	result, err := h.sweeper.SweepExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SweepResponse{
		Scanned: result.Scanned,
		Expired: result.Expired,
	})
}
