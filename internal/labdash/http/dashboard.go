package http

import (
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP handles GET /api/dashboard/summary
//
//	@Summary		Dashboard counters
//	@Tags			Dashboard
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	dashsdk.DashboardSummaryResponse
//	@Failure		401	{object}	dashsdk.ErrorResponse	"No session"
//	@Router			/api/dashboard/summary [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.DashboardService.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.DashboardSummaryResponse{
		DosisAltasPendientes:  s.DosisAltasPendientes,
		SolicitudesPendientes: s.SolicitudesPendientes,
	})
}
