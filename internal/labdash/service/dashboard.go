package service

import "context"

// DashboardSummary holds the pending-work counters shown on the home page.
type DashboardSummary struct {
	DosisAltasPendientes  int `json:"dosis_altas_pendientes"`
	SolicitudesPendientes int `json:"solicitudes_pendientes"`
}

// DashboardService backs the home page counters. The dose and request
// workflows are not tracked yet, so the counters are always zero.
type DashboardService struct{}

func (DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	return DashboardSummary{}, nil
}
