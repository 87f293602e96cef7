package handlers

import (
	"net/http"

	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/utils"
)

// ServiceStatus answers the API root with a short self-description so
// integrators can discover the main endpoint groups.
func ServiceStatus(w http.ResponseWriter, r *http.Request) {
	status := responses.ServiceStatus{
		Status:  constvars.ServiceStatusOperational,
		Service: constvars.AppServiceName,
		Version: constvars.AppVersion,
		Endpoints: map[string]string{
			"onboarding":    "/api/onboarding/submit",
			"professionals": "/api/professionals",
			"appointments":  "/api/appointments",
			"payments":      "/api/payments",
			"testimonials":  "/api/testimonials",
			"admin":         "/api/admin",
			"health":        "/health",
		},
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, status)
}
