package responses

// ProfessionalAnalytics aggregates a single provider's activity. Revenue
// fields are sums over that provider's settlements, in minor currency units;
// TotalEarnings is the professional's share after the platform fee.
type ProfessionalAnalytics struct {
	ProfessionalID        string `json:"professional_id"`
	TotalAppointments     int    `json:"total_appointments"`
	CompletedAppointments int    `json:"completed_appointments"`
	PendingAppointments   int    `json:"pending_appointments"`
	GrossRevenue          int64  `json:"gross_revenue"`
	PlatformFees          int64  `json:"platform_fees"`
	TotalEarnings         int64  `json:"total_earnings"`
}

type PlatformOverview struct {
	TotalProfessionals    int   `json:"total_professionals"`
	ApprovedProfessionals int   `json:"approved_professionals"`
	PendingProfessionals  int   `json:"pending_professionals"`
	RejectedProfessionals int   `json:"rejected_professionals"`
	TotalAppointments     int   `json:"total_appointments"`
	CompletedPayments     int   `json:"completed_payments"`
	GrossVolume           int64 `json:"gross_volume"`
	PlatformRevenue       int64 `json:"platform_revenue"`
	ProfessionalPayout    int64 `json:"professional_payout"`
}
