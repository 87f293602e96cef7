package responses

type ServiceStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthStatus struct {
	Status string            `json:"status"`
	Stores map[string]string `json:"stores"`
}
