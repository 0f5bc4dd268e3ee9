package dto

// TranscriptionResponse is the body returned by a successful transcription.
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// HealthResponse is the body returned by the health endpoint. It reports
// process liveness only; provider readiness is not checked here.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ServiceInfoResponse describes the service and its routes at the root path.
type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Endpoints map[string]string `json:"endpoints"`
}
