package rest

import (
	"net/http"
	"time"
)

// lexiconStats defines the minimal interface for index health checks.
type lexiconStats interface {
	Len() int
	Size() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	index           lexiconStats
	fallbackEnabled bool
	version         string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(index lexiconStats, fallbackEnabled bool, version string) *HealthHandler {
	return &HealthHandler{index: index, fallbackEnabled: fallbackEnabled, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Words   int    `json:"words,omitempty"`
	Entries int    `json:"entries,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the index holds words, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.index.Len() == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with index size, fallback state and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if words := h.index.Len(); words == 0 {
		components["lexicon"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["lexicon"] = CompStatus{
			Status:  "ok",
			Words:   words,
			Entries: h.index.Size(),
		}
	}

	if h.fallbackEnabled {
		components["fallback"] = CompStatus{Status: "ok"}
	} else {
		components["fallback"] = CompStatus{Status: "disabled"}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
