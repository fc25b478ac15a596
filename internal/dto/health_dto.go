package dto

import "time"

type HealthStatus struct {
	Ready           bool       `json:"ready"`
	ContentLoaded   bool       `json:"content_loaded"`
	LastUpdate      *time.Time `json:"last_update,omitempty"`
	DocumentsLoaded int        `json:"documents_loaded"`
	Model           string     `json:"model"`
}

type HealthResponse struct {
	Status     string                 `json:"status"`
	Components map[string]interface{} `json:"components"`
	Timestamp  time.Time              `json:"timestamp"`
}

type ReloadResponse struct {
	Count int `json:"count"`
}

type SystemInfoResponse struct {
	Environment     string `json:"environment"`
	Model           string `json:"model"`
	Ready           bool   `json:"ready"`
	DocumentsLoaded int    `json:"documents_loaded"`
	CacheBackend    string `json:"cache_backend"`
	GoVersion       string `json:"go_version"`
	NumGoroutine    int    `json:"num_goroutine"`
}
