package update

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name           string
		currentVersion string
		latestVersion  string
		wantAvailable  bool
		serverStatus   int
	}{
		{
			name:           "dev version skips check",
			currentVersion: "dev",
		},
		{
			name:           "empty version skips check",
			currentVersion: "",
		},
		{
			name:           "update available",
			currentVersion: "1.0.0",
			latestVersion:  "v1.1.0",
			wantAvailable:  true,
			serverStatus:   http.StatusOK,
		},
		{
			name:           "no update needed",
			currentVersion: "1.1.0",
			latestVersion:  "v1.1.0",
			serverStatus:   http.StatusOK,
		},
		{
			name:           "current is newer",
			currentVersion: "2.0.0",
			latestVersion:  "v1.1.0",
			serverStatus:   http.StatusOK,
		},
		{
			name:           "server error returns nil",
			currentVersion: "1.0.0",
			serverStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.serverStatus == 0 {
				if result := Check(context.Background(), tt.currentVersion); result != nil {
					t.Errorf("expected nil for version %q", tt.currentVersion)
				}
				return
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.serverStatus)
				if tt.serverStatus == http.StatusOK {
					json.NewEncoder(w).Encode(release{
						TagName: tt.latestVersion,
						HTMLURL: "https://github.com/test/releases/latest",
					})
				}
			}))
			defer server.Close()

			oldURL := ReleasesURL
			ReleasesURL = server.URL
			defer func() { ReleasesURL = oldURL }()

			result := Check(context.Background(), tt.currentVersion)
			if tt.serverStatus != http.StatusOK {
				if result != nil {
					t.Error("expected nil for server error")
				}
				return
			}
			if result == nil {
				t.Fatal("expected non-nil result")
			}
			if result.Available != tt.wantAvailable {
				t.Errorf("Available = %v, want %v", result.Available, tt.wantAvailable)
			}
			if result.URL == "" {
				t.Error("URL must be populated")
			}
		})
	}
}
