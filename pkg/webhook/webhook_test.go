package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/srcds-tools/timeoutfinder/pkg/analyzer"
	"github.com/srcds-tools/timeoutfinder/pkg/output"
)

func testReport() *output.Report {
	return output.NewReport(&analyzer.ScanResult{
		Days: []*analyzer.DayResult{{Day: "2019-10-23", TotalTimeoutEvents: 1}},
		Metadata: analyzer.ScanMetadata{
			ThresholdMinutes: 7,
			StartTime:        time.Now(),
			EndTime:          time.Now(),
		},
	})
}

func TestClient_Send(t *testing.T) {
	var gotBody output.Report
	var gotAuth, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), testReport(), SendOptions{
		URL:   server.URL,
		Token: "secret",
	})

	if !resp.Success() {
		t.Fatalf("Send() failed: %v (status %d)", resp.Error, resp.StatusCode)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if len(gotBody.Days) != 1 || gotBody.Days[0].Day != "2019-10-23" {
		t.Errorf("delivered report = %+v", gotBody)
	}
}

func TestClient_Send_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient()
	resp := client.Send(context.Background(), testReport(), SendOptions{URL: server.URL})

	if resp.Success() {
		t.Error("Send() reported success for a 500 response")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", resp.StatusCode)
	}
}

func TestClient_Send_Unreachable(t *testing.T) {
	client := NewClient()
	resp := client.Send(context.Background(), testReport(), SendOptions{
		URL:     "http://127.0.0.1:1",
		Timeout: time.Second,
	})

	if resp.Success() {
		t.Error("Send() reported success for unreachable endpoint")
	}
	if resp.Error == nil {
		t.Error("Error is nil for unreachable endpoint")
	}
}
