package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/on-tour/status"
)

type testFrame struct {
	Frame int    `json:"frame"`
	Stage string `json:"stage"`
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	reg := status.NewRegistry()
	reg.Strings.Get("turn.stage").Store("aiming")

	srv := NewServer(DefaultConfig(), reg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Read body failed: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts.URL+"/healthz")
	if code != http.StatusOK || body != "ok" {
		t.Errorf("Expected 200 ok, got %d %q", code, body)
	}
}

func TestRequestLogFollowsStandardLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	srv := NewServer(DefaultConfig(), nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	line := buf.String()
	if !strings.Contains(line, "GET") || !strings.Contains(line, "/healthz") {
		t.Errorf("Expected request line in the process log, got %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Errorf("Expected no color escapes, got %q", line)
	}
}

func TestSnapshotBeforeAndAfterPublish(t *testing.T) {
	srv, ts := newTestServer(t)

	code, _ := get(t, ts.URL+"/snapshot")
	if code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before first publish, got %d", code)
	}

	if err := srv.Publish(testFrame{Frame: 7, Stage: "aiming"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	code, body := get(t, ts.URL+"/snapshot")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var got testFrame
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Frame != 7 || got.Stage != "aiming" {
		t.Errorf("Unexpected snapshot %+v", got)
	}
}

func TestStatusIncludesRegistry(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.Publish(testFrame{Frame: 1})

	code, body := get(t, ts.URL+"/status")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out["turn.stage"] != "aiming" {
		t.Errorf("Expected registry value, got %v", out["turn.stage"])
	}
	if out["spectator.published"] != float64(1) {
		t.Errorf("Expected 1 published, got %v", out["spectator.published"])
	}
}

func TestPublishRejectsUnencodable(t *testing.T) {
	srv := NewServer(nil, nil)
	if err := srv.Publish(make(chan int)); err == nil {
		t.Error("Expected encode error")
	}
}

func TestWebsocketStream(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.Publish(testFrame{Frame: 1, Stage: "club_selection"})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	read := func() testFrame {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage failed: %v", err)
		}
		var f testFrame
		if err := json.Unmarshal(data, &f); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		return f
	}

	if f := read(); f.Frame != 1 {
		t.Errorf("Expected primed frame 1, got %d", f.Frame)
	}

	srv.Publish(testFrame{Frame: 2, Stage: "aiming"})
	if f := read(); f.Frame != 2 || f.Stage != "aiming" {
		t.Errorf("Expected streamed frame 2, got %+v", f)
	}

	if srv.Spectators() != 1 {
		t.Errorf("Expected 1 spectator, got %d", srv.Spectators())
	}
}

func TestHubLimitsAndDrops(t *testing.T) {
	h := NewHub(1, 1)

	ch, err := h.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if _, err := h.Subscribe(); !errors.Is(err, ErrHubFull) {
		t.Errorf("Expected ErrHubFull, got %v", err)
	}

	if dropped := h.Publish([]byte("a")); dropped != 0 {
		t.Errorf("Expected no drops, got %d", dropped)
	}
	if dropped := h.Publish([]byte("b")); dropped != 1 {
		t.Errorf("Expected one drop on a full queue, got %d", dropped)
	}
	if string(<-ch) != "a" {
		t.Error("Expected first frame to be kept")
	}
	if string(h.Latest()) != "b" {
		t.Errorf("Expected latest b, got %q", h.Latest())
	}

	h.Unsubscribe(ch)
	h.Unsubscribe(ch)
	if h.Count() != 0 {
		t.Errorf("Expected no subscribers, got %d", h.Count())
	}

	primed, err := h.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if string(<-primed) != "b" {
		t.Error("Expected new subscriber primed with latest frame")
	}

	h.Close()
	if _, ok := <-primed; ok {
		t.Error("Expected queue closed by Close")
	}
	if _, err := h.Subscribe(); !errors.Is(err, ErrHubClosed) {
		t.Errorf("Expected ErrHubClosed, got %v", err)
	}
}

func TestServerStartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	srv := NewServer(cfg, nil)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	addr := srv.Addr()
	if addr == "" {
		t.Fatal("Expected bound address")
	}

	code, body := get(t, "http://"+addr+"/healthz")
	if code != http.StatusOK || body != "ok" {
		t.Errorf("Expected 200 ok, got %d %q", code, body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := srv.Stop(ctx); err != nil {
		t.Errorf("Second Stop should be a no-op, got %v", err)
	}
}
