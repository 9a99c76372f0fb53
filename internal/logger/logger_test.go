package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestNew_JSONIncludesServiceAndStack(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", false)
	log.Error().Stack().Err(errors.New("boom")).Msg("something failed")

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, buf.String())
	}
	if svc, ok := payload["service"].(string); !ok || svc != ServiceName {
		t.Errorf("service = %v, want %q", payload["service"], ServiceName)
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "error" {
		t.Errorf("level = %v, want error", payload["level"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Errorf("expected stack field in error log: %s", buf.String())
	}
}

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "debug", level: "debug", wantDebug: true, wantInfo: true},
		{name: "warn", level: "warn", wantDebug: false, wantInfo: false},
		{name: "unknown falls back to info", level: "chatty", wantDebug: false, wantInfo: true},
		{name: "empty falls back to info", level: "", wantDebug: false, wantInfo: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.level, false)
			log.Debug().Msg("debug-line")
			log.Info().Msg("info-line")
			out := buf.String()
			if got := strings.Contains(out, "debug-line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info-line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", true)
	log.Info().Str("key", "meals").Msg("persisted")
	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("pretty output looks like JSON: %s", out)
	}
	if !strings.Contains(out, "persisted") || !strings.Contains(out, "key=") {
		t.Errorf("pretty output missing fields: %s", out)
	}
}

func TestNew_ConcurrentConstruction(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	bufs := make([]bytes.Buffer, 8)
	for i := range bufs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log := New(&bufs[i], "error", false)
			log.Error().Stack().Err(errors.New("boom")).Msg("failed")
		}()
	}
	wg.Wait()

	for i := range bufs {
		if !strings.Contains(bufs[i].String(), `"stack"`) {
			t.Errorf("logger %d: no stack field: %s", i, bufs[i].String())
		}
	}
}
