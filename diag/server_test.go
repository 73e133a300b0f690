package diag

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitReport(t *testing.T, reports chan Report) Report {
	t.Helper()
	select {
	case r := <-reports:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a report")
		return Report{}
	}
}

func TestServerDispatchesReports(t *testing.T) {
	s := NewServer()
	reports := make(chan Report, 4)
	s.Subscribe(func(r Report) { reports <- r })

	conn := dialTestServer(t, s)
	payload := `{
		"path": "/tmp/sample.py",
		"checker": "pyflakes",
		"color": "#ff0000",
		"priority": 10,
		"lines": {"2": [{"col_start": 0, "col_end": 6, "message": "unused import"}]}
	}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := waitReport(t, reports)
	if got.Path != "/tmp/sample.py" || got.Checker != "pyflakes" {
		t.Errorf("report header = (%q, %q)", got.Path, got.Checker)
	}
	issues := got.Lines[2]
	if len(issues) != 1 || issues[0].Message != "unused import" {
		t.Errorf("line 2 issues = %v", issues)
	}
}

func TestServerSkipsMalformedPayloads(t *testing.T) {
	s := NewServer()
	reports := make(chan Report, 4)
	s.Subscribe(func(r Report) { reports <- r })

	conn := dialTestServer(t, s)
	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"path": "/tmp/ok.py", "checker": "pep8", "lines": {}}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := waitReport(t, reports)
	if got.Checker != "pep8" {
		t.Errorf("checker = %q, the malformed payload should be skipped", got.Checker)
	}
}

func TestReportCheckerUpdate(t *testing.T) {
	rc := NewReportChecker("pyflakes")
	rc.Update(Report{
		Checker: "pyflakes",
		Lines: map[int][]Issue{
			0:  {{ColStart: 0, ColEnd: 3, Message: "first"}},
			-1: {{ColStart: 0, ColEnd: 1, Message: "dropped"}},
			4:  nil,
		},
	})
	checks := rc.Checks()
	if len(checks) != 1 {
		t.Fatalf("checks = %d lines, want 1", len(checks))
	}
	if checks[0][0].Message != "first" {
		t.Errorf("message = %q, want %q", checks[0][0].Message, "first")
	}

	rc.Update(Report{Checker: "pyflakes", Lines: map[int][]Issue{
		2: {{ColStart: 1, ColEnd: 2, Message: "second"}},
	}})
	checks = rc.Checks()
	if _, ok := checks[0]; ok {
		t.Error("Update should replace the previous snapshot")
	}
	if checks[2][0].Message != "second" {
		t.Errorf("message = %q, want %q", checks[2][0].Message, "second")
	}
}
