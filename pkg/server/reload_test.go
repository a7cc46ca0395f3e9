package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func waitForClients(t *testing.T, rs *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", rs.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReloadBroadcast(t *testing.T) {
	rs := NewReloadServer()
	ts := httptest.NewServer(rs)
	defer ts.Close()

	conn := dialReload(t, ts)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Fatalf("type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestReloadCSSAndError(t *testing.T) {
	rs := NewReloadServer()
	ts := httptest.NewServer(rs)
	defer ts.Close()

	conn := dialReload(t, ts)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.NotifyCSS("app.css")
	rs.NotifyError("syntax error")
	rs.ClearError()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != ReloadTypeCSS || msg.File != "app.css" {
		t.Fatalf("css message = %+v, err %v", msg, err)
	}
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != ReloadTypeError || msg.Error != "syntax error" {
		t.Fatalf("error message = %+v, err %v", msg, err)
	}
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != ReloadTypeClear {
		t.Fatalf("clear message = %+v, err %v", msg, err)
	}
}

func TestReloadClientDisconnect(t *testing.T) {
	rs := NewReloadServer()
	ts := httptest.NewServer(rs)
	defer ts.Close()

	conn := dialReload(t, ts)
	waitForClients(t, rs, 1)

	conn.Close()
	waitForClients(t, rs, 0)
}

func TestReloadClose(t *testing.T) {
	rs := NewReloadServer()
	ts := httptest.NewServer(rs)
	defer ts.Close()

	conn := dialReload(t, ts)
	defer conn.Close()
	waitForClients(t, rs, 1)

	rs.Close()
	if rs.ClientCount() != 0 {
		t.Fatalf("client count = %d after Close", rs.ClientCount())
	}
}
