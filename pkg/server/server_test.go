package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calyx-ui/calyx/internal/config"
	"github.com/calyx-ui/calyx/pkg/render"
	"github.com/calyx-ui/calyx/pkg/vdom"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Name = "test"
	cfg.Server.Dev = false
	cfg.Static.Dir = ""
	return cfg
}

func TestPageHandler(t *testing.T) {
	srv := New(testConfig())
	srv.Page("/", func(r *http.Request) render.Page {
		return render.Page{
			Title: "Home",
			Body:  vdom.Div(vdom.H1("Welcome")),
		}
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"<!DOCTYPE html>", "<title>Home</title>", "<h1>Welcome</h1>"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(string(body), "_calyx/reload") {
		t.Error("reload script should not be injected outside dev mode")
	}
}

func TestPageHandlerStampsHydrationIDs(t *testing.T) {
	srv := New(testConfig())
	srv.Page("/", func(r *http.Request) render.Page {
		return render.Page{
			Body: vdom.Div(vdom.Button(vdom.OnClick(func() {}), "go")),
		}
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), `data-hid="h1"`) {
		t.Fatalf("interactive elements should carry hydration IDs:\n%s", body)
	}
}

func TestDevModeInjectsReloadScript(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Dev = true

	srv := New(cfg)
	srv.Page("/", func(r *http.Request) render.Page {
		return render.Page{Body: vdom.Div("hi")}
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	idx := strings.Index(string(body), "_calyx/reload")
	if idx < 0 {
		t.Fatal("dev pages should carry the reload client")
	}
	if end := strings.LastIndex(string(body), "</body>"); end < idx {
		t.Fatal("reload client should be injected before </body>")
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.Static.Dir = dir

	ts := httptest.NewServer(New(cfg).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/static/app.css")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "body{}" {
		t.Fatalf("body = %q", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	resetMetricsForTest()

	cfg := testConfig()
	cfg.Server.Metrics = true

	srv := New(cfg)
	srv.Page("/", func(r *http.Request) render.Page {
		return render.Page{Body: vdom.Div("hi")}
	})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	if _, err := http.Get(ts.URL + "/"); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "calyx_http_requests_total") {
		t.Fatal("metrics output missing request counter")
	}
}

func TestInjectReloadScriptWithoutBodyTag(t *testing.T) {
	out := injectReloadScript([]byte("<p>fragment</p>"))
	if !strings.Contains(string(out), "_calyx/reload") {
		t.Fatal("script should be appended when </body> is absent")
	}
}
