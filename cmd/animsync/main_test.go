package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/animsync"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const page = `<html><body><div class="card" style="transform: rotate(3deg)">A</div><h1>Yo</h1></body></html>`

const script = `
steps:
  - select: .card
    change: { duration: 200ms, from: { x: 0, width: 10 }, to: { x: 40, width: 20 } }
  - select: h1
    typewriter: { text: Hi, duration: 100ms }
  - addClass: done
`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlayVirtual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.cmd")
	defer teardown()
	//
	config = animsync.DefaultConfig()
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "page.html", page)
	scenePath := writeFile(t, dir, "scene.yaml", script)
	out := filepath.Join(dir, "out.html")
	if err := runPlay(context.Background(), htmlPath, scenePath, out, true); err != nil {
		t.Fatal(err)
	}
	result, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(result)
	for _, want := range []string{"rotate(3deg) translateX(40px)", "width: 20px", "Hi", `class="done"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q:\n%s", want, html)
		}
	}
}

func TestPlayInvalidScene(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.cmd")
	defer teardown()
	//
	config = animsync.DefaultConfig()
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "page.html", page)
	scenePath := writeFile(t, dir, "scene.yaml", "steps: [ { select: h1 } ]")
	if err := runPlay(context.Background(), htmlPath, scenePath, "", true); err == nil {
		t.Error("expected scene without action to be rejected")
	}
}

func TestEasings(t *testing.T) {
	if err := runEasings([]string{"linear", "cubic-bezier(0.4, 0, 0.2, 1)"}, 3); err != nil {
		t.Error(err)
	}
	if err := runEasings(nil, 1); err == nil {
		t.Error("expected single sample to be rejected")
	}
	if err := runEasings([]string{"wobbly"}, 3); err == nil {
		t.Error("expected unknown curve to be rejected")
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.cmd")
	defer teardown()
	//
	htmlPath := writeFile(t, t.TempDir(), "page.html", page)
	if err := runDump(htmlPath, ".card", []string{"transform"}); err != nil {
		t.Error(err)
	}
	if err := runDump(htmlPath, "section", nil); err == nil {
		t.Error("expected empty match to be an error")
	}
}

func TestLoadDocumentWithStyleSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.cmd")
	defer teardown()
	//
	dir := t.TempDir()
	htmlPath := writeFile(t, dir, "page.html", page)
	stylesheets = []string{writeFile(t, dir, "extra.css", "h1 { color: red }")}
	defer func() { stylesheets = nil }()
	doc, err := loadDocument(htmlPath)
	if err != nil {
		t.Fatal(err)
	}
	h1, _ := doc.Query("h1")
	if c := h1[0].ComputedStyle("color"); c != "red" {
		t.Errorf("expected color from --css stylesheet, is %q", c)
	}
	stylesheets = []string{filepath.Join(dir, "missing.css")}
	if _, err = loadDocument(htmlPath); err == nil {
		t.Error("expected missing stylesheet to be an error")
	}
}
