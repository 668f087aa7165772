package batch

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scenetrace/internal/raytracer"
)

const ballScene = `{
  "materials": {"red": {"kd": [1, 0, 0], "ks": [0.3, 0.3, 0.3], "shininess": 10}},
  "root": {"name": "root", "children": [{"name": "ball", "type": "sphere", "material": "red"}]},
  "lights": [{"position": [2, 2, 2], "color": [1, 1, 1]}],
  "camera": {"eye": [0, 0, 4], "view": [0, 0, 0], "fov": 60},
  "ambient": [0.1, 0.1, 0.1],
  "renders": [
    {"output": "ball", "width": 16, "height": 12},
    {"output": "sub/ball_wide.png", "width": 24, "height": 12}
  ]
}`

func writeScene(t *testing.T, dir, name, doc string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRendersEveryRequest(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	good := writeScene(t, dir, "ball.json", ballScene)
	bad := writeScene(t, dir, "bad.json", `{"root": {"name": "r", "type": "torus"}}`)
	empty := writeScene(t, dir, "empty.json", `{"root": {"name": "r"}}`)

	opts := raytracer.DefaultOptions()
	opts.Workers = 2
	results := Run(Config{OutputDir: out, Format: "png", Options: opts}, []string{good, bad, empty})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	wantImages := []string{"ball.png", filepath.Join("sub", "ball_wide.png")}
	for i, want := range wantImages {
		r := results[i]
		if !r.Success || r.Image != want || r.Scene != good {
			t.Errorf("result %d = %+v", i, r)
			continue
		}
		f, err := os.Open(filepath.Join(out, want))
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Width != r.Width || cfg.Height != r.Height {
			t.Errorf("%s is %dx%d, want %dx%d", want, cfg.Width, cfg.Height, r.Width, r.Height)
		}
	}
	if results[2].Success || results[2].Scene != bad || results[2].Error == "" {
		t.Errorf("bad scene result = %+v", results[2])
	}
	if results[3].Success || results[3].Scene != empty {
		t.Errorf("empty scene result = %+v", results[3])
	}

	manifest := filepath.Join(out, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Image != "ball.png" || entries[1].Image != "sub/ball_wide.png" || entries[1].Width != 24 {
		t.Errorf("manifest = %+v", entries)
	}
}

type recordLogger struct{ lines []string }

func (l *recordLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRunLogsSceneConstruction(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scaled.json", `{
  "root": {"name": "root", "children": [
    {"name": "egg", "type": "sphere", "transforms": [{"scale": [1, 2, 1]}]}
  ]},
  "camera": {"eye": [0, 0, 5], "view": [0, 0, 0]},
  "renders": [{"output": "egg", "width": 4, "height": 4}]
}`)

	log := &recordLogger{}
	opts := raytracer.DefaultOptions()
	opts.Workers = 1
	results := Run(Config{OutputDir: filepath.Join(dir, "out"), Format: "png", Options: opts, Logger: log}, []string{path})
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}

	var scaling, rendering bool
	for _, line := range log.lines {
		if strings.HasPrefix(line, "Applying scaling to egg of (1, 2, 1)") {
			scaling = true
		}
		if strings.HasPrefix(line, "Rendering 4x4") {
			rendering = true
		}
	}
	if !scaling || !rendering {
		t.Errorf("log lines = %q, want the scaling and rendering lines", log.lines)
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		output, format, want string
	}{
		{"a", "png", "a.png"},
		{"a.jpg", "png", "a.jpg"},
		{"dir/a", "webp", "dir/a.webp"},
		{"a", "", "a"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.output, tt.format); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.output, tt.format, got, tt.want)
		}
	}
}
