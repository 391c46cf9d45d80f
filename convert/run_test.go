package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"sbc/config"
	"sbc/course"
	"sbc/state"
	"sbc/storyboard"
)

// The asset cache is namespaced by course name so related runs share hits,
// regardless of which provider serves them.
func TestResolveAssetsCacheNamespace(t *testing.T) {
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	log := zaptest.NewLogger(t)
	env.Log = log

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	root := t.TempDir()
	cfg.Assets.Cache.Directory = root
	env.Cfg = cfg

	// no unit renders in image support mode, so the cache directory is
	// prepared but no provider request ever leaves the process
	c := &course.Course{
		Name:  "Curso de Inducción",
		Title: "Curso de Inducción",
		Units: []course.Unit{
			{ID: "u1", Title: "Uno", Content: []string{"ventajas y desventajas de cada enfoque"}},
		},
	}
	board := storyboard.Build(c, 0, log)

	out := resolveAssets(ctx, board, log)
	if len(out) != 1 || out[0] != nil {
		t.Fatalf("resolved = %v", out)
	}

	if _, err := os.Stat(filepath.Join(root, "curso-de-induccion")); err != nil {
		t.Errorf("course namespace directory missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "openverse")); err == nil {
		t.Error("cache is namespaced by provider, want course name")
	}
}
