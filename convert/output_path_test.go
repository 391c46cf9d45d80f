package convert

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"sbc/config"
	"sbc/course"
	"sbc/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	return &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
}

func setupTestCourseForPath(t *testing.T) *course.Course {
	t.Helper()
	return &course.Course{
		Name:     "onboarding",
		Title:    "Curso de Inducción",
		Audience: "nuevos empleados",
		Duration: 90,
		Units:    []course.Unit{{ID: "u1", Title: "Uno"}, {ID: "u2", Title: "Dos"}},
	}
}

func TestBuildOutputPath_SimpleCase_NoDirs(t *testing.T) {
	c := setupTestCourseForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "")

	result := buildOutputPath(c, "courses/sales/onboarding.yaml", "/output", env)
	expected := filepath.Join("/output", "onboarding.pptx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_SimpleCase_WithDirs(t *testing.T) {
	c := setupTestCourseForPath(t)
	env := setupTestEnvForOutputPath(t, false, false, "")

	result := buildOutputPath(c, "courses/sales/onboarding.yaml", "/output", env)
	expected := filepath.Join("/output", "courses", "sales", "onboarding.pptx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_Transliterate(t *testing.T) {
	c := setupTestCourseForPath(t)
	env := setupTestEnvForOutputPath(t, true, true, "")

	result := buildOutputPath(c, "Curso de Inducción.yaml", "/output", env)
	expected := filepath.Join("/output", "curso-de-induccion.pptx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_Template(t *testing.T) {
	c := setupTestCourseForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{.Name}}-{{.Units}}u")

	result := buildOutputPath(c, "src.yaml", "/output", env)
	expected := filepath.Join("/output", "onboarding-2u.pptx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_TemplateWithSubdirs(t *testing.T) {
	c := setupTestCourseForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{.Audience}}/{{.Name}}")

	result := buildOutputPath(c, "src.yaml", "/output", env)
	expected := filepath.Join("/output", "nuevos empleados", "onboarding.pptx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestBuildOutputPath_BadTemplateFallsBack(t *testing.T) {
	c := setupTestCourseForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{.NoSuchField}}")

	result := buildOutputPath(c, "onboarding.yaml", "/output", env)
	expected := filepath.Join("/output", "onboarding.pptx")

	if result != expected {
		t.Errorf("buildOutputPath() = %q, want %q", result, expected)
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"single", []string{"single"}},
		{"trailing/", []string{"trailing"}},
	}
	for _, tt := range tests {
		got := splitAndCleanPath(filepath.FromSlash(tt.in))
		if len(got) != len(tt.want) {
			t.Errorf("splitAndCleanPath(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitAndCleanPath(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
