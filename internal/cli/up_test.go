package cli

import (
	"os"
	"reflect"
	"testing"

	"github.com/s54http/s5plaunch/internal/config"
)

func TestBuildSpecDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}

	spec, err := buildSpec(config.Default(), "", false)
	if err != nil {
		t.Fatalf("buildSpec() error = %v", err)
	}

	if spec.HostMount != cwd {
		t.Errorf("host mount = %q, want the current directory %q", spec.HostMount, cwd)
	}

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"name", spec.Name, "s5p"},
		{"image", spec.Image, "pypy"},
		{"container mount", spec.ContainerMount, "/s5p/"},
		{"workdir", spec.WorkDir, "/s5p/"},
		{"host port", spec.HostPort, "8080"},
		{"container port", spec.ContainerPort, "6666"},
		{"restart policy", spec.RestartPolicy, "always"},
		{"memory limit", spec.MemoryLimit, ""},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if want := []string{"./pypy.sh"}; !reflect.DeepEqual(spec.Command, want) {
		t.Errorf("command = %v, want %v", spec.Command, want)
	}
	if spec.Replace {
		t.Error("replace should be off by default")
	}
}

func TestBuildSpecWorkdirOverride(t *testing.T) {
	dir := t.TempDir()

	base, err := buildSpec(config.Default(), "", false)
	if err != nil {
		t.Fatalf("buildSpec() error = %v", err)
	}
	override, err := buildSpec(config.Default(), dir, false)
	if err != nil {
		t.Fatalf("buildSpec() error = %v", err)
	}

	if override.HostMount != dir {
		t.Errorf("host mount = %q, want %q", override.HostMount, dir)
	}

	// Only the host mount may differ between the two records.
	base.HostMount = ""
	override.HostMount = ""
	if !reflect.DeepEqual(base, override) {
		t.Errorf("specs differ beyond the host mount:\n  %+v\n  %+v", base, override)
	}
}

func TestBuildSpecRelativeWorkdir(t *testing.T) {
	spec, err := buildSpec(config.Default(), ".", false)
	if err != nil {
		t.Fatalf("buildSpec() error = %v", err)
	}

	cwd, _ := os.Getwd()
	if spec.HostMount != cwd {
		t.Errorf("host mount = %q, want %q resolved from %q", spec.HostMount, cwd, ".")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "0123456789ab" {
		t.Errorf("shortID() = %q, want %q", got, "0123456789ab")
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, want %q", got, "abc")
	}
}
