package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/solar-sprint/shared/sim"
)

func TestParse(t *testing.T) {
	base := sim.DefaultTuning()

	cases := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, got sim.Tuning)
		wantErr bool
	}{
		{
			name: "empty_keeps_base",
			yaml: "",
			check: func(t *testing.T, got sim.Tuning) {
				if got != base {
					t.Fatalf("empty document changed tuning: %+v", got)
				}
			},
		},
		{
			name: "overrides",
			yaml: "gravity: 2000\nmax_run_speed: 500\ncoyote_time: 90ms\n",
			check: func(t *testing.T, got sim.Tuning) {
				if got.Gravity != 2000 || got.MaxRunSpeed != 500 || got.CoyoteTime != 90*time.Millisecond {
					t.Fatalf("overrides not applied: %+v", got)
				}
				if got.JumpStrength != base.JumpStrength {
					t.Fatalf("untouched field changed")
				}
			},
		},
		{name: "unknown_field", yaml: "gravty: 10\n", wantErr: true},
		{name: "bad_duration", yaml: "dash_cooldown: soon\n", wantErr: true},
		{name: "invalid_value", yaml: "friction: -5\n", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse([]byte(c.yaml), base)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				if got != base {
					t.Fatalf("failed parse must return base")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			c.check(t, got)
		})
	}
}

func TestParseInvalidWrapsSentinel(t *testing.T) {
	_, err := Parse([]byte("dash_decay: 2\n"), sim.DefaultTuning())
	if !errors.Is(err, sim.ErrInvalidTuning) {
		t.Fatalf("Parse = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), sim.DefaultTuning()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: 1800\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, sim.DefaultTuning())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("gravity: 2400\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Updates:
		if got.Gravity != 2400 {
			t.Fatalf("reloaded gravity = %v", got.Gravity)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("no reload after edit")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: 1800\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, sim.DefaultTuning())
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("gravity: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Updates:
		t.Fatalf("unexpected update %+v", got)
	case <-time.After(300 * time.Millisecond):
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Fatalf("Updates not closed")
	}
}
