package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	got := Default()
	want := DefaultShieldConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults drifted from DefaultShieldConfig:\n got %+v\nwant %+v", got, want)
	}
	if err := Validate(got); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestDecodePartialOverrides(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "yaml",
			format: FormatYAML,
			data:   "hearts:\n  initial: 7\nmilestones:\n  policy: list\n  thresholds: [3, 6]\n",
		},
		{
			name:   "toml",
			format: FormatTOML,
			data:   "[hearts]\ninitial = 7\n\n[milestones]\npolicy = \"list\"\nthresholds = [3, 6]\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Decode([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if cfg.Hearts.Initial != 7 {
				t.Errorf("Hearts.Initial = %d, expected 7", cfg.Hearts.Initial)
			}
			if cfg.Milestones.Policy != PolicyList {
				t.Errorf("Milestones.Policy = %q, expected %q", cfg.Milestones.Policy, PolicyList)
			}
			if !reflect.DeepEqual(cfg.Milestones.Thresholds, []int{3, 6}) {
				t.Errorf("Milestones.Thresholds = %v, expected [3 6]", cfg.Milestones.Thresholds)
			}
			// Untouched keys keep their defaults
			if cfg.Paddle.Width != 150 || cfg.Ball.Speed != 3 {
				t.Errorf("defaults lost: paddle width %v, ball speed %v", cfg.Paddle.Width, cfg.Ball.Speed)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "shield.toml")
	if err := os.WriteFile(tomlPath, []byte("[paddle]\nspeed = 9.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(tomlPath)
	if err != nil {
		t.Fatalf("LoadFile(toml) error = %v", err)
	}
	if cfg.Paddle.Speed != 9 {
		t.Errorf("Paddle.Speed = %v, expected 9", cfg.Paddle.Speed)
	}

	badPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("paddle: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(badPath); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadFile(bad yaml) error = %v, expected parse failure", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(DefaultShieldConfig(), format)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			cfg, err := Decode(data, format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultShieldConfig()) {
				t.Errorf("round trip changed config: %+v", cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShieldConfig)
		wantErr string
	}{
		{"defaults", func(*ShieldConfig) {}, ""},
		{
			name: "inverted width bounds",
			mutate: func(c *ShieldConfig) {
				c.Paddle.MinWidth = 300
				c.Paddle.MaxWidth = 50
			},
			wantErr: "max_width",
		},
		{
			name:    "unknown policy",
			mutate:  func(c *ShieldConfig) { c.Milestones.Policy = "bogus" },
			wantErr: "unknown policy",
		},
		{
			name: "descending thresholds",
			mutate: func(c *ShieldConfig) {
				c.Milestones.Policy = PolicyList
				c.Milestones.Thresholds = []int{10, 5}
			},
			wantErr: "ascending",
		},
		{
			name:    "zero hearts",
			mutate:  func(c *ShieldConfig) { c.Hearts.Initial = 0 },
			wantErr: "hearts",
		},
		{
			name:    "spawn chance above one",
			mutate:  func(c *ShieldConfig) { c.PowerUps.SpawnChance = 1.5 },
			wantErr: "spawn_chance",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShieldConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		hearts    int
		width     float64
		scaling   bool
		ballSpeed float64
	}{
		{DifficultyEasy, 5, 200, true, 2.5},
		{DifficultyNormal, 3, 150, true, 3},
		{DifficultyHard, 2, 110, true, 4},
		{DifficultyFixed, 3, 150, false, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShieldConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Hearts.Initial != tc.hearts {
				t.Errorf("Hearts.Initial = %d, expected %d", cfg.Hearts.Initial, tc.hearts)
			}
			if cfg.Paddle.Width != tc.width {
				t.Errorf("Paddle.Width = %v, expected %v", cfg.Paddle.Width, tc.width)
			}
			if cfg.Scoring.ScalingEnabled != tc.scaling {
				t.Errorf("ScalingEnabled = %v, expected %v", cfg.Scoring.ScalingEnabled, tc.scaling)
			}
			if cfg.Ball.Speed != tc.ballSpeed {
				t.Errorf("Ball.Speed = %v, expected %v", cfg.Ball.Speed, tc.ballSpeed)
			}
		})
	}

	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DefaultShieldConfig().Scoring, 1.2)

	if d.Level() != 1 {
		t.Fatalf("initial Level() = %d, expected 1", d.Level())
	}
	for _, score := range []int{0, 1, 4, 6} {
		if d.ShouldScale(score) {
			t.Errorf("ShouldScale(%d) = true, expected false", score)
		}
	}
	if !d.ShouldScale(5) || !d.ShouldScale(10) {
		t.Error("ShouldScale should fire every 5 points")
	}

	ball, paddle := d.Scale(1.0, 5.0)
	if math.Abs(ball-1.1) > 1e-9 || math.Abs(paddle-5.25) > 1e-9 {
		t.Errorf("Scale(1, 5) = (%v, %v), expected (1.1, 5.25)", ball, paddle)
	}
	ball, _ = d.Scale(ball, paddle)
	if ball != 1.2 {
		t.Errorf("ball multiplier should be capped at 1.2, got %v", ball)
	}
	if d.Level() != 3 {
		t.Errorf("Level() = %d, expected 3", d.Level())
	}

	d.Reset()
	if d.Level() != 1 {
		t.Errorf("Level() after Reset = %d, expected 1", d.Level())
	}

	scoring := DefaultShieldConfig().Scoring
	scoring.ScalingEnabled = false
	if NewDifficultyManager(scoring, 0).ShouldScale(5) {
		t.Error("disabled manager should never scale")
	}
}
