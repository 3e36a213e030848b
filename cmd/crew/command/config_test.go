package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	for _, sub := range []string{"locations", "categories", "loot_tables"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	cfg := &Config{}
	cfg.Storage.Locations.Path = filepath.Join(dir, "locations")
	cfg.Storage.Categories.Path = filepath.Join(dir, "categories")
	cfg.Storage.LootTables.Path = filepath.Join(dir, "loot_tables")
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		modify func(c *Config)
		env    map[string]string
		expErr string
	}{
		"valid": {},
		"missing asset path": {
			modify: func(c *Config) { c.Storage.Categories.Path = "" },
			expErr: "categories: path is required",
		},
		"asset path does not exist": {
			modify: func(c *Config) { c.Storage.LootTables.Path = "/does/not/exist" },
			expErr: `loot_tables: invalid path "/does/not/exist"`,
		},
		"slot without path": {
			modify: func(c *Config) { c.Saves.Slot = "one" },
			expErr: "saves: path is required when a slot is set",
		},
		"bad start timeout": {
			modify: func(c *Config) { c.Nats.StartTimeout = "soon" },
			expErr: "nats: parsing start_timeout",
		},
		"same subjects": {
			modify: func(c *Config) {
				c.Nats.Enabled = true
				c.Nats.FrameSubject = "crew"
				c.Nats.InputSubject = "crew"
			},
			expErr: "frame_subject and input_subject must differ",
		},
		"negative locations": {
			modify: func(c *Config) { c.Game.Locations = -1 },
			expErr: "game: locations must not be negative",
		},
		"listener without port": {
			modify: func(c *Config) { c.Listeners = []ListenerConfig{{Protocol: ListenerTypeTelnet}} },
			expErr: "listeners[0]: port must be set",
		},
		"listener port used twice": {
			modify: func(c *Config) {
				c.Listeners = []ListenerConfig{
					{Protocol: ListenerTypeTelnet, Port: 4000},
					{Protocol: ListenerTypeSSH, Port: 4000},
				}
			},
			expErr: "listeners[1]: port 4000 is used twice",
		},
		"host key for telnet": {
			modify: func(c *Config) {
				c.Listeners = []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000, HostKeyPath: "key"}}
			},
			expErr: "host_key_path only applies to ssh listeners",
		},
		"bad env seed": {
			env:    map[string]string{"CREW_SEED": "lots"},
			expErr: "parse env",
		},
		"unknown env backend": {
			env:    map[string]string{"CREW_SAVE_BACKEND": "floppy"},
			expErr: "unknown save backend: floppy",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := validConfig(t)
			if tt.modify != nil {
				tt.modify(cfg)
			}

			err := cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CREW_SEED", "42")
	t.Setenv("CREW_SAVE_BACKEND", "sqlite")
	t.Setenv("CREW_SAVE_PATH", filepath.Join(t.TempDir(), "saves.db"))
	t.Setenv("CREW_NATS_ENABLED", "true")

	cfg := validConfig(t)
	cfg.Game.Seed = 7
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "seed", cfg.Game.Seed, uint64(42))
	testutil.AssertEqual(t, "backend", cfg.Saves.Backend, SaveBackendSqlite)
	testutil.AssertEqual(t, "nats", cfg.Nats.Enabled, true)
	testutil.AssertEqual(t, "slot", cfg.Saves.slot(), defaultSlot)

	saves, err := cfg.Saves.BuildSaveStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer saves.Close()
}

func TestBuildWorkers(t *testing.T) {
	cfg := validConfig(t)
	workers, err := BuildWorkers(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "workers", len(workers), 1)

	cfg.Saves.Path = t.TempDir()
	cfg.Listeners = []ListenerConfig{
		{Protocol: ListenerTypeTelnet, Port: 4000},
		{Protocol: ListenerTypeSSH, Port: 4022},
	}
	workers, err = BuildWorkers(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "workers with listeners", len(workers), 4)
	_, ok := workers["listener-ssh-4022"]
	testutil.AssertEqual(t, "ssh listener", ok, true)

	cfg.Listeners = []ListenerConfig{{Protocol: ListenerTypeSSH, Port: 4022, HostKeyPath: "/does/not/exist"}}
	_, err = BuildWorkers(cfg)
	testutil.AssertErrorContains(t, err, "creating ssh listener: setting up ssh host key")

	_, err = BuildWorkers("not a config")
	testutil.AssertErrorContains(t, err, "unable to cast config")
}
