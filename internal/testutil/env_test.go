package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZebulonRouseFrantzich/rosettafinder/internal/testutil"
)

func TestSetupTestEnv(t *testing.T) {
	t.Setenv("ROSETTA_BIN", "/should/be/cleared")

	tmpDir := testutil.SetupTestEnv(t)

	for _, key := range []string{"ROSETTA_BIN", "ROSETTA3", "ROSETTA", "ROSETTAFINDER_CONFIG"} {
		if v := os.Getenv(key); v != "" {
			t.Errorf("%s = %q, want empty", key, v)
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != filepath.Join(tmpDir, "config") {
		t.Errorf("XDG_CONFIG_HOME = %q, want under %q", configHome, tmpDir)
	}
	if info, err := os.Stat(configHome); err != nil || !info.IsDir() {
		t.Errorf("config dir not created: %v", err)
	}
}

func TestMakeBinaries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bin")
	testutil.MakeBinaries(t, dir, "rosetta_scripts.linuxgccrelease", "relax.mpi.macosclangdebug")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	info, err := os.Stat(filepath.Join(dir, "rosetta_scripts.linuxgccrelease"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("mode = %v, want executable", info.Mode())
	}
}
