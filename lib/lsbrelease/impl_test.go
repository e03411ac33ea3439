package lsbrelease

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testRelease = `# written by the build
COREOS_RELEASE_BOARD=amd64-generic
COREOS_RELEASE_VERSION=0.10.156.2
COREOS_RELEASE_DESCRIPTION=0.10.156.2 (Official Build) dev-channel
COREOS_AUSERVER=https://api.example.com/v1/update/
`

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lsb-release")
	if err := os.WriteFile(filename, []byte(testRelease), 0644); err != nil {
		t.Fatal(err)
	}
	release, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if version := release.Get("COREOS_RELEASE_VERSION"); version !=
		"0.10.156.2" {
		t.Errorf("version: %q", version)
	}
	if desc := release.Get("COREOS_RELEASE_DESCRIPTION"); desc !=
		"0.10.156.2 (Official Build) dev-channel" {
		t.Errorf("description: %q", desc)
	}
	if server := release.Get("COREOS_AUSERVER"); server !=
		"https://api.example.com/v1/update/" {
		t.Errorf("server: %q", server)
	}
	if missing := release.Get("MISSING"); missing != "" {
		t.Errorf("missing key: %q", missing)
	}
	want := []string{
		"COREOS_RELEASE_BOARD",
		"COREOS_RELEASE_VERSION",
		"COREOS_RELEASE_DESCRIPTION",
		"COREOS_AUSERVER",
	}
	if diff := cmp.Diff(want, release.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestReadValueMissingFile(t *testing.T) {
	_, err := ReadValue(filepath.Join(t.TempDir(), "none"),
		"COREOS_RELEASE_VERSION")
	if err == nil {
		t.Fatal("missing file accepted")
	}
}
