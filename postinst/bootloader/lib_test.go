package bootloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

type testTree struct {
	plan    *install.Plan
	rootDir string
	bootDir string
}

func makeTestTree(t *testing.T, device string,
	firmwareType firmware.Type) *testTree {
	rootDir := t.TempDir()
	plan, err := install.Configure(install.Params{
		InstallDevice:    device,
		InstallDirectory: rootDir,
		Layout:           install.LayoutRoot,
		FirmwareType:     firmwareType,
		LookupGUID: func(string, uint) (string, error) {
			return testUUID, nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	plan.Boot.MountPoint = t.TempDir()
	return &testTree{plan: plan, rootDir: rootDir,
		bootDir: plan.Boot.MountPoint}
}

func (tree *testTree) readBoot(t *testing.T, name string) string {
	data, err := os.ReadFile(filepath.Join(tree.bootDir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func (tree *testTree) writeBoot(t *testing.T, name, data string) {
	writeTestFile(t, filepath.Join(tree.bootDir, name), data)
}

func (tree *testTree) writeRoot(t *testing.T, name, data string) {
	writeTestFile(t, filepath.Join(tree.rootDir, name), data)
}

// listFiles returns every regular file under dirname, relative to dirname.
func listFiles(t *testing.T, dirname string) []string {
	var names []string
	err := filepath.Walk(dirname,
		func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.Mode().IsRegular() {
				name, _ := filepath.Rel(dirname, path)
				names = append(names, name)
			}
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	return names
}

func writeTestFile(t *testing.T, filename, data string) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}
