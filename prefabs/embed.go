package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var specFS embed.FS

//go:embed scripts/*.tengo
var scriptFS embed.FS

// Dir is the on-disk override root. A file found under Dir wins over the
// embedded copy so tuning edits apply without a rebuild.
var Dir = "prefabs"

// Load reads a spec file by name.
func Load(name string) ([]byte, error) {
	clean := trimRoot(name)
	if data, err := os.ReadFile(onDisk(clean)); err == nil {
		return data, nil
	}
	return specFS.ReadFile(clean)
}

// LoadScript reads an input script. Lookup order: Dir/scripts, name as a
// plain path, then the embedded scripts.
func LoadScript(name string) ([]byte, error) {
	clean := scriptPath(name)
	if data, err := os.ReadFile(onDisk(clean)); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return scriptFS.ReadFile(clean)
}

// Specs lists the embedded spec files, sorted.
func Specs() []string {
	entries, err := fs.ReadDir(specFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isSpecFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

// WatchDirs returns the directories a Watcher needs for live tuning.
func WatchDirs() []string {
	return []string{Dir, filepath.Join(Dir, "scripts")}
}

func trimRoot(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, filepath.ToSlash(Dir)+"/")
	s, _ = strings.CutPrefix(s, "prefabs/")
	return s
}

func scriptPath(name string) string {
	s := trimRoot(name)
	s, _ = strings.CutPrefix(s, "scripts/")
	return path.Join("scripts", s)
}

func onDisk(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
