package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultScene is the scene spec loaded when no -scene flag is given.
const DefaultScene = "scene.yaml"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns the named spec, preferring a file under prefabs/ on disk so
// edits can be tried without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadSpec decodes the named spec into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

// LoadSpecFile decodes an arbitrary file on disk into T.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	return decodeSpec[T](path, data)
}

func decodeSpec[T any](name string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
