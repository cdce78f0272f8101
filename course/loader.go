package course

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
)

// ErrNoHoles is returned for a manifest without [[hole]] entries
var ErrNoHoles = errors.New("course manifest lists no holes")

// manifestFile mirrors the course TOML layout
//
//	name = "Links"
//	[[hole]]
//	map = "maps/hole1.txt"
//	par = 4
type manifestFile struct {
	Name  string         `toml:"name"`
	Holes []manifestHole `toml:"hole"`
}

type manifestHole struct {
	Map string `toml:"map"`
	Par int    `toml:"par"`
}

// LoadCourse decodes a manifest from fsys and parses every hole map it names
// Map paths resolve relative to the manifest directory
func LoadCourse(fsys fs.FS, manifest string) (Course, error) {
	data, err := fs.ReadFile(fsys, manifest)
	if err != nil {
		return Course{}, fmt.Errorf("read course manifest: %w", err)
	}

	var mf manifestFile
	if _, err := toml.Decode(string(data), &mf); err != nil {
		return Course{}, fmt.Errorf("decode course manifest %s: %w", manifest, err)
	}
	if len(mf.Holes) == 0 {
		return Course{}, fmt.Errorf("%s: %w", manifest, ErrNoHoles)
	}

	dir := path.Dir(manifest)
	holes := make([]Hole, 0, len(mf.Holes))
	for i, mh := range mf.Holes {
		if mh.Par <= 0 {
			return Course{}, fmt.Errorf("hole %d: par must be positive, got %d", i+1, mh.Par)
		}

		f, err := fsys.Open(path.Join(dir, mh.Map))
		if err != nil {
			return Course{}, fmt.Errorf("hole %d: open map: %w", i+1, err)
		}
		m, err := ParseMap(f)
		f.Close()
		if err != nil {
			return Course{}, fmt.Errorf("hole %d (%s): %w", i+1, mh.Map, err)
		}

		holes = append(holes, Hole{Number: i + 1, Par: mh.Par, Map: m})
	}

	name := mf.Name
	if name == "" {
		name = path.Base(dir)
	}
	return NewCourse(name, holes...), nil
}
