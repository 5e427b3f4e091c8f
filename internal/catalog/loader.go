package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Catalog files live under <dir>/<name>.json, each holding a JSON array of
// Option records. A missing file keeps the built-in catalog for that slot;
// hosts usually override only one or two of them.
var catalogFiles = []struct {
	name string
	slot func(*Set) *[]Option
}{
	{"styles", func(s *Set) *[]Option { return &s.Styles }},
	{"window_types", func(s *Set) *[]Option { return &s.WindowTypes }},
	{"belt_colors", func(s *Set) *[]Option { return &s.BeltColors }},
	{"roof_colors", func(s *Set) *[]Option { return &s.RoofColors }},
	{"materials", func(s *Set) *[]Option { return &s.Materials }},
}

// Load reads catalog overrides from dir on top of the built-ins. An empty
// or malformed file logs a warning and keeps the built-in list, so a bad
// catalog drop can never leave a picker without options.
func Load(dir string) *Set {
	set := Builtin()
	for _, cf := range catalogFiles {
		opts, err := loadFile(filepath.Join(dir, cf.name+".json"))
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Warning: catalog %s: %v", cf.name, err)
			}
			continue
		}
		if len(opts) == 0 {
			log.Printf("Warning: catalog %s is empty, keeping built-in options", cf.name)
			continue
		}
		*cf.slot(set) = opts
	}
	return set
}

func loadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var opts []Option
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("could not unmarshal catalog json: %w", err)
	}
	return opts, nil
}
