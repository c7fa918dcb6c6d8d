package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v3"
)

// Paths names the four table files. Empty entries are simply absent tables.
type Paths struct {
	Equipment    string
	Requirements string
	Standards    string
	Issuers      string
}

// Load reads the knowledge base. Each table degrades independently: a
// missing or malformed file yields an empty table and a logged warning, so
// a batch run continues with "no constraints available" for that concern.
func Load(paths Paths) *Base {
	b := &Base{}
	loadTable(paths.Equipment, "equipment", &b.Equipment)
	loadTable(paths.Requirements, "requirements", &b.Requirements)
	loadTable(paths.Standards, "standards", &b.Standards)
	loadTable(paths.Issuers, "issuers", &b.Issuers)
	return b
}

// loadTable reads YAML or JSON into out, dispatching on file extension the
// same way the config loader does. out keeps its zero value on any failure.
func loadTable[T any](path, table string, out *[]T) {
	if path == "" {
		return
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("table", table).Str("path", path).Err(err).Msg("knowledge table unavailable, continuing without it")
		return
	}
	if err := unmarshalTable(path, raw, out); err != nil {
		*out = nil
		log.Warn().Str("table", table).Str("path", path).Err(err).Msg("knowledge table malformed, continuing without it")
		return
	}
	log.Debug().Str("table", table).Int("entries", len(*out)).Msg("knowledge table loaded")
}

func unmarshalTable[T any](path string, raw []byte, out *[]T) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(raw, out); err != nil {
			if jerr := json.Unmarshal(raw, out); jerr != nil {
				return fmt.Errorf("parse table: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return nil
}
