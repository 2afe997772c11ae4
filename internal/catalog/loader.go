package catalog

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"

	"github.com/skirmishforge/warband-api/internal/errors"
)

//go:embed data
var defaultData embed.FS

// The six ruleset documents. A load failure for any one of them is
// fatal to startup.
const (
	warbandsFile    = "warbands.json"
	equipmentFile   = "equipment.json"
	skillsFile      = "skills.json"
	injuriesFile    = "injuries.json"
	advancementFile = "advancement.json"
	spellsFile      = "spells.json"
)

// LoadDefault loads the ruleset embedded in the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded ruleset")
	}
	return Load(sub)
}

// LoadDir loads the ruleset from a directory on disk, for campaigns
// running house-ruled content.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads all six ruleset documents from the given filesystem and
// builds a Catalog. It fails fast on the first document that cannot be
// read or parsed.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		warbands    warbandsDoc
		equipment   equipmentDoc
		skills      skillsDoc
		injuries    InjuryTables
		advancement AdvancementConfig
		spells      spellsDoc
	)

	documents := []struct {
		name   string
		target interface{}
	}{
		{warbandsFile, &warbands},
		{equipmentFile, &equipment},
		{skillsFile, &skills},
		{injuriesFile, &injuries},
		{advancementFile, &advancement},
		{spellsFile, &spells},
	}

	for _, doc := range documents {
		data, err := fs.ReadFile(fsys, doc.name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load ruleset document %s", doc.name)
		}
		if err := json.Unmarshal(data, doc.target); err != nil {
			return nil, errors.Wrapf(err, "failed to parse ruleset document %s", doc.name)
		}
	}

	c := &Catalog{
		warbands:    warbands.Warbands,
		equipment:   equipment.Categories,
		skills:      skills.SkillCategories,
		spells:      spells.SpellLists,
		injuries:    injuries,
		advancement: advancement,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate checks the structural minimums the rest of the system relies
// on. Content errors beyond these surface as nil lookups at runtime.
func (c *Catalog) validate() error {
	if len(c.warbands) == 0 {
		return errors.Internal("ruleset has no warband templates")
	}
	if len(c.advancement.HeroAdvancement.ExpThresholds) == 0 {
		return errors.Internal("ruleset has no experience thresholds")
	}
	return nil
}
