package addon

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stagecrew/stagekit/pkg/plan"
)

// Catalog is a static, versioned list of add-on definitions held fully in
// memory. Lookups are synchronous; the composer depends on that.
type Catalog struct {
	version string
	byID    map[string]Definition
	ordered []Definition
}

// NewCatalog builds a catalog from definitions. Later duplicates of an ID
// replace earlier ones.
func NewCatalog(version string, defs []Definition) *Catalog {
	byID := make(map[string]Definition, len(defs))
	ordered := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if _, dup := byID[def.ID]; !dup {
			ordered = append(ordered, def)
		}
		byID[def.ID] = def
	}
	return &Catalog{version: version, byID: byID, ordered: ordered}
}

// Version returns the catalog version tag.
func (c *Catalog) Version() string {
	return c.version
}

// Lookup returns the definition for an id.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// Definitions returns all definitions in declaration order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// AvailableFor returns the definitions purchasable on the given plan.
func (c *Catalog) AvailableFor(key plan.Key) []Definition {
	out := make([]Definition, 0, len(c.ordered))
	for _, def := range c.ordered {
		if def.AppliesTo(key) {
			out = append(out, def)
		}
	}
	return out
}

// DefaultCatalog returns the built-in add-on catalog.
func DefaultCatalog() *Catalog {
	paid := []plan.Key{plan.KeyStarter, plan.KeyStandard, plan.KeyPro}

	return NewCatalog("2026-01", []Definition{
		{
			ID:          "addon_shows_5",
			Name:        "5 Extra Shows",
			Type:        TypeShows,
			Quantity:    5,
			TargetPlans: paid,
			Price:       Money{Amount: 499, Currency: "USD"},
		},
		{
			ID:          "addon_props_100",
			Name:        "100 Extra Props",
			Type:        TypeProps,
			Quantity:    100,
			TargetPlans: paid,
			Price:       Money{Amount: 299, Currency: "USD"},
		},
		{
			ID:          "addon_props_500",
			Name:        "500 Extra Props",
			Type:        TypeProps,
			Quantity:    500,
			TargetPlans: []plan.Key{plan.KeyStandard, plan.KeyPro},
			Price:       Money{Amount: 999, Currency: "USD"},
		},
		{
			ID:          "addon_packing_boxes_50",
			Name:        "50 Extra Packing Boxes",
			Type:        TypePackingBoxes,
			Quantity:    50,
			TargetPlans: paid,
			Price:       Money{Amount: 199, Currency: "USD"},
		},
		{
			ID:          "addon_archived_shows_10",
			Name:        "10 Extra Archived Shows",
			Type:        TypeArchivedShows,
			Quantity:    10,
			TargetPlans: paid,
			Price:       Money{Amount: 199, Currency: "USD"},
		},
	})
}

type catalogDoc struct {
	Version string       `yaml:"version"`
	AddOns  []catalogDef `yaml:"addons"`
}

type catalogDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Quantity    int64    `yaml:"quantity"`
	TargetPlans []string `yaml:"target_plans"`
	PriceCents  int64    `yaml:"price_cents"`
	Currency    string   `yaml:"currency"`
}

// LoadCatalogFile reads a catalog from a YAML file:
//
//	version: "2026-01"
//	addons:
//	  - id: addon_props_100
//	    name: 100 Extra Props
//	    type: props
//	    quantity: 100
//	    target_plans: [starter, standard, pro]
//	    price_cents: 299
//	    currency: USD
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	defs := make([]Definition, 0, len(doc.AddOns))
	for _, d := range doc.AddOns {
		typ := Type(d.Type)
		if _, ok := additiveResource[typ]; !ok {
			return nil, errors.Join(ErrInvalidCatalogEntry,
				fmt.Errorf("add-on %q has unknown type %q", d.ID, d.Type))
		}
		if d.Quantity <= 0 {
			return nil, errors.Join(ErrInvalidCatalogEntry,
				fmt.Errorf("add-on %q has non-positive quantity %d", d.ID, d.Quantity))
		}

		targets := make([]plan.Key, 0, len(d.TargetPlans))
		for _, p := range d.TargetPlans {
			targets = append(targets, plan.ParseKey(p))
		}

		defs = append(defs, Definition{
			ID:          d.ID,
			Name:        d.Name,
			Type:        typ,
			Quantity:    d.Quantity,
			TargetPlans: targets,
			Price:       Money{Amount: d.PriceCents, Currency: d.Currency},
		})
	}

	return NewCatalog(doc.Version, defs), nil
}
