package recommend

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed catalog_schema.json
var catalogSchemaJSON []byte

// CatalogEntry is the metadata for one rule code.
type CatalogEntry struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	Priority string `json:"priority"`
}

// Catalog is the rule metadata shipped with the binary. It documents the
// rule set; DefaultRules is the executable counterpart.
type Catalog struct {
	Version string         `json:"version"`
	Rules   []CatalogEntry `json:"rules"`

	byCode map[string]CatalogEntry
}

// Entry looks up catalog metadata by rule code.
func (c *Catalog) Entry(code string) (CatalogEntry, bool) {
	e, ok := c.byCode[code]
	return e, ok
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog parses and schema-validates the embedded catalog. The result
// is cached; every call after the first returns the same value.
func LoadCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = parseCatalog(catalogJSON)
	})
	return catalog, catalogErr
}

func parseCatalog(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	compiled, err := compileCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c.byCode = make(map[string]CatalogEntry, len(c.Rules))
	for _, e := range c.Rules {
		if _, dup := c.byCode[e.Code]; dup {
			return nil, fmt.Errorf("duplicate catalog code %s", e.Code)
		}
		c.byCode[e.Code] = e
	}
	return &c, nil
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(catalogSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	const url = "schema://rule-catalog.json"
	if err := compiler.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}
