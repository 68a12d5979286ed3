package scheduling

import (
	"fmt"

	"glowdesk/models"
)

// Catalog is the immutable service registry, built once at startup from
// static configuration and read-only afterwards.
type Catalog struct {
	byID  map[string]models.ServiceDefinition
	order []string
}

// NewCatalog validates every definition and indexes it by ID.
func NewCatalog(defs []models.ServiceDefinition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]models.ServiceDefinition, len(defs))}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate service %q", def.ID)
		}
		c.byID[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return c, nil
}

// Get resolves a service by ID.
func (c *Catalog) Get(id string) (models.ServiceDefinition, error) {
	def, ok := c.byID[id]
	if !ok {
		return models.ServiceDefinition{}, fmt.Errorf("%q: %w", id, ErrUnknownService)
	}
	return def, nil
}

// List returns all definitions in registration order.
func (c *Catalog) List() []models.ServiceDefinition {
	out := make([]models.ServiceDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
