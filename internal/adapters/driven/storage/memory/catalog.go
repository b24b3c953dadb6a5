package memory

import (
	"sync"

	"github.com/custodia-labs/mailctl/internal/core/domain"
	"github.com/custodia-labs/mailctl/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.ConnectorCatalog = (*Catalog)(nil)

// Catalog is a mutable in-memory connector catalog. Connectors can be
// installed and uninstalled while the process runs; readers always see
// the live set.
type Catalog struct {
	mu         sync.RWMutex
	order      []domain.ConnectorID
	connectors map[domain.ConnectorID]driven.Connector
}

// NewCatalog creates a catalog with the given connectors installed.
func NewCatalog(connectors ...driven.Connector) *Catalog {
	c := &Catalog{
		connectors: make(map[domain.ConnectorID]driven.Connector),
	}
	for _, connector := range connectors {
		c.Install(connector)
	}
	return c
}

// Install adds (or replaces) a connector.
func (c *Catalog) Install(connector driven.Connector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := connector.ID()
	if _, exists := c.connectors[id]; !exists {
		c.order = append(c.order, id)
	}
	c.connectors[id] = connector
}

// Uninstall removes a connector. Unknown IDs are a no-op.
func (c *Catalog) Uninstall(id domain.ConnectorID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.connectors[id]; !exists {
		return
	}
	delete(c.connectors, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Connectors returns the currently installed connectors in install order.
func (c *Catalog) Connectors() []driven.Connector {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]driven.Connector, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.connectors[id])
	}
	return result
}

// Get returns the installed connector with the given ID, if any.
func (c *Catalog) Get(id domain.ConnectorID) (driven.Connector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	connector, ok := c.connectors[id]
	return connector, ok
}
