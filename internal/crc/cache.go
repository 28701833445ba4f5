package crc

import (
	"github.com/dgraph-io/ristretto"
)

// DefaultCacheCapacity is the number of tables kept for polynomials other
// than the predefined ones.
const DefaultCacheCapacity = 256

var predefined = map[uint32]*Table{
	IEEE:       MakeTable(IEEE),
	Castagnoli: MakeTable(Castagnoli),
	Koopman:    MakeTable(Koopman),
}

// Cache maps polynomials to tables. Predefined polynomials always hit;
// others live in a bounded cache and are rebuilt after eviction.
type Cache struct {
	tables *ristretto.Cache
}

// NewCache creates a cache holding up to capacity tables.
func NewCache(capacity int64) (*Cache, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	tables, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        capacity * 10,
		MaxCost:            capacity,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{tables: tables}, nil
}

// Table returns the table for poly, building it on a miss.
func (c *Cache) Table(poly uint32) *Table {
	if t, ok := predefined[poly]; ok {
		return t
	}
	if v, ok := c.tables.Get(poly); ok {
		return v.(*Table)
	}
	t := MakeTable(poly)
	c.tables.Set(poly, t, 1)
	return t
}

func (c *Cache) Close() {
	c.tables.Close()
}

var tables *Cache

func init() {
	var err error
	tables, err = NewCache(DefaultCacheCapacity)
	if err != nil {
		panic(err)
	}
}

// LookupTable returns the shared table for poly.
func LookupTable(poly uint32) *Table {
	return tables.Table(poly)
}
