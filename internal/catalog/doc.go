// Package catalog holds the in-memory spell index.
//
// An Index is built once from a complete, already validated record set and
// is read-only afterwards. It keeps a canonical identity-key to record map
// plus one secondary index per queryable facet; the secondary indexes store
// identity keys only, never record data.
//
// Queries combine facets with AND and the values inside one facet with OR.
// Every facet filter narrows an ordered working list of keys, so results
// always come back in ingestion order.
//
// Preconditions: identity keys (lowercased names) are unique and every
// required facet is populated. Both are checked by dnd5e.ValidateSpells in
// the loader, not here.
//
// An Index is safe for concurrent use by multiple goroutines.
package catalog
