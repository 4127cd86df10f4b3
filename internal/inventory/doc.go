// Package inventory loads inventory spreadsheets and filters them with
// multi-term, multi-column substring search.
//
// Load and Search keep no state between calls and may be used concurrently.
// Informational outcomes (nothing loaded, nothing to search for) come back as
// the ErrEmptyInventory and ErrEmptyQuery sentinels next to an empty table;
// KindOf classifies any returned error.
package inventory
