package inventory

import "slices"

// Schema names the columns the loader and the callers treat specially. Column
// names are matched exactly and case-sensitively.
type Schema struct {
	// ForceText columns are always loaded as strings, missing values as "".
	ForceText []string
	// SearchColumns is the default search selection.
	SearchColumns []string
	// DisplayColumns is the default display selection.
	DisplayColumns []string
	// NullMarkers are literal cell texts treated as missing, both when a sheet
	// is read and by the loose text conversion.
	NullMarkers []string
}

// DefaultSchema returns the lab inventory column layout.
func DefaultSchema() Schema {
	return Schema{
		ForceText: []string{
			"CAS Number", "Lot Number", "Catalog #", "Serial Number", "Location",
			"Sub-location", "Item Name *", "Genotype *", "Notes", "Vendor", "Alt Name/ID",
		},
		SearchColumns:  []string{"Item Name *", "Catalog #", "Location", "Notes", "CAS Number"},
		DisplayColumns: []string{"Item Name *", "Location"},
		NullMarkers:    []string{"nan", "<NA>"},
	}
}

// IsForceText reports whether column is one of the force-text columns.
func (s Schema) IsForceText(column string) bool {
	return slices.Contains(s.ForceText, column)
}

