// Package dataset defines the tabular view the indicators read survey data through.
package dataset

// Kind is the storage type of a column.
type Kind int

// All column kinds.
const (
	Other Kind = iota
	Int
	Float
	Bool
	String
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "other"
	}
}

// IsNumeric reports whether values of the kind can enter a weighted sum.
// Booleans count as numeric (true=1, false=0).
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float || k == Bool
}

// Column is a read-only named column of a Table.
type Column interface {
	Name() string
	Kind() Kind
	Len() int

	// IsNull reports whether entry i is absent. A NaN float is absent.
	IsNull(i int) bool

	// Float returns entry i as a float64. Null and non-numeric entries yield NaN.
	Float(i int) float64
}

// Table is a read-only, column-addressable survey table. All columns have Rows() entries.
type Table interface {
	Rows() int
	Column(name string) (Column, bool)
	Names() []string
}
