package core

import (
	"math"

	"github.com/huangsam/foodsec/dataset"
)

// Inclusive bounds for the range check. Survey frequency columns count days per week.
const (
	DefaultMinValue = 0.0
	DefaultMaxValue = 7.0
)

// CheckColumnsExist reports which of the columns are absent from t.
func CheckColumnsExist(t dataset.Table, columns []string) (bool, []string) {
	var missing []string
	for _, name := range columns {
		if _, ok := t.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}

// CheckMissingValues reports columns holding at least one null or NaN entry.
// Absent columns are skipped.
func CheckMissingValues(t dataset.Table, columns []string) (bool, []string) {
	var offending []string
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		for i := range col.Len() {
			if col.IsNull(i) {
				offending = append(offending, name)
				break
			}
		}
	}
	return len(offending) == 0, offending
}

// CheckNumericColumns reports columns whose kind is not numeric.
// Absent columns are skipped.
func CheckNumericColumns(t dataset.Table, columns []string) (bool, []string) {
	var offending []string
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		if !col.Kind().IsNumeric() {
			offending = append(offending, name)
		}
	}
	return len(offending) == 0, offending
}

// CheckValueRanges reports columns with any entry outside [minValue, maxValue].
// A non-numeric column or a null entry counts as out of range. Absent columns
// and columns without rows pass.
func CheckValueRanges(t dataset.Table, columns []string, minValue, maxValue float64) (bool, []string) {
	var offending []string
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok || col.Len() == 0 {
			continue
		}
		if !col.Kind().IsNumeric() {
			offending = append(offending, name)
			continue
		}
		for i := range col.Len() {
			v := col.Float(i)
			if math.IsNaN(v) || v < minValue || v > maxValue {
				offending = append(offending, name)
				break
			}
		}
	}
	return len(offending) == 0, offending
}

// Check runs the column checks in order and returns the first failure, or nil.
func Check(t dataset.Table, columns []string) *ValidationError {
	if ok, bad := CheckColumnsExist(t, columns); !ok {
		return &ValidationError{Kind: MissingColumns, Columns: bad}
	}
	if ok, bad := CheckMissingValues(t, columns); !ok {
		return &ValidationError{Kind: MissingValues, Columns: bad}
	}
	if ok, bad := CheckNumericColumns(t, columns); !ok {
		return &ValidationError{Kind: NonNumeric, Columns: bad}
	}
	if ok, bad := CheckValueRanges(t, columns, DefaultMinValue, DefaultMaxValue); !ok {
		return &ValidationError{Kind: OutOfRange, Columns: bad}
	}
	return nil
}
