package schema

// Custom string types for type safety.
type (
	// IndicatorKey identifies a food-security indicator.
	IndicatorKey string

	// Variant names a threshold table row of an indicator.
	Variant string

	// Label is an ordinal category assigned to a score.
	Label string

	// OutputMode represents the format of the output.
	OutputMode string

	// InputFormat represents the on-disk format of a survey dataset.
	InputFormat string

	// Severity groups labels of different indicators on one scale.
	Severity int
)

// All indicators supported.
const (
	FCSKey  IndicatorKey = "fcs"
	RCSIKey IndicatorKey = "rcsi"
)

// All threshold variants supported.
const (
	StandardVariant     Variant = "standard"
	HighSugarOilVariant Variant = "high_sugar_oil"
)

// Unclassified is assigned to scores that fall in no bin (negative or NaN).
const Unclassified Label = ""

// FCS labels, lowest bin first.
const (
	PoorLabel       Label = "Poor"
	BorderlineLabel Label = "Borderline"
	AcceptableLabel Label = "Acceptable"
)

// rCSI labels, lowest bin first.
const (
	MinimalLabel  Label = "Minimal"
	ModerateLabel Label = "Moderate"
	SevereLabel   Label = "Severe"
)

// Severity levels used for coloring labels.
const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All input formats supported.
const (
	AutoInput    InputFormat = "" // default, inferred from the file extension
	CSVInput     InputFormat = "csv"
	ParquetInput InputFormat = "parquet"
	ArrowInput   InputFormat = "arrow"
)

// AllIndicatorKeys lists the built-in indicators in display order.
var AllIndicatorKeys = []IndicatorKey{FCSKey, RCSIKey}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidInputFormats lists all valid input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	AutoInput:    {},
	CSVInput:     {},
	ParquetInput: {},
	ArrowInput:   {},
}

// fcsColumns are the FCS food groups with their nutritional weights.
var fcsColumns = ColumnWeights{
	{Name: "FCSStap", Weight: 2},
	{Name: "FCSPulse", Weight: 3},
	{Name: "FCSVeg", Weight: 1},
	{Name: "FCSFruit", Weight: 1},
	{Name: "FCSPr", Weight: 4},
	{Name: "FCSDairy", Weight: 4},
	{Name: "FCSSugar", Weight: 0.5},
	{Name: "FCSFat", Weight: 0.5},
}

// fcsThresholds holds the published FCS cutoffs. The high sugar/oil table
// applies where sugar and oil are consumed daily.
var fcsThresholds = ThresholdTable{
	StandardVariant:     {Low: 21.5, High: 35.5},
	HighSugarOilVariant: {Low: 28.5, High: 42.5},
}

// fcsLabels are the FCS categories.
var fcsLabels = Labels{PoorLabel, BorderlineLabel, AcceptableLabel}

// rcsiColumns are the rCSI coping strategies with their severity weights.
var rcsiColumns = ColumnWeights{
	{Name: "rCSILessQlty", Weight: 1},
	{Name: "rCSIBorrow", Weight: 2},
	{Name: "rCSIMealNb", Weight: 1},
	{Name: "rCSIMealSize", Weight: 1},
	{Name: "rCSIMealAdult", Weight: 3},
}

// rcsiThresholds holds the rCSI cutoffs.
var rcsiThresholds = ThresholdTable{
	StandardVariant: {Low: 4, High: 18.5},
}

// rcsiLabels are the rCSI categories.
var rcsiLabels = Labels{MinimalLabel, ModerateLabel, SevereLabel}

// labelSeverity places every known label on a shared scale. FCS is
// ascending-good while rCSI is ascending-bad.
var labelSeverity = map[Label]Severity{
	PoorLabel:       SeverityHigh,
	BorderlineLabel: SeverityMedium,
	AcceptableLabel: SeverityLow,
	MinimalLabel:    SeverityLow,
	ModerateLabel:   SeverityMedium,
	SevereLabel:     SeverityHigh,
}

// FCSColumns returns a copy of the FCS column weights.
func FCSColumns() ColumnWeights { return fcsColumns.Clone() }

// FCSThresholds returns a copy of the FCS threshold table.
func FCSThresholds() ThresholdTable { return fcsThresholds.Clone() }

// RCSIColumns returns a copy of the rCSI column weights.
func RCSIColumns() ColumnWeights { return rcsiColumns.Clone() }

// RCSIThresholds returns a copy of the rCSI threshold table.
func RCSIThresholds() ThresholdTable { return rcsiThresholds.Clone() }

// LabelsFor returns the ordered labels of a built-in indicator.
func LabelsFor(key IndicatorKey) Labels {
	switch key {
	case FCSKey:
		return fcsLabels
	case RCSIKey:
		return rcsiLabels
	default:
		return Labels{}
	}
}

// GetSeverity returns the severity of a label, or SeverityNone when unknown.
func GetSeverity(label Label) Severity {
	return labelSeverity[label]
}
