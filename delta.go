package benchutil

// Field names used by Delta.Map and Delta.Anomalies.
const (
	FieldMaxRSS      = "peak_resident_memory"
	FieldMajorFaults = "major_page_faults"
	FieldMinorFaults = "minor_page_faults"
	FieldInBlocks    = "block_input_ops"
	FieldOutBlocks   = "block_output_ops"
)

// Delta is the field-wise difference between two snapshots. Fields are
// signed and never clamped, so a counter that appears to go backwards shows
// up as a negative value.
type Delta struct {
	MaxRSS      int64 `json:"max_rss"`
	MajorFaults int64 `json:"major_faults"`
	MinorFaults int64 `json:"minor_faults"`
	InBlocks    int64 `json:"in_blocks"`
	OutBlocks   int64 `json:"out_blocks"`
}

// Diff returns after - before for every field.
func Diff(before, after Snapshot) Delta {
	return Delta{
		MaxRSS:      sub(after.MaxRSS, before.MaxRSS),
		MajorFaults: sub(after.MajorFaults, before.MajorFaults),
		MinorFaults: sub(after.MinorFaults, before.MinorFaults),
		InBlocks:    sub(after.InBlocks, before.InBlocks),
		OutBlocks:   sub(after.OutBlocks, before.OutBlocks),
	}
}

// Wraps to a negative value when b > a.
func sub(a, b uint64) int64 {
	return int64(a - b)
}

// Map returns the delta keyed by field name.
func (d Delta) Map() map[string]int64 {
	return map[string]int64{
		FieldMaxRSS:      d.MaxRSS,
		FieldMajorFaults: d.MajorFaults,
		FieldMinorFaults: d.MinorFaults,
		FieldInBlocks:    d.InBlocks,
		FieldOutBlocks:   d.OutBlocks,
	}
}

// Anomalies returns the names of the fields that decreased, in field order.
func (d Delta) Anomalies() []string {
	var names []string
	for _, f := range []struct {
		name string
		v    int64
	}{
		{FieldMaxRSS, d.MaxRSS},
		{FieldMajorFaults, d.MajorFaults},
		{FieldMinorFaults, d.MinorFaults},
		{FieldInBlocks, d.InBlocks},
		{FieldOutBlocks, d.OutBlocks},
	} {
		if f.v < 0 {
			names = append(names, f.name)
		}
	}
	return names
}
