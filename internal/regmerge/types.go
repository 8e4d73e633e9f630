package regmerge

// Options controls how parsed .reg trees are layered.
type Options struct {
	// ExpandRootAliases rewrites short hive roots (HKLM, HKCU, HKU, HKCR,
	// HKCC) to their long names, so that files using either spelling
	// address the same key.
	// Default: true
	ExpandRootAliases bool

	// ApplyDeletes lets [-Key] and "name"=- in a later layer remove keys
	// and values contributed by earlier layers.
	// Default: true
	ApplyDeletes bool
}

// DefaultOptions returns the recommended overlay settings.
func DefaultOptions() Options {
	return Options{
		ExpandRootAliases: true,
		ApplyDeletes:      true,
	}
}

// Stats describes what an overlay did.
type Stats struct {
	// Layers is the number of trees passed in, nil ones included.
	Layers int

	// InputValues is the number of values across all layers.
	InputValues int

	// OutputValues is the number of values in the result.
	OutputValues int

	// OutputKeys is the number of keys in the result.
	OutputKeys int

	// Overridden is the count of values replaced by a later layer
	// (last-write-wins).
	Overridden int

	// ShadowedByDelete is the count of values removed because a later
	// layer deleted them or one of their keys.
	ShadowedByDelete int
}

// ReductionPercent returns the percentage of input values not present in
// the result.
func (s Stats) ReductionPercent() float64 {
	if s.InputValues == 0 {
		return 0
	}
	return float64(s.InputValues-s.OutputValues) / float64(s.InputValues) * 100
}
