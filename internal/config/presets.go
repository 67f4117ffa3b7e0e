package config

import "sort"

// Presets is the built-in object catalog: transit candidates with depths and
// durations read off their phased light curves, keyed by object id.
var Presets = map[string]*ObjectConfig{
	"118": {
		Name: "118", PeriodDays: 4.2568, MstarSolar: 1.05, RstarSolar: 1.02,
		Depth: 0.0092, DepthErr: 0.0004, DurationDays: 0.1103, DurationErrDays: 0.004,
	},
	"162": {
		Name: "162", PeriodDays: 2.2047, MstarSolar: 0.89, RstarSolar: 0.87,
		Depth: 0.0151, DepthErr: 0.0011, DurationDays: 0.0701, DurationErrDays: 0.003,
	},
	"230": {
		Name: "230", PeriodDays: 3243.57, MstarSolar: 1.45, RstarSolar: 1.591,
		Depth: 0.031, DepthErr: 0.002, DurationDays: 1.725, DurationErrDays: 0.1,
	},
	"355": {
		Name: "355", PeriodDays: 12.813, MstarSolar: 1.22, RstarSolar: 1.31,
		Depth: 0.0228, DepthErr: 0.0016, DurationDays: 0.221, DurationErrDays: 0.012,
	},
}

func GetPreset(name string) *ObjectConfig {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinCatalog bundles every preset into a catalog, in sorted object order.
func BuiltinCatalog() *Catalog {
	cat := &Catalog{Name: "builtin"}
	for _, name := range ListPresets() {
		cat.Objects = append(cat.Objects, *Presets[name])
	}
	return cat
}
