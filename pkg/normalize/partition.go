package normalize

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// IsNumeric reports whether a column type is scaled rather than passed through.
func IsNumeric(t series.Type) bool {
	return t == series.Int || t == series.Float
}

// SplitColumns separates the columns of df into the caller's excluded names,
// the remaining non-numeric columns and the numeric columns to scale.
// The excluded slice is copied, never modified.
func SplitColumns(df dataframe.DataFrame, excluded []string) (Partition, error) {
	if df.Ncol() == 0 {
		return Partition{}, invalidInput("frame has no columns")
	}
	if err := df.Error(); err != nil {
		return Partition{}, err
	}

	names := df.Names()

	present := make(map[string]struct{}, len(names))
	for _, name := range names {
		present[name] = struct{}{}
	}

	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		if _, ok := present[name]; !ok {
			return Partition{}, &ColumnNotFoundError{Column: name}
		}
		if _, dup := skip[name]; dup {
			return Partition{}, invalidInput("column %q excluded more than once", name)
		}
		skip[name] = struct{}{}
	}

	p := Partition{Excluded: append([]string{}, excluded...)}
	types := df.Types()
	for i, name := range names {
		if _, ok := skip[name]; ok {
			continue
		}
		if IsNumeric(types[i]) {
			p.Numeric = append(p.Numeric, name)
		} else {
			p.NonNumeric = append(p.NonNumeric, name)
		}
	}

	return p, nil
}
