package countries

import "context"

// DefaultCode is the region code selected after a load when present
const DefaultCode = "US"

// Fetcher returns the full country directory
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Country, error)
}

// LoadResult is the outcome of one directory load
type LoadResult struct {
	Countries []Country // Empty on failure
	Selected  int       // Index into Countries, -1 when nothing is selected
	Err       error     // Failure cause; kept for logging only
}

// SelectedCountry returns the selected country, if any
func (r LoadResult) SelectedCountry() (Country, bool) {
	if r.Selected < 0 || r.Selected >= len(r.Countries) {
		return Country{}, false
	}
	return r.Countries[r.Selected], true
}

// Load fetches the directory once and selects the first entry whose code
// equals defaultCode. Any failure yields an empty list and no selection.
func Load(ctx context.Context, f Fetcher, defaultCode string) LoadResult {
	list, err := f.FetchAll(ctx)
	if err != nil {
		return LoadResult{Selected: -1, Err: err}
	}
	if list == nil {
		list = []Country{}
	}

	return LoadResult{
		Countries: list,
		Selected:  IndexOf(list, defaultCode),
	}
}
