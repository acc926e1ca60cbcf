package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// TestSet is a named group of URL variants exercising one airline's offer
// display. Immutable input: the loader builds it once and nothing mutates it
// afterwards.
type TestSet struct {
	Name string
	URLs []string
}

// Load reads the test-set catalog from a JSON file. The file must be an
// object mapping test-set names to arrays of URL templates; key order is
// preserved. A missing or malformed catalog is the one fatal input error:
// the run must abort before any browser work starts.
func Load(path string) ([]TestSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	sets, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return sets, nil
}

// decode reads the catalog object token by token. encoding/json maps would
// lose the file's key order, which fixes the submission order of test sets.
func decode(r io.Reader) ([]TestSet, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog must be a JSON object of test sets")
	}

	var sets []TestSet
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name := tok.(string)

		var urls []string
		if err := dec.Decode(&urls); err != nil {
			return nil, fmt.Errorf("test set %q must map to an array of URLs: %w", name, err)
		}
		sets = append(sets, TestSet{Name: name, URLs: urls})
	}

	return sets, nil
}

// Expand returns a copy of the test set with the departure date placeholders
// substituted in every URL. The dates are opaque strings here.
func (t TestSet) Expand(departureDate1, departureDate2 string) TestSet {
	urls := make([]string, len(t.URLs))
	for i, u := range t.URLs {
		u = strings.ReplaceAll(u, "{departure_date_1}", departureDate1)
		urls[i] = strings.ReplaceAll(u, "{departure_date_2}", departureDate2)
	}
	return TestSet{Name: t.Name, URLs: urls}
}
