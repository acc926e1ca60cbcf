package models

import (
	"bytes"
	"encoding/json"
)

// TestCaseResult is the record produced for one checked URL. Nullable fields
// are pointers so the serialized document carries explicit nulls, letting
// downstream reporting tell "checked and clean" apart from "could not be
// checked".
type TestCaseResult struct {
	Airline         string   `json:"airline"`
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	URL             string   `json:"url"`
	LoadTime        *float64 `json:"load_time"`
	HTTPStatus      *int     `json:"http_status"`
	FirstOfferPrice *string  `json:"first_offer_price"`
	IsNDC           bool     `json:"is_ndc"`
	NDCPosition     *int     `json:"ndc_position"`
	NDCPrice        *string  `json:"ndc_price"`
	HasUpsell       bool     `json:"has_upsell"`
	UpsellPrices    []string `json:"upsell_prices"`
	Note            *string  `json:"note"`
}

// CaseResults maps case keys to results while preserving insertion order, so
// the serialized document lists cases in the order their URLs were processed.
type CaseResults struct {
	keys  []string
	byKey map[string]TestCaseResult
}

// NewCaseResults creates an empty ordered case-result collection.
func NewCaseResults() *CaseResults {
	return &CaseResults{byKey: make(map[string]TestCaseResult)}
}

// Put stores a result under key, appending the key if it is new.
func (c *CaseResults) Put(key string, result TestCaseResult) {
	if _, exists := c.byKey[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.byKey[key] = result
}

// Get returns the result stored under key.
func (c *CaseResults) Get(key string) (TestCaseResult, bool) {
	result, ok := c.byKey[key]
	return result, ok
}

// Keys returns the case keys in insertion order.
func (c *CaseResults) Keys() []string {
	return append([]string{}, c.keys...)
}

// Len returns the number of stored results.
func (c *CaseResults) Len() int {
	return len(c.keys)
}

// MarshalJSON serializes the collection as a JSON object with keys in
// insertion order.
func (c *CaseResults) MarshalJSON() ([]byte, error) {
	return marshalOrdered(c.keys, func(key string) any { return c.byKey[key] })
}

// Aggregate maps test-set names to their case results, preserving the order
// test sets were submitted in. Built once per run, then handed unchanged to
// the reporting step.
type Aggregate struct {
	names  []string
	bySets map[string]*CaseResults
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{bySets: make(map[string]*CaseResults)}
}

// Add stores the case results for a named test set. A nil value is stored as
// an empty collection so every submitted test set appears in the output.
func (a *Aggregate) Add(name string, cases *CaseResults) {
	if cases == nil {
		cases = NewCaseResults()
	}
	if _, exists := a.bySets[name]; !exists {
		a.names = append(a.names, name)
	}
	a.bySets[name] = cases
}

// Get returns the case results for a named test set.
func (a *Aggregate) Get(name string) (*CaseResults, bool) {
	cases, ok := a.bySets[name]
	return cases, ok
}

// Names returns the test-set names in submission order.
func (a *Aggregate) Names() []string {
	return append([]string{}, a.names...)
}

// MarshalJSON serializes the aggregate as a JSON object with test sets in
// submission order.
func (a *Aggregate) MarshalJSON() ([]byte, error) {
	return marshalOrdered(a.names, func(name string) any { return a.bySets[name] })
}

// marshalOrdered writes a JSON object whose keys appear in the given order.
// encoding/json maps would lose the order the catalog and the URL lists
// establish.
func marshalOrdered(keys []string, value func(string) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(value(key))
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
