package pricer

// ExtractStatus tags the outcome of one extraction attempt. Callers always
// see the degraded null/"not found" value, but the tag keeps "nothing
// matched" distinguishable from "the selector errored" in logs.
type ExtractStatus int

const (
	ExtractFound ExtractStatus = iota
	ExtractNotFound
	ExtractTimedOut
	ExtractFailed
)

func (s ExtractStatus) String() string {
	switch s {
	case ExtractFound:
		return "found"
	case ExtractNotFound:
		return "not_found"
	case ExtractTimedOut:
		return "timed_out"
	case ExtractFailed:
		return "failed"
	}
	return "unknown"
}

// PriceOutcome is the result of a price extraction attempt. Price is the
// normalized price text and is only meaningful when Status is ExtractFound.
type PriceOutcome struct {
	Status ExtractStatus
	Price  string
}
