package summarizer

// UsageRecord is the token count of a single API call.
type UsageRecord struct {
	InputTokens  int
	OutputTokens int
}

// Usage accumulates per-call records into running totals.
type Usage struct {
	Records      []UsageRecord
	InputTokens  int
	OutputTokens int
}

// Add appends a record and updates the running totals.
func (u *Usage) Add(r UsageRecord) {
	u.Records = append(u.Records, r)
	u.InputTokens += r.InputTokens
	u.OutputTokens += r.OutputTokens
}

// TotalTokens is the combined input and output token count.
func (u *Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// modelPricing is USD per one million tokens.
type modelPricing struct {
	input  float64
	output float64
}

var pricing = map[string]modelPricing{
	"gemini-2.5-pro":        {input: 1.25, output: 10.00},
	"gemini-2.5-flash":      {input: 0.30, output: 2.50},
	"gemini-2.5-flash-lite": {input: 0.10, output: 0.40},
	"gemini-2.0-flash":      {input: 0.10, output: 0.40},
}

// EstimatedCost returns the approximate USD cost of the accumulated
// usage for the given model. Unknown models use flash pricing.
func (u *Usage) EstimatedCost(model string) float64 {
	p, ok := pricing[model]
	if !ok {
		p = pricing["gemini-2.5-flash"]
	}
	const million = 1_000_000
	return float64(u.InputTokens)/million*p.input + float64(u.OutputTokens)/million*p.output
}
