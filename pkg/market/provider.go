package market

// Quote is the per-crop market snapshot the optimizer consumes.
type Quote struct {
	PricePerUnit float64 `json:"price_per_unit"`
	Volatility   float64 `json:"volatility"`
}

type Provider interface {
	Quotes(crops []string) map[string]Quote
}

// staticProvider serves fixed reference prices. A live provider would be
// swapped in behind the same interface without touching the engine.
type staticProvider struct {
	quotes map[string]Quote
}

func NewStatic() Provider {
	return &staticProvider{quotes: map[string]Quote{
		"corn":    {PricePerUnit: 4.50, Volatility: 0.15},
		"soybean": {PricePerUnit: 11.20, Volatility: 0.18},
		"wheat":   {PricePerUnit: 6.10, Volatility: 0.20},
		"oats":    {PricePerUnit: 3.80, Volatility: 0.12},
		"alfalfa": {PricePerUnit: 210.00, Volatility: 0.10}, // per ton
		"barley":  {PricePerUnit: 5.40, Volatility: 0.16},
	}}
}

func (p *staticProvider) Quotes(crops []string) map[string]Quote {
	out := make(map[string]Quote, len(crops))
	for _, c := range crops {
		if q, ok := p.quotes[c]; ok {
			out[c] = q
		}
	}
	return out
}
