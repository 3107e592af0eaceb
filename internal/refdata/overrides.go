package refdata

// Overrides carries table material supplied through configuration. Entries
// replace or extend the built-in tables before the engine starts; after
// that the merged set is frozen.
type Overrides struct {
	LocationGroups    [][]string          `mapstructure:"location-groups"`
	CountryGroups     [][]string          `mapstructure:"country-groups"`
	Regions           map[string][]string `mapstructure:"regions"`
	CurrencyGroups    [][]string          `mapstructure:"currency-groups"`
	CurrencyNeighbors map[string][]string `mapstructure:"currency-neighbors"`
	RatesUSD          map[string]float64  `mapstructure:"rates-usd"`
	CategoryKeywords  map[string][]string `mapstructure:"category-keywords"`
	SemanticKeywords  map[string][]string `mapstructure:"semantic-keywords"`
	FunctionKeywords  map[string][]string `mapstructure:"function-keywords"`
	IndustryKeywords  map[string][]string `mapstructure:"industry-keywords"`
	Clusters          map[string][]string `mapstructure:"clusters"`
}

// Load returns the default tables with the overrides merged in. Group
// slices are appended; map entries replace the builtin entry of the same
// key, leaving the rest untouched.
func Load(o Overrides) *Tables {
	t := Default()

	t.LocationGroups = append(t.LocationGroups, o.LocationGroups...)
	t.CountryGroups = append(t.CountryGroups, o.CountryGroups...)
	t.CurrencyGroups = append(t.CurrencyGroups, o.CurrencyGroups...)

	mergeLists(t.Regions, o.Regions)
	mergeLists(t.CurrencyNeighbors, o.CurrencyNeighbors)
	mergeLists(t.CategoryKeywords, o.CategoryKeywords)
	mergeLists(t.SemanticKeywords, o.SemanticKeywords)
	mergeLists(t.FunctionKeywords, o.FunctionKeywords)
	mergeLists(t.IndustryKeywords, o.IndustryKeywords)
	mergeLists(t.Clusters, o.Clusters)

	for code, rate := range o.RatesUSD {
		t.RatesUSD[code] = rate
	}

	return t
}

func mergeLists(dst, src map[string][]string) {
	for key, values := range src {
		dst[key] = values
	}
}
