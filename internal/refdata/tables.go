// Package refdata holds the static reference tables consumed by the scoring
// components: location equivalence groups, regional partitions, currency
// groups and conversion rates, and the keyword tables behind category,
// semantic and cluster matching. Tables are built once at startup and shared
// by read-only reference across concurrent scoring calls; nothing in this
// package mutates them afterwards.
package refdata

import "strings"

// Tables is the immutable reference-data set used by one engine instance.
type Tables struct {
	// LocationGroups are equivalence classes of city/state/alternate
	// names. Any two members of a group are the same place for gating.
	LocationGroups [][]string
	// CountryGroups are equivalence classes of country names.
	CountryGroups [][]string
	// Regions partition cities and states into disjoint areas. A
	// same-region pair may gate as compatible; cross-region never does.
	Regions map[string][]string

	// CurrencyGroups are equivalence classes of currency spellings
	// ("USD", "Dollar", "$"). The first member is the canonical code.
	CurrencyGroups [][]string
	// CurrencyNeighbors lists related-but-different currency pairs.
	CurrencyNeighbors map[string][]string
	// RatesUSD maps a canonical currency code to its value in US
	// dollars, used to convert job amounts into the user's currency.
	RatesUSD map[string]float64

	// CategoryKeywords maps coarse user categories to title keywords.
	CategoryKeywords map[string][]string
	// SemanticKeywords expands a single domain keyword into the wider
	// family it implies ("python" covers django and flask titles).
	SemanticKeywords map[string][]string
	// FunctionKeywords maps a job function to the role keywords that
	// signal it.
	FunctionKeywords map[string][]string
	// IndustryKeywords maps a role keyword to the industries it implies.
	IndustryKeywords map[string][]string
	// Clusters group role families into keyword sets used by the
	// cluster scorer.
	Clusters map[string][]string
}

// levelOrder is the seniority ladder, lowest rank first.
var levelOrder = []string{"entry", "junior", "mid", "senior", "lead", "principal", "executive"}

// levelAliases is checked in order so ambiguous titles resolve the same
// way on every call.
var levelAliases = []struct {
	alias string
	rank  int
}{
	{"intern", 0}, {"internship", 0}, {"graduate", 0}, {"trainee", 0},
	{"associate", 1}, {"jr", 1},
	{"middle", 2}, {"intermediate", 2},
	{"sr", 3},
	{"staff", 4}, {"manager", 4},
	{"head", 5},
	{"director", 6}, {"vp", 6}, {"chief", 6}, {"cto", 6}, {"ceo", 6},
}

// LevelRank resolves a free-form level string to its rank on the seniority
// ladder. The second result is false when no known level is recognized.
func LevelRank(level string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "" {
		return 0, false
	}
	for rank, name := range levelOrder {
		if strings.Contains(normalized, name) {
			return rank, true
		}
	}
	for _, entry := range levelAliases {
		if strings.Contains(normalized, entry.alias) {
			return entry.rank, true
		}
	}
	return 0, false
}

// MaxLevelRank is the distance between the ladder's ends.
func MaxLevelRank() int { return len(levelOrder) - 1 }

// Default returns the built-in reference tables.
func Default() *Tables {
	return &Tables{
		LocationGroups: [][]string{
			{"san francisco", "sf", "bay area", "silicon valley", "california", "ca"},
			{"new york", "nyc", "new york city", "ny", "manhattan", "brooklyn"},
			{"los angeles", "la", "socal"},
			{"washington", "dc", "washington dc", "district of columbia"},
			{"london", "greater london", "ldn"},
			{"lagos", "ikeja", "lekki", "victoria island", "yaba", "surulere"},
			{"abuja", "fct", "federal capital territory"},
			{"nairobi", "westlands", "kilimani"},
			{"bangalore", "bengaluru", "blr", "karnataka"},
			{"mumbai", "bombay", "maharashtra"},
			{"delhi", "new delhi", "ncr", "gurgaon", "gurugram", "noida"},
			{"amsterdam", "noord-holland", "north holland"},
			{"berlin", "brandenburg"},
			{"toronto", "gta", "ontario"},
			{"singapore", "sg"},
			{"dubai", "dxb"},
			{"cape town", "western cape"},
			{"johannesburg", "joburg", "jozi", "gauteng"},
			{"accra", "greater accra"},
			{"cairo", "giza"},
			{"moscow", "msk"},
			{"saint petersburg", "st petersburg", "spb"},
		},
		CountryGroups: [][]string{
			{"united states", "usa", "us", "america", "united states of america"},
			{"united kingdom", "uk", "britain", "great britain", "england"},
			{"united arab emirates", "uae", "emirates"},
			{"nigeria", "ng"},
			{"kenya", "ke"},
			{"ghana", "gh"},
			{"south africa", "za", "rsa"},
			{"india", "in", "bharat"},
			{"germany", "de", "deutschland"},
			{"netherlands", "nl", "holland"},
			{"canada", "ca"},
			{"russia", "russian federation", "ru"},
			{"egypt", "eg"},
		},
		Regions: map[string][]string{
			"bay-area":          {"san francisco", "oakland", "san jose", "palo alto", "mountain view", "berkeley", "menlo park"},
			"ny-metro":          {"new york", "jersey city", "newark", "hoboken", "stamford"},
			"southwest-nigeria": {"lagos", "ibadan", "abeokuta", "ota"},
			"central-nigeria":   {"abuja", "kaduna", "jos"},
			"east-africa":       {"nairobi", "mombasa", "kampala", "kigali", "dar es salaam"},
			"south-india":       {"bangalore", "chennai", "hyderabad", "kochi"},
			"north-india":       {"delhi", "gurgaon", "noida", "jaipur", "chandigarh"},
			"benelux":           {"amsterdam", "rotterdam", "utrecht", "antwerp", "brussels", "eindhoven"},
			"uk-south":          {"london", "reading", "cambridge", "oxford", "brighton"},
			"gauteng":           {"johannesburg", "pretoria", "sandton", "centurion"},
		},
		CurrencyGroups: [][]string{
			{"usd", "dollar", "dollars", "us dollar", "$"},
			{"eur", "euro", "euros", "€"},
			{"gbp", "pound", "pounds", "sterling", "£"},
			{"ngn", "naira", "₦"},
			{"kes", "ksh", "kenyan shilling", "shilling"},
			{"ghs", "cedi", "cedis"},
			{"zar", "rand"},
			{"inr", "rupee", "rupees", "₹"},
			{"cad", "canadian dollar", "c$"},
			{"aed", "dirham"},
			{"rub", "ruble", "rouble", "₽"},
		},
		CurrencyNeighbors: map[string][]string{
			"usd": {"cad"},
			"cad": {"usd"},
			"eur": {"gbp"},
			"gbp": {"eur"},
			"kes": {"ngn", "ghs"},
			"ngn": {"kes", "ghs"},
			"ghs": {"ngn", "kes"},
			"inr": {"aed"},
			"aed": {"inr"},
		},
		RatesUSD: map[string]float64{
			"usd": 1.0,
			"eur": 1.08,
			"gbp": 1.27,
			"ngn": 0.00065,
			"kes": 0.0077,
			"ghs": 0.065,
			"zar": 0.055,
			"inr": 0.012,
			"cad": 0.73,
			"aed": 0.27,
			"rub": 0.011,
		},
		CategoryKeywords: map[string][]string{
			"software engineering": {"software", "developer", "engineer", "backend", "frontend", "full stack", "fullstack", "programmer"},
			"data science":         {"data scientist", "data analyst", "machine learning", "analytics", "data engineer"},
			"product management":   {"product manager", "product owner", "product lead"},
			"design":               {"designer", "ux", "ui", "product design", "graphic"},
			"marketing":            {"marketing", "growth", "seo", "content", "brand"},
			"sales":                {"sales", "account executive", "business development", "account manager"},
			"finance":              {"accountant", "finance", "financial analyst", "auditor", "treasury"},
			"human resources":      {"recruiter", "talent", "human resources", "people operations"},
			"customer support":     {"customer support", "customer success", "support specialist", "helpdesk"},
			"operations":           {"operations", "logistics", "supply chain", "project manager"},
			"devops":               {"devops", "sre", "site reliability", "platform engineer", "infrastructure"},
			"security":             {"security", "penetration", "infosec", "cybersecurity"},
		},
		SemanticKeywords: map[string][]string{
			"python":     {"python", "django", "flask", "fastapi"},
			"javascript": {"javascript", "node", "react", "vue", "angular", "typescript"},
			"golang":     {"golang", "go developer", "go engineer"},
			"java":       {"java", "spring", "kotlin"},
			"mobile":     {"mobile", "android", "ios", "flutter", "react native"},
			"data":       {"data", "sql", "etl", "warehouse", "analytics"},
			"cloud":      {"cloud", "aws", "azure", "gcp", "kubernetes", "docker"},
			"design":     {"design", "figma", "ux", "ui"},
			"marketing":  {"marketing", "seo", "sem", "campaign", "growth"},
		},
		FunctionKeywords: map[string][]string{
			"engineering":       {"engineer", "developer", "programmer", "architect", "devops", "sre"},
			"data":              {"data scientist", "analyst", "data engineer", "machine learning"},
			"product":           {"product manager", "product owner"},
			"design":            {"designer", "ux", "ui"},
			"marketing":         {"marketing", "growth", "content", "seo"},
			"sales":             {"sales", "account", "business development"},
			"finance":           {"accountant", "finance", "audit"},
			"human resources":   {"recruiter", "talent", "people"},
			"customer support":  {"support", "success", "helpdesk"},
			"operations":        {"operations", "logistics", "supply"},
		},
		IndustryKeywords: map[string][]string{
			"developer":  {"technology", "software", "information technology"},
			"engineer":   {"technology", "software", "engineering"},
			"data":       {"technology", "analytics", "consulting"},
			"designer":   {"technology", "media", "advertising"},
			"marketing":  {"advertising", "media", "e-commerce"},
			"sales":      {"retail", "e-commerce", "consulting"},
			"accountant": {"finance", "banking", "accounting"},
			"finance":    {"finance", "banking", "fintech"},
			"nurse":      {"healthcare", "hospital"},
			"teacher":    {"education", "edtech"},
			"recruiter":  {"human resources", "consulting"},
		},
		Clusters: map[string][]string{
			"software_development": {"software", "developer", "engineer", "backend", "frontend", "full stack", "fullstack", "programmer", "web"},
			"data_science":         {"data", "scientist", "analyst", "machine learning", "analytics", "statistics"},
			"devops_cloud":         {"devops", "sre", "cloud", "infrastructure", "platform", "kubernetes"},
			"product":              {"product", "owner", "roadmap"},
			"design":               {"design", "designer", "ux", "ui", "creative"},
			"marketing":            {"marketing", "growth", "seo", "content", "brand", "social media"},
			"sales":                {"sales", "account", "business development", "partnerships"},
			"finance":              {"finance", "accounting", "accountant", "audit", "treasury"},
			"people":               {"recruiter", "talent", "human resources", "people"},
			"support":              {"support", "success", "helpdesk", "service"},
			"healthcare":           {"nurse", "doctor", "clinical", "medical", "health"},
			"education":            {"teacher", "tutor", "curriculum", "instructor"},
		},
	}
}

// SameLocationGroup reports whether the two terms belong to one location or
// country equivalence group.
func (t *Tables) SameLocationGroup(a, b string) bool {
	return inSameGroup(t.LocationGroups, a, b) || inSameGroup(t.CountryGroups, a, b)
}

// SameRegion reports whether both terms fall inside the same region. Terms
// from different regions, or terms unknown to the partition, never match.
func (t *Tables) SameRegion(a, b string) bool {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	for _, members := range t.Regions {
		var foundA, foundB bool
		for _, m := range members {
			if termMatches(a, m) {
				foundA = true
			}
			if termMatches(b, m) {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// CanonicalCurrency resolves any known spelling to its canonical code. An
// unknown spelling is returned lowercased as-is.
func (t *Tables) CanonicalCurrency(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return ""
	}
	for _, group := range t.CurrencyGroups {
		for _, member := range group {
			if member == c {
				return group[0]
			}
		}
	}
	return c
}

// RelatedCurrencies reports whether the two canonical codes are listed as
// neighbors in the adjacency table.
func (t *Tables) RelatedCurrencies(a, b string) bool {
	for _, n := range t.CurrencyNeighbors[a] {
		if n == b {
			return true
		}
	}
	return false
}

// ConversionRate returns the factor converting an amount in `from` into
// `to`, going through the USD column. False when either side has no rate.
func (t *Tables) ConversionRate(from, to string) (float64, bool) {
	fromUSD, okFrom := t.RatesUSD[from]
	toUSD, okTo := t.RatesUSD[to]
	if !okFrom || !okTo || toUSD == 0 {
		return 0, false
	}
	return fromUSD / toUSD, true
}

func inSameGroup(groups [][]string, a, b string) bool {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	for _, group := range groups {
		var foundA, foundB bool
		for _, member := range group {
			if termMatches(a, member) {
				foundA = true
			}
			if termMatches(b, member) {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// termMatches compares a term against a table member. Members of up to
// three characters are abbreviations and must match exactly; longer members
// may appear as substrings of the term.
func termMatches(term, member string) bool {
	if member == term {
		return true
	}
	if len(member) <= 3 {
		return false
	}
	return strings.Contains(term, member)
}
