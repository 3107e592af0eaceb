package match

// Config carries every tunable of the engine: per-component point
// allotments, per-tier point values, fuzzy thresholds, salary tolerances and
// the rescale factors of the secondary scorers. Defaults() mirrors the
// values the engine shipped with; any field can be overridden from the
// configuration file without code changes.
type Config struct {
	Title       TitleConfig       `mapstructure:"title"`
	Arrangement ArrangementConfig `mapstructure:"arrangement"`
	Salary      SalaryConfig      `mapstructure:"salary"`
	Experience  ExperienceConfig  `mapstructure:"experience"`
	Secondary   SecondaryConfig   `mapstructure:"secondary"`

	// MinScore is the default result threshold applied when the caller
	// does not supply one.
	MinScore float64 `mapstructure:"min-score"`
	// MaxReasons caps the explanation strings per result.
	MaxReasons int `mapstructure:"max-reasons"`
	// Workers bounds the scoring pool; zero means one worker per CPU.
	Workers int `mapstructure:"workers"`
}

// TitleConfig holds the title cascade: the points of each tier and the
// similarity thresholds separating the fuzzy tiers.
type TitleConfig struct {
	ExactScore     float64 `mapstructure:"exact-score"`
	FuzzyHighScore float64 `mapstructure:"fuzzy-high-score"`
	FuzzyMidScore  float64 `mapstructure:"fuzzy-mid-score"`
	CategoryScore  float64 `mapstructure:"category-score"`
	RawTitleScore  float64 `mapstructure:"raw-title-score"`
	SemanticScore  float64 `mapstructure:"semantic-score"`

	FuzzyHigh float64 `mapstructure:"fuzzy-high"`
	FuzzyMid  float64 `mapstructure:"fuzzy-mid"`
	FuzzyLow  float64 `mapstructure:"fuzzy-low"`
}

// ArrangementConfig holds the work-arrangement tier points.
type ArrangementConfig struct {
	PerfectScore       float64 `mapstructure:"perfect-score"`
	ExplicitBase       float64 `mapstructure:"explicit-base"`
	RemoteSignalBase   float64 `mapstructure:"remote-signal-base"`
	DefaultBase        float64 `mapstructure:"default-base"`
	LegacyRemoteScore  float64 `mapstructure:"legacy-remote-score"`
	StrongPhraseScore  float64 `mapstructure:"strong-phrase-score"`
	WeakPhraseScore    float64 `mapstructure:"weak-phrase-score"`
	OnSitePhraseScore  float64 `mapstructure:"on-site-phrase-score"`
	OnSiteDefaultScore float64 `mapstructure:"on-site-default-score"`
}

// SalaryConfig holds the salary subscores and the negotiability tolerance.
type SalaryConfig struct {
	Cap                  float64 `mapstructure:"cap"`
	NoDataScore          float64 `mapstructure:"no-data-score"`
	CurrencyMatchScore   float64 `mapstructure:"currency-match-score"`
	CurrencyRelatedScore float64 `mapstructure:"currency-related-score"`
	OverlapScore         float64 `mapstructure:"overlap-score"`
	SidedScore           float64 `mapstructure:"sided-score"`
	NegotiableTolerance  float64 `mapstructure:"negotiable-tolerance"`
}

// ExperienceConfig holds the level- and years-based experience points.
type ExperienceConfig struct {
	SameLevelScore      float64 `mapstructure:"same-level-score"`
	AdjacentLevelScore  float64 `mapstructure:"adjacent-level-score"`
	TwoApartScore       float64 `mapstructure:"two-apart-score"`
	OverqualifiedScore  float64 `mapstructure:"overqualified-score"`
	UnderqualifiedScore float64 `mapstructure:"underqualified-score"`

	WithinYearsScore  float64 `mapstructure:"within-years-score"`
	OverSlightScore   float64 `mapstructure:"over-slight-score"`
	OverModerateScore float64 `mapstructure:"over-moderate-score"`
	OverLargeScore    float64 `mapstructure:"over-large-score"`
	NearMinScore      float64 `mapstructure:"near-min-score"`
	NearMinRatio      float64 `mapstructure:"near-min-ratio"`
}

// SecondaryConfig holds the internal scales of the function, industry and
// cluster scorers and the factors rescaling them into their allotments. The
// factors have no stated derivation in the original weights; they are kept
// as plain configuration.
type SecondaryConfig struct {
	FunctionDirectScore   float64 `mapstructure:"function-direct-score"`
	FunctionKeywordScore  float64 `mapstructure:"function-keyword-score"`
	FunctionScale         float64 `mapstructure:"function-scale"`
	IndustryDirectScore   float64 `mapstructure:"industry-direct-score"`
	IndustryInferredScore float64 `mapstructure:"industry-inferred-score"`
	IndustryScale         float64 `mapstructure:"industry-scale"`
	ClusterTitleScore     float64 `mapstructure:"cluster-title-score"`
	ClusterBodyScore      float64 `mapstructure:"cluster-body-score"`
	ClusterScale          float64 `mapstructure:"cluster-scale"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Title: TitleConfig{
			ExactScore:     35,
			FuzzyHighScore: 30,
			FuzzyMidScore:  25,
			CategoryScore:  20,
			RawTitleScore:  15,
			SemanticScore:  10,
			FuzzyHigh:      0.85,
			FuzzyMid:       0.70,
			FuzzyLow:       0.60,
		},
		Arrangement: ArrangementConfig{
			PerfectScore:       20,
			ExplicitBase:       18,
			RemoteSignalBase:   16,
			DefaultBase:        14,
			LegacyRemoteScore:  18,
			StrongPhraseScore:  17,
			WeakPhraseScore:    14,
			OnSitePhraseScore:  17,
			OnSiteDefaultScore: 14,
		},
		Salary: SalaryConfig{
			Cap:                  20,
			NoDataScore:          8,
			CurrencyMatchScore:   4,
			CurrencyRelatedScore: 2,
			OverlapScore:         6,
			SidedScore:           6,
			NegotiableTolerance:  0.20,
		},
		Experience: ExperienceConfig{
			SameLevelScore:      10,
			AdjacentLevelScore:  8,
			TwoApartScore:       5,
			OverqualifiedScore:  3,
			UnderqualifiedScore: 2,
			WithinYearsScore:    10,
			OverSlightScore:     8,
			OverModerateScore:   6,
			OverLargeScore:      4,
			NearMinScore:        5,
			NearMinRatio:        0.8,
		},
		Secondary: SecondaryConfig{
			FunctionDirectScore:   25,
			FunctionKeywordScore:  15,
			FunctionScale:         0.28,
			IndustryDirectScore:   20,
			IndustryInferredScore: 10,
			IndustryScale:         0.25,
			ClusterTitleScore:     25,
			ClusterBodyScore:      12,
			ClusterScale:          0.20,
		},
		MinScore:   50,
		MaxReasons: 3,
	}
}
