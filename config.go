package classif

type config struct {

	// noData is the designated "not applicable" sentinel. Values equal to
	// it are removed during sample preparation. Only meaningful when
	// hasNoData is set.
	noData    float64
	hasNoData bool

	// nanIsNoData treats NaN as the sentinel instead of rejecting it.
	nanIsNoData bool

	// headTailThreshold bounds the head/tail recursion: the recursion
	// continues only while the above-mean subset is at most this fraction
	// of the current subset.
	headTailThreshold float64
}

// Option configures a classification run.
type Option interface {
	apply(*config)
}

// NoData designates v as the "not applicable" sentinel; occurrences of v
// are dropped before classification.
func NoData(v float64) Option {
	return noDataOption(v)
}

// NaNIsNoData drops NaN values during preparation instead of failing with
// ErrNonFinite.
func NaNIsNoData() Option {
	return nanIsNoDataOption{}
}

// HeadTailThreshold sets the convergence threshold for HeadTailBreaks and
// TailHeadBreaks. The default value is 0.40.
func HeadTailThreshold(t float64) Option {
	return headTailThresholdOption(t)
}

type noDataOption float64

func (o noDataOption) apply(cfg *config) {
	cfg.noData = float64(o)
	cfg.hasNoData = true
}

type nanIsNoDataOption struct{}

func (o nanIsNoDataOption) apply(cfg *config) { cfg.nanIsNoData = true }

type headTailThresholdOption float64

func (o headTailThresholdOption) apply(cfg *config) { cfg.headTailThreshold = float64(o) }

var defaultConfig = config{
	headTailThreshold: 0.40,
}

type optionList []Option

func (l optionList) apply(cfg *config) {
	for _, o := range l {
		o.apply(cfg)
	}
}

func makeConfig(options []Option) config {
	cfg := defaultConfig
	optionList(options).apply(&cfg)
	return cfg
}
