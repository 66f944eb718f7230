package table

// Mode names the rendering path in use.
type Mode int

const (
	// Plain materializes every loaded row.
	Plain Mode = iota
	// Virtual materializes only the rows near the viewport.
	Virtual
)

const (
	defaultOverscan  = 5
	defaultThreshold = 200
	defaultLoadSize  = 50
)

// Config tunes a table panel. The zero value gets sensible defaults; only
// Width-like fields are required from the layout.
type Config struct {
	// ItemHeight is the height of one row in scroll units.
	ItemHeight int `yaml:"item_height,omitempty"`
	// EstimatedItemHeight seeds measured-height models before any
	// measurement lands.
	EstimatedItemHeight int `yaml:"estimated_item_height,omitempty"`
	// Overscan is the number of rows materialized beyond each edge of the
	// viewport.
	Overscan int `yaml:"overscan,omitempty"`
	// Threshold is the row count at which rendering switches from the
	// plain to the virtual path.
	Threshold int `yaml:"threshold,omitempty"`
	// MaxHeight caps the container height in scroll units; zero means
	// uncapped.
	MaxHeight int `yaml:"max_height,omitempty"`
	// ForceVirtual pins the virtual path regardless of row count.
	ForceVirtual bool `yaml:"force_virtual,omitempty"`

	// InfiniteLoading asks for more records when scrolling nears the end.
	InfiniteLoading bool `yaml:"infinite_loading,omitempty"`
	// LoadThreshold is the remaining scrollable height below which a load
	// is requested.
	LoadThreshold int `yaml:"load_threshold,omitempty"`
	// LoadSize is the number of records requested per load.
	LoadSize int `yaml:"load_size,omitempty"`
	// LoadingMore marks a load already in flight at construction time.
	LoadingMore bool `yaml:"-"`
}

func (cfg Config) withDefaults() Config {
	if cfg.ItemHeight < 1 {
		cfg.ItemHeight = 1
	}
	if cfg.EstimatedItemHeight < 1 {
		cfg.EstimatedItemHeight = cfg.ItemHeight
	}
	if cfg.Overscan < 0 {
		cfg.Overscan = defaultOverscan
	}
	if cfg.Threshold < 1 {
		cfg.Threshold = defaultThreshold
	}
	if cfg.LoadThreshold < 1 {
		cfg.LoadThreshold = 2 * cfg.ItemHeight
	}
	if cfg.LoadSize < 1 {
		cfg.LoadSize = defaultLoadSize
	}
	return cfg
}

// Mode picks the rendering path for a row count. Windowing carries fixed
// overhead not worth paying under the threshold; both paths produce the
// same cells for the same data.
func (cfg Config) Mode(rowCount int) Mode {
	if cfg.ForceVirtual || rowCount >= cfg.Threshold {
		return Virtual
	}
	return Plain
}
