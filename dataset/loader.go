// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"log/slog"

	"github.com/ik5/soundbank/fetch"
)

const (
	DefaultRoot            = "miso_sound_download"
	DefaultRecordsURL      = "https://zenodo.org/api/records/7106450"
	DefaultSegmentURL      = "https://raw.githubusercontent.com/miso-sound/miso-sound-annotate/main/segmentation"
	DefaultLabelURL        = "https://raw.githubusercontent.com/miso-sound/miso-sound-annotate/main/labels"
	DefaultOriginalSuffix  = "_original"
	DefaultProcessedSuffix = "_processed"
	DefaultOriginalDir     = "original_audio"
	DefaultProcessedDir    = "processed_audio"
	DefaultLabelDir        = "labels"
)

// Config locates the dataset release and the local output tree. It is read
// only once a Loader has been built.
type Config struct {
	// Root is the local output directory.
	Root string
	// RecordsURL returns the JSON file listing of the release.
	RecordsURL string
	// SegmentURL and LabelURL are base locations holding
	// <id>_segment.txt and <id>_labels.txt.
	SegmentURL string
	LabelURL   string
	// IDs restricts the run to these recordings. Empty means all.
	IDs []string

	OriginalSuffix  string
	ProcessedSuffix string
	OriginalDir     string
	ProcessedDir    string
	LabelDir        string

	// Workers bounds how many items are processed at once. Values < 2 run
	// items one after another.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Root:            DefaultRoot,
		RecordsURL:      DefaultRecordsURL,
		SegmentURL:      DefaultSegmentURL,
		LabelURL:        DefaultLabelURL,
		OriginalSuffix:  DefaultOriginalSuffix,
		ProcessedSuffix: DefaultProcessedSuffix,
		OriginalDir:     DefaultOriginalDir,
		ProcessedDir:    DefaultProcessedDir,
		LabelDir:        DefaultLabelDir,
		Workers:         1,
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&c.Root, d.Root)
	fill(&c.RecordsURL, d.RecordsURL)
	fill(&c.SegmentURL, d.SegmentURL)
	fill(&c.LabelURL, d.LabelURL)
	fill(&c.OriginalSuffix, d.OriginalSuffix)
	fill(&c.ProcessedSuffix, d.ProcessedSuffix)
	fill(&c.OriginalDir, d.OriginalDir)
	fill(&c.ProcessedDir, d.ProcessedDir)
	fill(&c.LabelDir, d.LabelDir)
	if c.Workers < 1 {
		c.Workers = 1
	}

	return c
}

// Loader downloads and prepares a dataset release.
type Loader struct {
	cfg    Config
	client *fetch.Client
	logger *slog.Logger
}

type Option func(*Loader)

func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

func WithClient(c *fetch.Client) Option {
	return func(ld *Loader) {
		if c != nil {
			ld.client = c
		}
	}
}

func New(cfg Config, opts ...Option) *Loader {
	ld := &Loader{
		cfg:    cfg.withDefaults(),
		client: fetch.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(ld)
	}

	return ld
}

// Config returns the effective configuration.
func (l *Loader) Config() Config { return l.cfg }
