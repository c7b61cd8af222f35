package main

import (
	"math/big"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/chronos-tachyon/huffman/v2"
)

// config matches the YAML config file structure.  Letter probabilities are
// written as exact fractions ("2/3") or decimals ("0.25").
type config struct {
	Letters   map[string]string `yaml:"letters"`
	MinLength int               `yaml:"min_length"`
	MaxLength int               `yaml:"max_length"`
	Width     int               `yaml:"width"`
	Tolerance float64           `yaml:"tolerance"`
}

func defaultConfig() config {
	return config{
		Letters: map[string]string{
			"a": "2/3",
			"b": "1/3",
		},
		MinLength: 12,
		MaxLength: 14,
		Width:     80,
		Tolerance: huffman.DefaultTolerance,
	}
}

// loadConfig reads path over the defaults.  Keys absent from the file keep
// their default values, and keys present replace them even when zero.  An
// empty path returns the defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	// yaml.v2 merges into a non-nil map, so a letters key in the file must
	// replace the default alphabet rather than extend it.
	letters := cfg.Letters
	cfg.Letters = nil
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return defaultConfig(), errors.Wrapf(err, "parse config %s", path)
	}
	if len(cfg.Letters) == 0 {
		cfg.Letters = letters
	}
	return cfg, nil
}

func (cfg config) validate() error {
	if cfg.MinLength < 1 {
		return errors.Errorf("min_length must be at least 1, got %d", cfg.MinLength)
	}
	if cfg.MaxLength < cfg.MinLength {
		return errors.Errorf("max_length %d is less than min_length %d", cfg.MaxLength, cfg.MinLength)
	}
	if cfg.Width < 2 {
		return errors.Errorf("width must be at least 2, got %d", cfg.Width)
	}
	if cfg.Tolerance < 0 {
		return errors.Errorf("tolerance must be non-negative, got %g", cfg.Tolerance)
	}
	_, err := cfg.letterDistribution()
	return err
}

// letterDistribution parses the letter probabilities, sorted by letter.  The
// probabilities must sum to exactly 1.
func (cfg config) letterDistribution() (huffman.Distribution[string], error) {
	if len(cfg.Letters) == 0 {
		return nil, errors.Wrap(huffman.ErrInvalidDistribution, "no letters configured")
	}

	letters := make([]string, 0, len(cfg.Letters))
	for letter := range cfg.Letters {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	sum := new(big.Rat)
	dist := make(huffman.Distribution[string], 0, len(letters))
	for _, letter := range letters {
		p, ok := new(big.Rat).SetString(cfg.Letters[letter])
		if !ok {
			return nil, errors.Errorf("letter %q: cannot parse probability %q", letter, cfg.Letters[letter])
		}
		if p.Sign() < 0 {
			return nil, errors.Wrapf(huffman.ErrInvalidDistribution, "letter %q has negative probability %s", letter, p.RatString())
		}
		sum.Add(sum, p)
		f, _ := p.Float64()
		dist = append(dist, huffman.WeightedSymbol[string]{Weight: f, Symbol: letter})
	}
	if sum.Cmp(big.NewRat(1, 1)) != 0 {
		return nil, errors.Wrapf(huffman.ErrInvalidDistribution, "letter probabilities sum to %s", sum.RatString())
	}
	return dist, nil
}
