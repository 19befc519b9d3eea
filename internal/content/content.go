// Package content holds the copy of the landing page. It is compiled into the
// binary from landing.yaml.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	FeatureCount    = 3
	ComparisonCount = 2
)

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Comparison struct {
	Title       string   `yaml:"title"`
	Points      []string `yaml:"points"`
	Highlighted bool     `yaml:"highlighted"`
}

type Page struct {
	Hero              Hero         `yaml:"hero"`
	FeaturesHeading   string       `yaml:"features_heading"`
	Features          []Feature    `yaml:"features"`
	ComparisonHeading string       `yaml:"comparison_heading"`
	Comparisons       []Comparison `yaml:"comparisons"`
	Disclaimer        string       `yaml:"disclaimer"`
}

//go:embed landing.yaml
var landingYAML []byte

// Parse decodes a page document, rejecting unknown keys and a wrong number of
// features or comparisons.
func Parse(data []byte) (*Page, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var p Page
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding page content: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Page) validate() error {
	var errs []error
	if len(p.Features) != FeatureCount {
		errs = append(errs, fmt.Errorf("want %d features, got %d", FeatureCount, len(p.Features)))
	}
	if len(p.Comparisons) != ComparisonCount {
		errs = append(errs, fmt.Errorf("want %d comparisons, got %d", ComparisonCount, len(p.Comparisons)))
	}
	return errors.Join(errs...)
}

var landing = sync.OnceValues(func() (*Page, error) {
	return Parse(landingYAML)
})

// Landing returns the embedded landing page copy.
func Landing() (*Page, error) {
	return landing()
}
