// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperforge/pkg/types"
)

// BundleFile is the on-disk representation of a research pass. Saving one
// lets a later run reuse the collected material without re-querying the
// search API.
type BundleFile struct {
	Topic     string       `yaml:"topic"`
	Collected time.Time    `yaml:"collected"`
	Degraded  bool         `yaml:"degraded,omitempty"`
	Note      string       `yaml:"note,omitempty"`
	Items     []BundleItem `yaml:"items,omitempty"`
}

// BundleItem stores one research item in serializable form.
type BundleItem struct {
	Title   string `yaml:"title"`
	Excerpt string `yaml:"excerpt"`
	URL     string `yaml:"url"`
}

// WriteBundleFile saves a research bundle to a YAML file.
func WriteBundleFile(path, topic string, bundle types.ResearchBundle) error {
	bf := BundleFile{
		Topic:     topic,
		Collected: time.Now(),
		Degraded:  bundle.Degraded,
		Note:      bundle.Note,
	}
	for _, item := range bundle.Items {
		bf.Items = append(bf.Items, BundleItem{
			Title:   item.Title,
			Excerpt: item.Excerpt,
			URL:     item.URL,
		})
	}

	data, err := yaml.Marshal(&bf)
	if err != nil {
		return fmt.Errorf("marshaling bundle file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadBundleFile loads a previously saved research pass from disk.
func ReadBundleFile(path string) (*BundleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle file: %w", err)
	}
	var bf BundleFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing bundle file: %w", err)
	}
	return &bf, nil
}

// ToBundle rebuilds the in-memory bundle, including its digest text, from
// the stored items.
func (bf *BundleFile) ToBundle() types.ResearchBundle {
	if bf.Degraded {
		note := bf.Note
		if note == "" {
			note = "unknown research failure"
		}
		return DegradedBundle(bf.Topic, errors.New(note))
	}
	items := make([]types.ResearchItem, 0, len(bf.Items))
	for _, item := range bf.Items {
		items = append(items, types.ResearchItem{
			Title:   item.Title,
			Excerpt: item.Excerpt,
			URL:     item.URL,
		})
	}
	return BuildBundle(bf.Topic, items)
}
