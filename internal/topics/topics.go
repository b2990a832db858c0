// Package topics provides the word lists a letterfall round is played
// against. Each topic holds exactly five words; the engine does not decide
// which topic to use, it only consumes the words this package supplies.
// This package depends on nothing in the engine.
package topics

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/letterfall/letterfall/internal/engine"
)

//go:embed defaults/topics.yaml
var defaultTopicsYAML []byte

// Topic is one playable word list.
type Topic struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// catalogFile is the YAML shape of a topics file.
type catalogFile struct {
	Topics []Topic `yaml:"topics"`
}

// Validate checks that the topic is playable: a non-empty ID and exactly
// five non-empty lowercase words.
func (t Topic) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("topics: topic has no id")
	}
	if len(t.Words) != engine.WordsPerRound {
		return fmt.Errorf("topics: topic %q has %d words, need exactly %d", t.ID, len(t.Words), engine.WordsPerRound)
	}
	for i, w := range t.Words {
		if w == "" {
			return fmt.Errorf("topics: topic %q word %d is empty", t.ID, i)
		}
		if w != strings.ToLower(w) {
			return fmt.Errorf("topics: topic %q word %q must be lowercase", t.ID, w)
		}
	}
	return nil
}

// Catalog is a set of validated topics keyed by ID.
type Catalog struct {
	byID  map[string]Topic
	order []string
}

// Parse reads a topics YAML document into a catalog, validating every topic.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("topics: cannot parse topics file: %w", err)
	}
	if len(file.Topics) == 0 {
		return nil, fmt.Errorf("topics: no topics defined")
	}

	c := &Catalog{byID: make(map[string]Topic, len(file.Topics))}
	for _, t := range file.Topics {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("topics: duplicate topic id %q", t.ID)
		}
		c.byID[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	return c, nil
}

// Default returns the embedded topic catalog.
func Default() *Catalog {
	c, err := Parse(defaultTopicsYAML)
	if err != nil {
		// The embedded catalog is validated by tests; failing here means
		// a broken build, not a runtime condition.
		panic(err)
	}
	return c
}

// Get returns a topic by ID.
func (c *Catalog) Get(id string) (Topic, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// All returns the topics in file order.
func (c *Catalog) All() []Topic {
	out := make([]Topic, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IDs returns all topic IDs, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge adds all topics from other, overriding same-ID topics in c.
// User-supplied topic files shadow the embedded defaults this way.
func (c *Catalog) Merge(other *Catalog) {
	for _, id := range other.order {
		if _, exists := c.byID[id]; !exists {
			c.order = append(c.order, id)
		}
		c.byID[id] = other.byID[id]
	}
}
