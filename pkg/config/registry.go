package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is the ordered mapping from arXiv category to the list of
// free-text queries monitored within it. Category names are unique
// case-insensitively, insertion order is preserved for display and for
// the on-disk representation.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	category string
	queries  []string
}

// SearchEntry is a read-only view of a single registry entry
type SearchEntry struct {
	Category string
	Queries  []string
}

// Entries returns an ordered snapshot of the registry
func (r *Registry) Entries() []SearchEntry {
	res := make([]SearchEntry, 0, len(r.entries))
	for _, e := range r.entries {
		queries := make([]string, len(e.queries))
		copy(queries, e.queries)
		res = append(res, SearchEntry{Category: e.category, Queries: queries})
	}
	return res
}

// Len returns the number of categories
func (r *Registry) Len() int { return len(r.entries) }

// Has reports whether the category is present, matched case-insensitively
func (r *Registry) Has(category string) bool {
	return r.find(category) >= 0
}

// HasQuery reports whether the query is registered under the category
func (r *Registry) HasQuery(category, query string) bool {
	i := r.find(category)
	if i < 0 {
		return false
	}
	for _, q := range r.entries[i].queries {
		if q == query {
			return true
		}
	}
	return false
}

// AddCategory creates an empty entry for the category if it is not present
// yet. Returns true if the category was created.
func (r *Registry) AddCategory(category string) bool {
	if r.find(category) >= 0 {
		return false
	}
	r.entries = append(r.entries, registryEntry{category: category})
	return true
}

// AddQuery appends the query to the category's list. Returns false if the
// query is empty or already registered. The category must exist.
func (r *Registry) AddQuery(category, query string) bool {
	i := r.find(category)
	if i < 0 || query == "" {
		return false
	}
	for _, q := range r.entries[i].queries {
		if q == query {
			return false
		}
	}
	r.entries[i].queries = append(r.entries[i].queries, query)
	return true
}

// RemoveQuery deletes the query from the category. When the last query of a
// category is removed the category itself is dropped too. Returns whether
// the query was removed and whether the category went with it.
func (r *Registry) RemoveQuery(category, query string) (removed, categoryRemoved bool) {
	i := r.find(category)
	if i < 0 {
		return false, false
	}
	for j, q := range r.entries[i].queries {
		if q != query {
			continue
		}
		r.entries[i].queries = append(r.entries[i].queries[:j], r.entries[i].queries[j+1:]...)
		if len(r.entries[i].queries) == 0 {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true, true
		}
		return true, false
	}
	return false, false
}

func (r *Registry) find(category string) int {
	for i, e := range r.entries {
		if strings.EqualFold(e.category, category) {
			return i
		}
	}
	return -1
}

// UnmarshalYAML reads the registry from a YAML mapping, keeping the order
// of categories as they appear in the file
func (r *Registry) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		r.entries = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("search section must be a mapping, got %s", node.Tag)
	}

	r.entries = nil
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var queries []string
		if err := valNode.Decode(&queries); err != nil {
			return fmt.Errorf("queries for category %q: %w", keyNode.Value, err)
		}
		if r.find(keyNode.Value) >= 0 {
			return fmt.Errorf("duplicate category %q", keyNode.Value)
		}
		seen := make(map[string]struct{}, len(queries))
		for _, q := range queries {
			if q == "" {
				return fmt.Errorf("empty query in category %q", keyNode.Value)
			}
			if _, ok := seen[q]; ok {
				return fmt.Errorf("duplicate query %q in category %q", q, keyNode.Value)
			}
			seen[q] = struct{}{}
		}
		if len(queries) == 0 {
			continue // a category with no queries is not retained
		}
		r.entries = append(r.entries, registryEntry{category: keyNode.Value, queries: queries})
	}
	return nil
}

// MarshalYAML writes the registry as a block-style mapping with block-style
// query lists, preserving category order
func (r *Registry) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Style: 0}
	for _, e := range r.entries {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: e.category}
		valNode := &yaml.Node{Kind: yaml.SequenceNode, Style: 0}
		for _, q := range e.queries {
			valNode.Content = append(valNode.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: q})
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// MarshalJSON renders the registry as a JSON object preserving category order
func (r *Registry) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:[", e.category)
		for j, q := range e.queries {
			if j > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%q", q)
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
