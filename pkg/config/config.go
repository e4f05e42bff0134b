package config

import (
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config is the persisted bot configuration. Field order matches the
// on-disk layout, the file is rewritten as a whole on every change.
type Config struct {
	Hotword       string    `yaml:"hotword" json:"hotword" jsonschema:"required,minLength=3,maxLength=15,description=Leading token marking a message as a bot command"`
	SortBy        string    `yaml:"sort_by" json:"sort_by" jsonschema:"default=relevance,enum=relevance,enum=lastUpdatedDate,enum=submittedDate,description=Sort criterion for arXiv queries"`
	SummaryLength int       `yaml:"summary_length" json:"summary_length" jsonschema:"default=1024,minimum=0,maximum=2048,description=Maximum length of the displayed abstract"`
	NQuery        int       `yaml:"n_query" json:"n_query" jsonschema:"default=3,minimum=1,maximum=999,description=Maximum results fetched per query per cycle"`
	MessageColor  *int      `yaml:"message_color" json:"message_color" jsonschema:"description=Fixed embed color; derived per paper when null"`
	QueryInterval int       `yaml:"query_interval" json:"query_interval" jsonschema:"default=3600,minimum=30,maximum=5999999,description=Poll interval in seconds"`
	PaperChannel  string    `yaml:"paper_channel" json:"paper_channel" jsonschema:"required,description=Channel new papers are announced to"`
	Search        *Registry `yaml:"search" json:"search" jsonschema:"description=Monitored category to queries mapping"`
	KnownPapers   paperList `yaml:"known_papers" json:"known_papers" jsonschema:"description=Identifiers of papers already announced"`
	Key           string    `yaml:"key,omitempty" json:"-"`
}

// paperList is the known-paper registry; written as a single inline
// bracketed list to keep the config file readable as it grows
type paperList []string

// MarshalYAML renders the list in flow style
func (p paperList) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range p {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: id})
	}
	return node, nil
}
