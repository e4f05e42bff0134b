package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Store owns the persisted configuration: it loads it once at startup,
// serves reads and applies mutations in memory, and rewrites the whole file
// after every change. A single mutex serializes validate-mutate-persist
// sequences so the command path and the poll loop cannot interleave a read
// with each other's write.
type Store struct {
	path string

	mu    sync.Mutex
	cfg   Config
	known map[string]struct{}
}

// mutation errors reported back to the invoking channel, never fatal
var (
	ErrUnknownKey   = errors.New("unknown or hidden key")
	ErrInvalidValue = errors.New("invalid value")
)

// sortOptions are the accepted sort_by values in canonical casing
var sortOptions = []string{"relevance", "lastUpdatedDate", "submittedDate"}

// hidden keys are never displayed and never settable via commands
var hiddenKeys = map[string]struct{}{
	"search":       {},
	"key":          {},
	"known_papers": {},
}

// Load reads the configuration file and returns a store bound to it.
// A missing or malformed file is a startup failure.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// defaults are pre-set and only overridden by keys present in the
	// file, so an explicit summary_length: 0 is kept as zero
	cfg := Config{
		SortBy:        "relevance",
		SummaryLength: 1024,
		NQuery:        3,
		QueryInterval: 3600,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Search == nil {
		cfg.Search = &Registry{}
	}
	if cfg.KnownPapers == nil {
		cfg.KnownPapers = paperList{}
	}

	// normalize before validation, the file is hand-editable
	cfg.Hotword = strings.ToLower(cfg.Hotword)
	canonical, ok := canonicalSort(cfg.SortBy)
	if !ok {
		return nil, fmt.Errorf("config sort_by %q: %w", cfg.SortBy, ErrInvalidValue)
	}
	cfg.SortBy = canonical

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	s := &Store{path: path, cfg: cfg, known: make(map[string]struct{}, len(cfg.KnownPapers))}
	for _, id := range cfg.KnownPapers {
		s.known[id] = struct{}{}
	}
	return s, nil
}

// validate checks the loaded configuration invariants
func validate(cfg *Config) error {
	if l := len(cfg.Hotword); l < 3 || l > 15 {
		return fmt.Errorf("hotword length must be 3-15, got %d", l)
	}
	if cfg.SummaryLength < 0 || cfg.SummaryLength > 2048 {
		return fmt.Errorf("summary_length must be 0-2048, got %d", cfg.SummaryLength)
	}
	if cfg.NQuery < 1 || cfg.NQuery > 999 {
		return fmt.Errorf("n_query must be 1-999, got %d", cfg.NQuery)
	}
	if cfg.MessageColor != nil && *cfg.MessageColor <= 0 {
		return fmt.Errorf("message_color must be positive, got %d", *cfg.MessageColor)
	}
	if cfg.QueryInterval < 30 || cfg.QueryInterval > 5999999 {
		return fmt.Errorf("query_interval must be 30-5999999, got %d", cfg.QueryInterval)
	}
	if cfg.PaperChannel == "" {
		return fmt.Errorf("paper_channel is required")
	}
	return nil
}

// Save rewrites the configuration file with the current state
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save is the non-locking flush, callers hold s.mu
func (s *Store) save() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&s.cfg); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Get returns the printable value of a non-hidden key
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key = strings.ToLower(key)
	if _, hidden := hiddenKeys[key]; hidden {
		return "", ErrUnknownKey
	}
	for _, p := range s.params() {
		if p.Key == key {
			return p.Value, nil
		}
	}
	return "", ErrUnknownKey
}

// Set validates the value for the given key, applies it and persists the
// configuration. Hidden and unknown keys are rejected. On success the
// stored (canonicalized) value is returned.
func (s *Store) Set(key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key = strings.ToLower(key)
	if _, hidden := hiddenKeys[key]; hidden {
		return "", fmt.Errorf("key %q: %w", key, ErrUnknownKey)
	}

	switch key {
	case "paper_channel":
		// existence of the channel is checked by the caller against the
		// notification platform before Set is reached
		if value == "" {
			return "", fmt.Errorf("paper_channel: %w", ErrInvalidValue)
		}
		s.cfg.PaperChannel = value
	case "summary_length":
		n, err := digits(value)
		if err != nil || n > 2048 {
			return "", fmt.Errorf("summary_length %q: %w", value, ErrInvalidValue)
		}
		s.cfg.SummaryLength = n
	case "n_query":
		n, err := digits(value)
		if err != nil || n <= 0 || n >= 1000 {
			return "", fmt.Errorf("n_query %q: %w", value, ErrInvalidValue)
		}
		s.cfg.NQuery = n
	case "sort_by":
		canonical, ok := canonicalSort(value)
		if !ok {
			return "", fmt.Errorf("sort_by %q: %w", value, ErrInvalidValue)
		}
		s.cfg.SortBy = canonical
		value = canonical
	case "message_color":
		n, err := digits(value)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("message_color %q: %w", value, ErrInvalidValue)
		}
		s.cfg.MessageColor = &n
	case "query_interval":
		n, err := digits(value)
		if err != nil || n <= 29 || n >= 6000000 {
			return "", fmt.Errorf("query_interval %q: %w", value, ErrInvalidValue)
		}
		s.cfg.QueryInterval = n
	case "hotword":
		if l := len(value); l <= 2 || l >= 16 {
			return "", fmt.Errorf("hotword %q: %w", value, ErrInvalidValue)
		}
		value = strings.ToLower(value)
		s.cfg.Hotword = value
	default:
		return "", fmt.Errorf("key %q: %w", key, ErrUnknownKey)
	}

	if err := s.save(); err != nil {
		return "", err
	}
	return value, nil
}

// digits parses a strictly numeric string, rejecting signs and spaces
func digits(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("empty value")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number: %q", value)
		}
	}
	return strconv.Atoi(value)
}

// canonicalSort matches value against the sort options case-insensitively
// and returns the canonical casing
func canonicalSort(value string) (string, bool) {
	for _, o := range sortOptions {
		if strings.EqualFold(o, value) {
			return o, true
		}
	}
	return "", false
}

// AddSearch registers a query under a category, creating the category when
// absent. Reports whether the category was created and whether the query
// was appended; a duplicate or empty query adds nothing. Persists when
// anything changed.
func (s *Store) AddSearch(category, query string) (created, added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created = s.cfg.Search.AddCategory(category)
	added = s.cfg.Search.AddQuery(category, query)
	if created || added {
		if err = s.save(); err != nil {
			return created, added, err
		}
	}
	return created, added, nil
}

// RemoveSearch deletes a query from a category; removing the last query
// drops the category as well. Persists when anything changed.
func (s *Store) RemoveSearch(category, query string) (removed, categoryRemoved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, categoryRemoved = s.cfg.Search.RemoveQuery(category, query)
	if removed {
		if err = s.save(); err != nil {
			return removed, categoryRemoved, err
		}
	}
	return removed, categoryRemoved, nil
}

// HasCategory reports whether the category is in the search registry
func (s *Store) HasCategory(category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Search.Has(category)
}

// SearchEntries returns an ordered snapshot of the search registry
func (s *Store) SearchEntries() []SearchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Search.Entries()
}

// Seen reports whether the paper identifier was announced before
func (s *Store) Seen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.known[id]
	return ok
}

// Record marks the paper identifier as announced. Returns true when the
// identifier was not known before; recording an already known identifier is
// a no-op. The registry is not flushed here, the poll loop persists once
// per cycle.
func (s *Store) Record(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.known[id]; ok {
		return false
	}
	s.known[id] = struct{}{}
	s.cfg.KnownPapers = append(s.cfg.KnownPapers, id)
	return true
}

// KnownPapers returns an ordered snapshot of announced paper identifiers
func (s *Store) KnownPapers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, len(s.cfg.KnownPapers))
	copy(res, s.cfg.KnownPapers)
	return res
}

// Param is a displayable configuration parameter
type Param struct {
	Key   string
	Value string
}

// Params returns the non-hidden parameters in schema order
func (s *Store) Params() []Param {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params()
}

func (s *Store) params() []Param {
	color := "null"
	if s.cfg.MessageColor != nil {
		color = strconv.Itoa(*s.cfg.MessageColor)
	}
	return []Param{
		{Key: "hotword", Value: s.cfg.Hotword},
		{Key: "sort_by", Value: s.cfg.SortBy},
		{Key: "summary_length", Value: strconv.Itoa(s.cfg.SummaryLength)},
		{Key: "n_query", Value: strconv.Itoa(s.cfg.NQuery)},
		{Key: "message_color", Value: color},
		{Key: "query_interval", Value: strconv.Itoa(s.cfg.QueryInterval)},
		{Key: "paper_channel", Value: s.cfg.PaperChannel},
	}
}

// Hotword returns the configured command prefix
func (s *Store) Hotword() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Hotword
}

// SortBy returns the configured sort criterion in canonical casing
func (s *Store) SortBy() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.SortBy
}

// SummaryLength bounds the displayed abstract length
func (s *Store) SummaryLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.SummaryLength
}

// NQuery is the maximum number of results fetched per query
func (s *Store) NQuery() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.NQuery
}

// MessageColor returns the fixed embed color, nil when derived per paper
func (s *Store) MessageColor() *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.MessageColor == nil {
		return nil
	}
	c := *s.cfg.MessageColor
	return &c
}

// Interval returns the poll interval
func (s *Store) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.cfg.QueryInterval) * time.Second
}

// PaperChannel returns the announcement channel name
func (s *Store) PaperChannel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.PaperChannel
}

// Key returns the authentication credential from the config file, may be empty
func (s *Store) Key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Key
}

// Snapshot returns a copy of the full configuration for schema verification
func (s *Store) Snapshot() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}
