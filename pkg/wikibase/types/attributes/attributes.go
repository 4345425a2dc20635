package attributes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// term is the wire shape of a single language tagged value.
type term struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// LabelSet holds the labels of one entity, keyed by language.
type LabelSet struct {
	entityID string
	values   map[string]string
}

func (l *LabelSet) EntityID() string { return l.entityID }
func (l *LabelSet) Len() int         { return len(l.values) }

func (l *LabelSet) Get(language string) (string, bool) {
	v, ok := l.values[language]
	return v, ok
}

func (l *LabelSet) Languages() []string {
	return sortedKeys(l.values)
}

// DescriptionSet holds the descriptions of one entity, keyed by language.
type DescriptionSet struct {
	entityID string
	values   map[string]string
}

func (d *DescriptionSet) EntityID() string { return d.entityID }
func (d *DescriptionSet) Len() int         { return len(d.values) }

func (d *DescriptionSet) Get(language string) (string, bool) {
	v, ok := d.values[language]
	return v, ok
}

func (d *DescriptionSet) Languages() []string {
	return sortedKeys(d.values)
}

// AliasSet holds the aliases of one entity, keyed by language.
type AliasSet struct {
	entityID string
	values   map[string][]string
}

func (a *AliasSet) EntityID() string { return a.entityID }

func (a *AliasSet) Len() int {
	count := 0
	for _, aliases := range a.values {
		count += len(aliases)
	}
	return count
}

func (a *AliasSet) Get(language string) []string {
	return a.values[language]
}

func (a *AliasSet) Languages() []string {
	return sortedKeys(a.values)
}

// Snak is the innermost wire unit of a claim: which property makes the
// statement and what value it carries.
type Snak struct {
	SnakType  string          `json:"snaktype"`
	Property  string          `json:"property"`
	DataType  string          `json:"datatype,omitempty"`
	DataValue json.RawMessage `json:"datavalue,omitempty"`
}

// Claim is a structured statement attached to an entity.
type Claim struct {
	ID       string `json:"id"`
	Rank     string `json:"rank"`
	Type     string `json:"type"`
	MainSnak Snak   `json:"mainsnak"`
}

// ClaimSet holds the claims of one entity, keyed by property id.
type ClaimSet struct {
	entityID string
	claims   map[string][]Claim
}

func (c *ClaimSet) EntityID() string { return c.entityID }

func (c *ClaimSet) Len() int {
	count := 0
	for _, claims := range c.claims {
		count += len(claims)
	}
	return count
}

func (c *ClaimSet) Get(propertyID string) []Claim {
	return c.claims[propertyID]
}

func (c *ClaimSet) Properties() []string {
	return sortedKeys(c.claims)
}

// Codec decodes the raw attribute payloads of an entity envelope into
// typed attribute objects. All methods tolerate an empty payload and
// produce an empty but present attribute in that case, since the
// remote store serializes empty containers as {}, [] or omits them.
type Codec struct{}

func (Codec) UnmarshalLabel(entityID string, raw json.RawMessage) (*LabelSet, error) {
	values, err := unmarshalTerms(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal labels for %s: %w", entityID, err)
	}

	return &LabelSet{entityID: entityID, values: values}, nil
}

func (Codec) UnmarshalDescription(entityID string, raw json.RawMessage) (*DescriptionSet, error) {
	values, err := unmarshalTerms(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal descriptions for %s: %w", entityID, err)
	}

	return &DescriptionSet{entityID: entityID, values: values}, nil
}

func (Codec) UnmarshalAliases(entityID string, raw json.RawMessage) (*AliasSet, error) {
	values := map[string][]string{}

	if !isEmptyPayload(raw) {
		byLanguage := map[string][]term{}
		if err := json.Unmarshal(raw, &byLanguage); err != nil {
			return nil, fmt.Errorf("failed to unmarshal aliases for %s: %w", entityID, err)
		}

		for language, terms := range byLanguage {
			aliases := make([]string, 0, len(terms))
			for _, t := range terms {
				aliases = append(aliases, t.Value)
			}
			values[language] = aliases
		}
	}

	return &AliasSet{entityID: entityID, values: values}, nil
}

func (Codec) UnmarshalClaims(entityID string, raw json.RawMessage) (*ClaimSet, error) {
	claims := map[string][]Claim{}

	if !isEmptyPayload(raw) {
		if err := json.Unmarshal(raw, &claims); err != nil {
			return nil, fmt.Errorf("failed to unmarshal claims for %s: %w", entityID, err)
		}
	}

	return &ClaimSet{entityID: entityID, claims: claims}, nil
}

func unmarshalTerms(raw json.RawMessage) (map[string]string, error) {
	values := map[string]string{}

	if isEmptyPayload(raw) {
		return values, nil
	}

	byLanguage := map[string]term{}
	if err := json.Unmarshal(raw, &byLanguage); err != nil {
		return nil, err
	}

	for language, t := range byLanguage {
		values[language] = t.Value
	}

	return values, nil
}

func isEmptyPayload(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) == 0 {
		return true
	}

	// the remote store serializes empty term containers as [] instead of {}
	return bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("[]"))
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
