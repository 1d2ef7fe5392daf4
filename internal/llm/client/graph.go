package client

import (
	"sort"
	"strings"
	"unicode"
)

// Property is a single key/value pair attached to a node or relationship.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Node is an entity extracted from a note chunk.
type Node struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Properties []Property `json:"properties,omitempty"`
}

// Relationship connects two extracted nodes.
type Relationship struct {
	Source     Node       `json:"source"`
	Target     Node       `json:"target"`
	Type       string     `json:"type"`
	Properties []Property `json:"properties,omitempty"`
}

// KnowledgeGraph is the structured output of one extraction call.
type KnowledgeGraph struct {
	Nodes []Node         `json:"nodes"`
	Rels  []Relationship `json:"rels"`
}

// FormatPropertyKey converts a property key into snake case.
func FormatPropertyKey(s string) string {
	words := strings.Fields(strings.ToLower(s))
	if len(words) == 0 {
		return strings.ToLower(s)
	}
	return strings.Join(words, "_")
}

// PropsToMap converts a property list into a map with snake-cased keys.
func PropsToMap(props []Property) map[string]string {
	properties := make(map[string]string)
	for _, prop := range props {
		properties[FormatPropertyKey(prop.Key)] = prop.Value
	}
	return properties
}

// NormalizeNode returns the node with a title-cased id, a capitalized type
// and a name property set from the id, matching what the graph store expects
// for Cypher generation.
func NormalizeNode(n Node) Node {
	id := titleCase(n.ID)
	props := PropsToMap(n.Properties)
	props["name"] = id

	normalized := Node{
		ID:   id,
		Type: capitalize(n.Type),
	}
	for key, value := range props {
		normalized.Properties = append(normalized.Properties, Property{Key: key, Value: value})
	}
	sortProperties(normalized.Properties)
	return normalized
}

// NormalizeRelationship normalizes both endpoints and snake-cases the
// relationship's own property keys.
func NormalizeRelationship(r Relationship) Relationship {
	normalized := Relationship{
		Source: NormalizeNode(r.Source),
		Target: NormalizeNode(r.Target),
		Type:   r.Type,
	}
	for key, value := range PropsToMap(r.Properties) {
		normalized.Properties = append(normalized.Properties, Property{Key: key, Value: value})
	}
	sortProperties(normalized.Properties)
	return normalized
}

func sortProperties(props []Property) {
	sort.Slice(props, func(i, j int) bool { return props[i].Key < props[j].Key })
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
