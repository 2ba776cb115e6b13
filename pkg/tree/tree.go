// Package tree provides an insertion-ordered mapping node for building
// declarative job trees. Generated CI configuration is diffed by downstream
// tooling, so serialization order must be deterministic; Go maps cannot
// guarantee that, a Node can.
package tree

import (
	"gopkg.in/yaml.v3"
)

// Entry is a single key/value pair, used to declare ordered property
// overrides in catalog literals.
type Entry struct {
	Key   string
	Value interface{}
}

// Node is a string-keyed mapping that remembers insertion order.
// Setting a key that already exists overwrites its value in place, so
// overrides keep the key's original position in the serialized output.
type Node struct {
	keys   []string
	values map[string]interface{}
}

// New creates an empty Node, populated with the given entries in order.
func New(entries ...Entry) *Node {
	n := &Node{
		values: make(map[string]interface{}),
	}
	for _, e := range entries {
		n.Set(e.Key, e.Value)
	}
	return n
}

// Set stores a value under key. Last writer wins: an existing key keeps
// its position and gets the new value.
func (n *Node) Set(key string, value interface{}) {
	if _, exists := n.values[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// Get returns the value stored under key, and whether the key is present.
func (n *Node) Get(key string) (interface{}, bool) {
	value, ok := n.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Len returns the number of keys in the node.
func (n *Node) Len() int {
	return len(n.keys)
}

// MarshalYAML encodes the node as a YAML mapping in insertion order.
func (n *Node) MarshalYAML() (interface{}, error) {
	mapping := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, key := range n.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(key)

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(n.values[key]); err != nil {
			return nil, err
		}

		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}

	return mapping, nil
}
