package model

import (
	"encoding/json"
	"fmt"
)

// Nodes are serialized as a tagged union: a "type" discriminator plus a
// payload field named after the variant. This shape is shared with other
// Arcmark frontends, so it must not change.
//
//	{"type": "folder", "folder": {...}}
//	{"type": "link",   "link":   {...}}
type nodeEnvelope struct {
	Type   string  `json:"type"`
	Folder *Folder `json:"folder,omitempty"`
	Link   *Link   `json:"link,omitempty"`
}

const (
	nodeTypeFolder = "folder"
	nodeTypeLink   = "link"
)

// MarshalJSON implements json.Marshaler using the tagged-union envelope.
func (l NodeList) MarshalJSON() ([]byte, error) {
	envelopes := make([]nodeEnvelope, 0, len(l))
	for _, n := range l {
		switch v := n.(type) {
		case *Folder:
			envelopes = append(envelopes, nodeEnvelope{Type: nodeTypeFolder, Folder: v})
		case *Link:
			envelopes = append(envelopes, nodeEnvelope{Type: nodeTypeLink, Link: v})
		default:
			return nil, fmt.Errorf("model: cannot marshal node of type %T", n)
		}
	}
	return json.Marshal(envelopes)
}

// UnmarshalJSON implements json.Unmarshaler. An unrecognized "type" or a
// missing payload object is a hard parse failure; the loader catches it
// and falls back to a default state.
func (l *NodeList) UnmarshalJSON(data []byte) error {
	var envelopes []nodeEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return err
	}

	nodes := make(NodeList, 0, len(envelopes))
	for _, e := range envelopes {
		switch e.Type {
		case nodeTypeFolder:
			if e.Folder == nil {
				return fmt.Errorf("model: folder node missing %q payload", nodeTypeFolder)
			}
			if e.Folder.Children == nil {
				e.Folder.Children = NodeList{}
			}
			nodes = append(nodes, e.Folder)
		case nodeTypeLink:
			if e.Link == nil {
				return fmt.Errorf("model: link node missing %q payload", nodeTypeLink)
			}
			nodes = append(nodes, e.Link)
		default:
			return fmt.Errorf("model: unknown node type %q", e.Type)
		}
	}

	*l = nodes
	return nil
}
