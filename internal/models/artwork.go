// Daily MoMA - Deterministic Artwork of the Day Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dailymoma

package models

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Artwork is a single collection record as served by the API.
//
// Field names follow the upstream MoMA collection export so records pass
// through the service without renaming. Values are treated as immutable once
// built by the dataset provider; consumers must not modify them.
//
// Example:
//
//	{
//	  "Title": "The Starry Night",
//	  "Artist": "Vincent van Gogh",
//	  "Date": "1889",
//	  "Medium": "Oil on canvas",
//	  "Department": "Painting and Sculpture",
//	  "Classification": "Painting",
//	  "ObjectID": "79802"
//	}
type Artwork struct {
	Title          string      `json:"Title"`
	Artist         ArtistNames `json:"Artist"`
	Date           string      `json:"Date"`
	Medium         string      `json:"Medium"`
	Department     string      `json:"Department,omitempty"`
	Classification string      `json:"Classification,omitempty"`
	ObjectID       ObjectID    `json:"ObjectID"`
}

// ArtistNames holds the credited artist(s) of a record.
//
// The upstream export stores artists as an ordered array of names, while the
// curated records use a plain string. Both shapes are preserved on output.
type ArtistNames struct {
	names []string
	list  bool
}

// SingleArtist returns ArtistNames that serializes as a plain JSON string.
func SingleArtist(name string) ArtistNames {
	return ArtistNames{names: []string{name}}
}

// ArtistList returns ArtistNames that serializes as a JSON array.
func ArtistList(names ...string) ArtistNames {
	out := make([]string, len(names))
	copy(out, names)
	return ArtistNames{names: out, list: true}
}

// Names returns a copy of the credited names in order.
func (a ArtistNames) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// IsList reports whether the names came from (and serialize to) an array.
func (a ArtistNames) IsList() bool {
	return a.list
}

// IsEmpty reports whether no non-blank name is present.
func (a ArtistNames) IsEmpty() bool {
	for _, n := range a.names {
		if strings.TrimSpace(n) != "" {
			return false
		}
	}
	return true
}

// String joins the names with ", ".
func (a ArtistNames) String() string {
	return strings.Join(a.names, ", ")
}

// MarshalJSON implements json.Marshaler.
func (a ArtistNames) MarshalJSON() ([]byte, error) {
	if a.list {
		if a.names == nil {
			return []byte("[]"), nil
		}
		return json.MarshalNoEscape(a.names)
	}
	if len(a.names) == 0 {
		return []byte(`""`), nil
	}
	return json.MarshalNoEscape(a.names[0])
}

// UnmarshalJSON implements json.Unmarshaler. It accepts null, a string, or an
// array of strings (null elements become empty names).
func (a *ArtistNames) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*a = ArtistNames{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("artist: %w", err)
		}
		*a = SingleArtist(s)
		return nil
	case data[0] == '[':
		var raw []*string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("artist list: %w", err)
		}
		names := make([]string, 0, len(raw))
		for _, n := range raw {
			if n == nil {
				names = append(names, "")
				continue
			}
			names = append(names, *n)
		}
		*a = ArtistList(names...)
		return nil
	default:
		return fmt.Errorf("artist: unsupported JSON value %q", truncate(data, 32))
	}
}

// ObjectID is a collection object identifier. Upstream exports use JSON
// numbers; the API always emits strings.
type ObjectID string

// UnmarshalJSON implements json.Unmarshaler. Numbers keep their literal text.
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("object id: %w", err)
		}
		*id = ObjectID(s)
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("object id: %w", err)
		}
		*id = ObjectID(n.String())
		return nil
	default:
		return fmt.Errorf("object id: unsupported JSON value %q", truncate(data, 32))
	}
}

// String returns the identifier text.
func (id ObjectID) String() string {
	return string(id)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
