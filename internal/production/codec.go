// Package production provides production integrations: persistence, visualization, logged invocation.
// Implements codecs over encoding/json, gopkg.in/yaml.v3 and BurntSushi/toml.
package production

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Codec encodes snapshots for a FilePersister.
type Codec interface {
	// Ext is the file extension without the dot.
	Ext() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec encodes indented JSON.
type JSONCodec struct{}

func (JSONCodec) Ext() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// YAMLCodec encodes YAML.
type YAMLCodec struct{}

func (YAMLCodec) Ext() string { return "yaml" }

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// TOMLCodec encodes TOML. The encoded value must be a struct or map; TOML
// has no top-level scalars.
type TOMLCodec struct{}

func (TOMLCodec) Ext() string { return "toml" }

func (TOMLCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

// CodecFor returns the codec for a format name: json, yaml (or yml), toml.
func CodecFor(format string) (Codec, bool) {
	switch format {
	case "json":
		return JSONCodec{}, true
	case "yaml", "yml":
		return YAMLCodec{}, true
	case "toml":
		return TOMLCodec{}, true
	default:
		return nil, false
	}
}
