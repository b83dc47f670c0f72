package confkit

import (
	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec converts between a text buffer and a typed record. The library treats
// the format as opaque: decode failures surface as the invalid-file state, and
// encode failures surface as serialization errors on save.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// TOML is the default Codec, backed by github.com/pelletier/go-toml/v2.
type TOML struct{}

func (TOML) Marshal(v any) ([]byte, error) { return toml.Marshal(v) }

func (TOML) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

// YAML is an alternate Codec backed by gopkg.in/yaml.v3. Select it with
// WithCodec.
type YAML struct{}

func (YAML) Marshal(v any) (data []byte, err error) {
	// yaml.Marshal panics on unmarshalable types; recover and return an error
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
