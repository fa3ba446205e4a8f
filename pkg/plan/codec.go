package plan

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Format selects a wire encoding for a plan Bundle. Where the bytes end up
// (disk, object store, job metadata) is the caller's business.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Marshal encodes the bundle in the requested format.
func Marshal(b *Bundle, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(b)
	case YAML:
		return yaml.Marshal(b)
	case TOML:
		return toml.Marshal(b)
	default:
		return nil, errors.Newf("plan: unknown format %q", f)
	}
}

// Unmarshal decodes a bundle previously produced by Marshal.
func Unmarshal(data []byte, f Format) (*Bundle, error) {
	var b Bundle
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, &b)
	case YAML:
		err = yaml.Unmarshal(data, &b)
	case TOML:
		err = toml.Unmarshal(data, &b)
	default:
		return nil, errors.Newf("plan: unknown format %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(err, "plan: decode bundle")
	}
	return &b, nil
}
