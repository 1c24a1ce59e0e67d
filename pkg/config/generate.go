package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/here/pkg/errors"
)

const generatedHeader = `# here configuration
# Default location: %s
# Any key may also be set with HERE_<SECTION>_<KEY>.

`

// Generate renders cfg as a TOML config file
func Generate(cfg *Config) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, generatedHeader, UserConfigPath())

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
