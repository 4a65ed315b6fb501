package diag

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed messages.toml
var messagesTOML string

// Catalog maps message keys to templates with {0}-style placeholders.
type Catalog map[string]string

var defaultCatalog = mustParseCatalog(messagesTOML)

// DefaultCatalog returns the built-in English messages.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

// ParseCatalog decodes a TOML document of key = "template" pairs.
func ParseCatalog(data string) (Catalog, error) {
	c := Catalog{}
	if _, err := toml.Decode(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}
	return c, nil
}

func mustParseCatalog(data string) Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders key with args. Unknown keys render as the key followed
// by the arguments so nothing is lost.
func (c Catalog) Format(key string, args ...any) string {
	tmpl, ok := c[key]
	if !ok {
		if len(args) == 0 {
			return key
		}
		return key + ": " + fmt.Sprint(args...)
	}

	var sb strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '{' {
			sb.WriteByte(tmpl[i])
			continue
		}
		end := strings.IndexByte(tmpl[i:], '}')
		if end < 0 {
			sb.WriteString(tmpl[i:])
			break
		}
		n, err := strconv.Atoi(tmpl[i+1 : i+end])
		if err != nil || n < 0 || n >= len(args) {
			sb.WriteString(tmpl[i : i+end+1])
		} else {
			fmt.Fprint(&sb, args[n])
		}
		i += end
	}
	return sb.String()
}
