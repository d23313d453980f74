package helpdoc

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Meta is the frontmatter of a help page.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

var delimiter = []byte("---")

// splitFrontmatter separates YAML frontmatter from the markdown body.
// Sources without a leading delimiter have empty Meta.
func splitFrontmatter(src []byte) (Meta, []byte, error) {
	var meta Meta
	if !bytes.HasPrefix(src, delimiter) {
		return meta, src, nil
	}

	rest := bytes.TrimLeft(src[len(delimiter):], "\r\n")
	head, body, ok := bytes.Cut(rest, delimiter)
	if !ok {
		return meta, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}
	body = bytes.TrimPrefix(bytes.TrimPrefix(body, []byte("\r")), []byte("\n"))

	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &meta); err != nil {
			return meta, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	return meta, body, nil
}
