package wiki

import (
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// FrontMatter collects page metadata that is emitted as a YAML block before
// the page body, e.g. the page title or the autotoc marker.
type FrontMatter map[string]string

// Write emits the front matter as a YAML document framed by "---" lines,
// with keys in sorted order. An empty front matter writes nothing.
// The values go through a yaml.Node so that a value like "true" stays a
// plain scalar; marshalling the string map would quote it.
func (fm FrontMatter) Write(w io.Writer) error {
	if len(fm) == 0 {
		return nil
	}
	root := yaml.Node{Kind: yaml.MappingNode}
	for _, key := range slices.Sorted(maps.Keys(fm)) {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fm[key]})
	}
	data, err := yaml.Marshal(&root)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, "---\n"); err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "---\n")
	return err
}
