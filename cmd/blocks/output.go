package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-blocks-utils/value"
)

// write prints v in the configured output format.
func (a *app) write(v any) error {
	if a.settings.Format == FormatYAML {
		return a.writeYAML(v)
	}
	return a.writeJSON(v)
}

func (a *app) writeJSON(v any) error {
	var (
		b   []byte
		err error
	)
	if a.settings.Indent == 0 {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", strings.Repeat(" ", a.settings.Indent))
	}
	if err != nil {
		return fmt.Errorf("blocks: encode json: %w", err)
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", b)
	return err
}

func (a *app) writeYAML(v any) error {
	node, err := yamlNode(v)
	if err != nil {
		return fmt.Errorf("blocks: encode yaml: %w", err)
	}
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(max(a.settings.Indent, 2))
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("blocks: encode yaml: %w", err)
	}
	return enc.Close()
}

// yamlNode converts v to a YAML node, keeping the property order of
// *value.Object at every level.
func yamlNode(v any) (*yaml.Node, error) {
	o, ok := v.(*value.Object)
	if !ok {
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.Keys() {
		e, _ := o.Own(k)
		en, err := yamlNode(e)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, en)
	}
	return n, nil
}
