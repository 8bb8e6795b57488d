package rules

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tagmend/tagmend/internal/types"
)

// DecodeRecord parses a flat field -> value document into a Record.
//
// The document is a single YAML (or JSON) mapping. Integer scalars become
// integer values, null becomes an absent value, everything else is kept
// as a string. Field order in the document becomes the record's
// processing order.
func DecodeRecord(data []byte) (*types.Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &types.ConfigError{Section: "record", Reason: "not a valid record document", Err: err}
	}

	record := types.NewRecord()
	if root.IsZero() || len(root.Content) == 0 {
		return record, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &types.ConfigError{Section: "record", Reason: "must be a mapping of field to value"}
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		field := doc.Content[i].Value
		record.Set(field, decodeScalar(doc.Content[i+1]))
	}
	return record, nil
}

func decodeScalar(node *yaml.Node) types.Value {
	switch node.Tag {
	case "!!null":
		return types.Absent()
	case "!!int":
		if n, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return types.IntValue(n)
		}
	}
	return types.StringValue(node.Value)
}
