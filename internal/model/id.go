package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"gopkg.in/yaml.v3"
)

// ID - непрозрачный идентификатор, выданный сервером.
// Бэкенд может прислать его числом или строкой; при обратной сериализации
// уходит ровно та форма, в которой он пришёл. Сравнивать через Equal.
type ID struct {
	value  string
	number bool
}

// NewID - идентификатор в строковой форме (аргумент командной строки, параметр пути)
func NewID(s string) ID {
	return ID{value: s}
}

// NumericID - идентификатор, который сериализуется числом
func NumericID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), number: true}
}

func (id ID) String() string {
	return id.value
}

// IsZero сообщает, что идентификатор не задан
func (id ID) IsZero() bool {
	return id.value == ""
}

// IsNumber - пришёл ли идентификатор числом
func (id ID) IsNumber() bool {
	return id.number
}

// Equal сравнивает значения без учёта формы: "42" и 42 - один и тот же id
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = NewID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID{value: n.String(), number: true}
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id.value == "":
		return []byte("null"), nil
	case id.number:
		return []byte(id.value), nil
	default:
		return json.Marshal(id.value)
	}
}

func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("decode id: line %d: expected scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*id = ID{}
	case "!!int", "!!float":
		*id = ID{value: node.Value, number: true}
	default:
		*id = NewID(node.Value)
	}
	return nil
}

func (id ID) MarshalYAML() (any, error) {
	if id.value == "" {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id.value}
	if id.number {
		node.Tag = "!!int"
	}
	return node, nil
}

// Schema - в OpenAPI идентификатор описан как строка или целое число
func (ID) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeInteger},
		},
	}
}
