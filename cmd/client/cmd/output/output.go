package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"murojaat/internal/app/client"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Write выводит v в JSON или YAML, а для table вызывает table с tabwriter
func Write(w io.Writer, format string, v any, table func(tw *tabwriter.Writer)) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	case FormatTable, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("неизвестный формат вывода: %s (table, json, yaml)", format)
	}
}

// Success печатает уведомление об успешной операции. Для операций чтения текста нет.
func Success(w io.Writer, op client.Op) {
	if msg := op.Success(); msg != "" {
		fmt.Fprintln(w, color.GreenString("✓ %s", msg))
	}
}

// Failure печатает уведомление об ошибке и возвращает err для RunE
func Failure(w io.Writer, err error) error {
	fmt.Fprintln(w, color.RedString("✗ %s", client.Message(err)))
	return err
}

// Truncate обрезает строку до length рун
func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
