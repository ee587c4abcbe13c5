package output

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"text/tabwriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murojaat/internal/app/client"
)

type row struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestWrite(t *testing.T) {
	v := []row{{Name: "Karimov", Count: 2}}
	table := func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "NAME\tCOUNT")
		for _, r := range v {
			fmt.Fprintf(tw, "%s\t%d\n", r.Name, r.Count)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, v, table))
	assert.JSONEq(t, `[{"name":"Karimov","count":2}]`, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatYAML, v, table))
	assert.Equal(t, "- name: Karimov\n  count: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatTable, v, table))
	assert.Contains(t, buf.String(), "Karimov  2")

	assert.Error(t, Write(&buf, "xml", v, table))
}

func TestNotifications(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, client.OpCreateRecord)
	assert.Contains(t, buf.String(), client.OpCreateRecord.Success())

	buf.Reset()
	Success(&buf, client.OpLoadRecords)
	assert.Empty(t, buf.String())

	buf.Reset()
	err := errors.New("boom")
	assert.Equal(t, err, Failure(&buf, err))
	assert.Contains(t, buf.String(), "boom")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "Ўзбе...", Truncate("Ўзбекистон", 7))
}
