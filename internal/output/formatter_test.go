package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name    string
	Domains []string
}

func TestPlainFormatter(t *testing.T) {
	var out bytes.Buffer
	f := NewWithWriters("plain", &out, &bytes.Buffer{})

	require.NoError(t, f.Print(&row{Name: "work", Domains: []string{"a.com", "b.com"}}))
	assert.Equal(t, "Name\twork\nDomains\ta.com, b.com\n", out.String())

	out.Reset()
	cols := []Column{{Name: "NAME", Key: "Name"}, {Name: "DOMAINS", Key: "Domains"}}
	require.NoError(t, f.PrintList([]row{{Name: "a", Domains: []string{"x.com"}}}, cols))
	assert.Equal(t, "NAME\tDOMAINS\na\tx.com\n", out.String())
}

type argv []string

func (a argv) String() string {
	return fmt.Sprintf("%q", []string(a))
}

func TestPrintUsesStringer(t *testing.T) {
	args := argv{"--profile-directory=Profile 3", "https://a.com/?x=1,2"}

	var out bytes.Buffer
	require.NoError(t, NewWithWriters("plain", &out, &bytes.Buffer{}).Print(args))
	assert.Equal(t, `["--profile-directory=Profile 3" "https://a.com/?x=1,2"]`+"\n", out.String())

	out.Reset()
	require.NoError(t, NewWithWriters("rich", &out, &bytes.Buffer{}).Print(args))
	assert.Contains(t, out.String(), `"--profile-directory=Profile 3"`)
}

func TestPlainFormatterMaps(t *testing.T) {
	var out bytes.Buffer
	f := NewWithWriters("plain", &out, &bytes.Buffer{})

	items := []map[string]string{{"k": "v"}}
	require.NoError(t, f.PrintList(items, []Column{{Name: "K", Key: "k"}}))
	assert.Equal(t, "K\nv\n", out.String())
}

func TestPrintListRequiresSlice(t *testing.T) {
	for _, mode := range []string{"plain", "rich"} {
		f := NewWithWriters(mode, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, f.PrintList(row{}, nil), mode)
	}
}

func TestJSONFormatter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewWithWriters("json", &out, &errOut)

	require.NoError(t, f.PrintList([]row{{Name: "a"}, {Name: "b"}}, nil))

	var envelope struct {
		Data  []row `json:"data"`
		Count int   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Count)
	assert.Equal(t, "b", envelope.Data[1].Name)

	f.PrintError(errors.New("invalid url"))
	f.PrintHint("ignored")
	assert.JSONEq(t, `{"error":"invalid url"}`, errOut.String())
}

func TestRichFormatter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := NewWithWriters("rich", &out, &errOut)

	require.NoError(t, f.Print(row{Name: "work"}))
	assert.Contains(t, out.String(), "work")

	f.PrintError(errors.New("no url given"))
	assert.Contains(t, errOut.String(), "error: no url given")
}

func TestUnknownModeIsPlain(t *testing.T) {
	_, ok := NewWithWriters("yaml", &bytes.Buffer{}, &bytes.Buffer{}).(*plainFormatter)
	assert.True(t, ok)
}
