package render

import (
	"bytes"
	"testing"

	"github.com/zoobzio/mbase"
)

type tableRow struct {
	Name    string   `col:"NAME,6"`
	Score   float64  `col:"SCORE,6,percent"`
	Hidden  string   // no col tag
	Skipped string   `col:"-"`
	Count   int      `col:"N,3"`
	Tags    []string `col:"TAGS"`
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []tableRow{
		{Name: "a", Score: 0.5, Hidden: "x", Count: 2, Tags: []string{"one", "two"}},
		{Name: "bb", Score: 1, Count: 10},
	}
	if err := Table(&buf, rows); err != nil {
		t.Fatalf("Table() error: %v", err)
	}

	want := "NAME   SCORE  N   TAGS\n" +
		"a      50%    2   one; two\n" +
		"bb     100%   10  \n"
	if buf.String() != want {
		t.Errorf("Table() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTable_Candidates(t *testing.T) {
	var buf bytes.Buffer
	rows := []mbase.Candidate{
		{Codec: "base64", Confidence: 0.7, Reasons: []string{"all characters valid"}},
	}
	if err := Table(&buf, rows); err != nil {
		t.Fatalf("Table() error: %v", err)
	}

	want := "CODEC            CONF     REASONS\n" +
		"base64           70%      all characters valid\n"
	if buf.String() != want {
		t.Errorf("Table() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Table[tableRow](&buf, nil); err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	if buf.String() != "NAME   SCORE  N   TAGS\n" {
		t.Errorf("Table() = %q, want header only", buf.String())
	}
}

type badColumn struct {
	Name string `col:"NAME,wide"`
}

func TestTable_InvalidTag(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, []badColumn{{Name: "x"}}); err == nil {
		t.Error("Table() should reject an invalid col option")
	}
}

func TestParseColumn(t *testing.T) {
	col, err := parseColumn("CONF,8,percent")
	if err != nil {
		t.Fatalf("parseColumn() error: %v", err)
	}
	if col.header != "CONF" || col.width != 8 || !col.percent {
		t.Errorf("parseColumn() = %+v", col)
	}
}
