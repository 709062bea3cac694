package main

import (
	"strings"
	"testing"

	"github.com/htorianik/gsqlite/pkg/gsqlite"
)

func usersDescription() []gsqlite.ColumnDescription {
	return []gsqlite.ColumnDescription{
		{Name: "id"},
		{Name: "name"},
	}
}

func usersRows() []gsqlite.Row {
	return []gsqlite.Row{
		{int64(1), "George"},
		{int64(2), nil},
	}
}

func TestFormatTable(t *testing.T) {
	f := NewFormatter()
	got := f.Format(usersDescription(), usersRows())

	sep := strings.Repeat("-", 15)
	want := sep + "\n" +
		"| id | name   |\n" +
		sep + "\n" +
		"| 1  | George |\n" +
		"| 2  | NULL   |\n"
	if got != want {
		t.Errorf("table output:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatCSV(t *testing.T) {
	f := NewFormatter()
	f.SetMode("csv")
	got := f.Format(usersDescription(), usersRows())

	want := "id,name\n1,George\n2,NULL\n"
	if got != want {
		t.Errorf("csv output = %q, want %q", got, want)
	}
}

func TestFormatCSVWithoutHeaders(t *testing.T) {
	f := NewFormatter()
	f.SetMode("csv")
	f.SetShowHeaders(false)
	got := f.Format(usersDescription(), usersRows())

	want := "1,George\n2,NULL\n"
	if got != want {
		t.Errorf("csv output = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	f := NewFormatter()
	f.SetMode("json")
	got := f.Format(usersDescription(), []gsqlite.Row{{int64(1), "George"}})

	want := "[\n  {\"id\": \"1\", \"name\": \"George\"}\n]\n"
	if got != want {
		t.Errorf("json output = %q, want %q", got, want)
	}
}

func TestFormatList(t *testing.T) {
	f := NewFormatter()
	f.SetMode("list")
	got := f.Format(usersDescription(), []gsqlite.Row{{int64(1), "George"}})

	want := "id = 1\nname = George\n\n"
	if got != want {
		t.Errorf("list output = %q, want %q", got, want)
	}
}

func TestFormatNullValue(t *testing.T) {
	f := NewFormatter()
	f.SetMode("csv")
	f.SetNullValue("<null>")
	got := f.Format(usersDescription(), []gsqlite.Row{{int64(2), nil}})

	want := "id,name\n2,<null>\n"
	if got != want {
		t.Errorf("csv output = %q, want %q", got, want)
	}
}

func TestFormatBlob(t *testing.T) {
	f := NewFormatter()
	f.SetMode("csv")
	f.SetShowHeaders(false)
	got := f.Format(
		[]gsqlite.ColumnDescription{{Name: "data"}},
		[]gsqlite.Row{{[]byte{0x01, 0xab}}},
	)

	want := "x'01ab'\n"
	if got != want {
		t.Errorf("blob output = %q, want %q", got, want)
	}
}

func TestFormatEmptyDescription(t *testing.T) {
	f := NewFormatter()
	if got := f.Format(nil, nil); got != "" {
		t.Errorf("output for statement without columns = %q, want empty", got)
	}
}
