package render

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("col")
}

// column is one field's place in a text table, parsed from a tag of the
// form `col:"HEADER[,width][,percent]"`.
type column struct {
	header  string
	width   int
	percent bool
	index   []int
}

var (
	plansMu sync.RWMutex
	plans   = make(map[reflect.Type][]column)
)

// columnsFor returns the column plan for T, building it on first use.
func columnsFor[T any]() ([]column, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()

	plansMu.RLock()
	cols, ok := plans[rt]
	plansMu.RUnlock()
	if ok {
		return cols, nil
	}

	meta := sentinel.Scan[T]()
	cols = make([]column, 0, len(meta.Fields))
	for _, field := range meta.Fields {
		tag, ok := field.Tags["col"]
		if !ok || tag == "" || tag == "-" {
			continue
		}
		col, err := parseColumn(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", meta.TypeName, field.Name, err)
		}
		col.index = field.Index
		cols = append(cols, col)
	}

	plansMu.Lock()
	plans[rt] = cols
	plansMu.Unlock()
	return cols, nil
}

func parseColumn(tag string) (column, error) {
	parts := strings.Split(tag, ",")
	col := column{header: parts[0]}
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		if opt == "percent" {
			col.percent = true
			continue
		}
		width, err := strconv.Atoi(opt)
		if err != nil || width < 0 {
			return column{}, fmt.Errorf("invalid col option %q", opt)
		}
		col.width = width
	}
	return col, nil
}

// Table writes rows as aligned text columns with a header line. Fields
// without a col tag are omitted; the last column is never padded.
func Table[T any](w io.Writer, rows []T) error {
	cols, err := columnsFor[T]()
	if err != nil {
		return err
	}
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.header
	}
	if err := writeRow(w, cols, headers); err != nil {
		return err
	}
	for _, row := range rows {
		rv := reflect.ValueOf(row)
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = formatCell(rv.FieldByIndex(col.index), col.percent)
		}
		if err := writeRow(w, cols, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cols []column, cells []string) error {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 || cols[i].width == 0 {
			b.WriteString(cell)
		} else {
			fmt.Fprintf(&b, "%-*s", cols[i].width, cell)
		}
		if i < len(cells)-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func formatCell(v reflect.Value, percent bool) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Float32, reflect.Float64:
		if percent {
			return fmt.Sprintf("%.0f%%", v.Float()*100)
		}
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String {
			parts := make([]string, v.Len())
			for i := range parts {
				parts[i] = v.Index(i).String()
			}
			return strings.Join(parts, "; ")
		}
	case reflect.Pointer:
		if v.IsNil() {
			return ""
		}
		return formatCell(v.Elem(), percent)
	}
	return fmt.Sprint(v.Interface())
}
