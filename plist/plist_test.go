package plist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkginfo-tools/plcat/ir"
)

const pkginfoXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>name</key>
	<string>SetDisplayResolution</string>
	<key>version</key>
	<string>15.6.1</string>
	<key>catalogs</key>
	<array>
		<string>testing</string>
		<string>production</string>
	</array>
	<key>installed_size</key>
	<integer>123456</integer>
	<key>unattended_install</key>
	<true/>
	<key>install_date</key>
	<date>2024-01-15T10:30:00Z</date>
	<key>receipt_data</key>
	<data>AAEC</data>
	<key>minimum_os_version</key>
	<real>10.15</real>
</dict>
</plist>
`

func TestParsePkginfo(t *testing.T) {
	n, err := Parse([]byte(pkginfoXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Type != ir.ObjectType {
		t.Fatalf("root type = %s, want Object", n.Type)
	}
	if got := ir.Get(n, "name"); got == nil || got.String != "SetDisplayResolution" {
		t.Errorf("name = %v", got)
	}
	if got := ir.Get(n, "installed_size"); got == nil || got.Int64 == nil || *got.Int64 != 123456 {
		t.Errorf("installed_size = %v", got)
	}
	if got := ir.Get(n, "unattended_install"); got == nil || got.Type != ir.BoolType || !got.Bool {
		t.Errorf("unattended_install = %v", got)
	}
	if got := ir.Get(n, "minimum_os_version"); got == nil || got.Float64 == nil || *got.Float64 != 10.15 {
		t.Errorf("minimum_os_version = %v", got)
	}

	cats := ir.Get(n, "catalogs")
	if cats == nil || cats.Type != ir.ArrayType || len(cats.Values) != 2 {
		t.Fatalf("catalogs = %v", cats)
	}
	if cats.Values[0].String != "testing" || cats.Values[1].String != "production" {
		t.Errorf("catalogs order = %q, %q", cats.Values[0].String, cats.Values[1].String)
	}

	when := ir.Get(n, "install_date")
	if when == nil || when.Type != ir.TimeType {
		t.Fatalf("install_date = %v", when)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !when.Time.Equal(want) {
		t.Errorf("install_date = %v, want %v", when.Time, want)
	}

	data := ir.Get(n, "receipt_data")
	if data == nil || data.Type != ir.BytesType {
		t.Fatalf("receipt_data = %v", data)
	}
	if string(data.Bytes) != "\x00\x01\x02" {
		t.Errorf("receipt_data = %v", data.Bytes)
	}
}

func TestParseKeysSorted(t *testing.T) {
	n, err := Parse([]byte(pkginfoXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i := 1; i < len(n.Fields); i++ {
		if n.Fields[i-1].String > n.Fields[i].String {
			t.Fatalf("keys not sorted: %q > %q", n.Fields[i-1].String, n.Fields[i].String)
		}
	}
	// Same input, same tree.
	again, err := Parse([]byte(pkginfoXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ir.Equal(n, again) {
		t.Error("parse not deterministic")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SetDisplayResolution-15.6.1.plist")
	if err := os.WriteFile(path, []byte(pkginfoXML), 0644); err != nil {
		t.Fatal(err)
	}
	n, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ir.Get(n, "version"); got == nil || got.String != "15.6.1" {
		t.Errorf("version = %v", got)
	}
	if _, err := Load(filepath.Join(dir, "missing.plist")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

func TestParseBadInput(t *testing.T) {
	truncated := `<?xml version="1.0"?><plist version="1.0"><dict><key>name</key>`
	if _, err := Parse([]byte(truncated)); err == nil {
		t.Error("Parse(truncated) = nil error")
	}
}

func TestFromGoUnsupported(t *testing.T) {
	_, err := fromGo(make(chan int), "$")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
