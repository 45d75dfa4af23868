package sanitize

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/pkginfo-tools/plcat/ir"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSanitizeScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   *ir.Node
		want *ir.Node
	}{
		{
			"safe object unchanged",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("name"), Val: ir.FromString("Widget")},
				{Key: ir.FromString("count"), Val: ir.FromInt(3)},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("name"), Val: ir.FromString("Widget")},
				{Key: ir.FromString("count"), Val: ir.FromInt(3)},
			}),
		},
		{
			"blob to base64",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("blob"), Val: ir.FromBytes([]byte{0, 1, 2})},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("blob"), Val: ir.FromString("AAEC")},
			}),
		},
		{
			"date to utc string",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("when"), Val: ir.FromTime(mustDate("2024-01-15T10:30:00Z"))},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("when"), Val: ir.FromString("2024-01-15T10:30:00Z")},
			}),
		},
		{
			"path to string",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("pkg"), Val: ir.FromPath("/path/to/../package.pkg")},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("pkg"), Val: ir.FromString("/path/to/../package.pkg")},
			}),
		},
		{
			"nested containers",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("items"), Val: ir.FromSlice([]*ir.Node{
					ir.FromBytes([]byte("ab")),
					ir.FromKeyVals([]ir.KeyVal{
						{Key: ir.FromString("t"), Val: ir.FromTime(mustDate("2024-01-15T10:30:00Z"))},
					}),
				})},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("items"), Val: ir.FromSlice([]*ir.Node{
					ir.FromString("YWI="),
					ir.FromKeyVals([]ir.KeyVal{
						{Key: ir.FromString("t"), Val: ir.FromString("2024-01-15T10:30:00Z")},
					}),
				})},
			}),
		},
		{"empty object", ir.FromKeyVals(nil), ir.FromKeyVals(nil)},
		{"empty array", ir.FromSlice(nil), ir.FromSlice(nil)},
		{"null passes", ir.Null(), ir.Null()},
		{"bool passes", ir.FromBool(true), ir.FromBool(true)},
		{"float passes", ir.FromFloat(1.25), ir.FromFloat(1.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if !ir.Equal(got, tt.want) {
				t.Errorf("Sanitize() mismatch:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	in := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("when"), Val: ir.FromTime(mustDate("2024-01-15T10:30:00Z"))},
		{Key: ir.FromString("data"), Val: ir.FromBytes([]byte{1, 2, 3, 4})},
		{Key: ir.FromString("list"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()})},
	})
	once := Sanitize(in)
	twice := Sanitize(once)
	if !ir.Equal(once, twice) {
		t.Errorf("not idempotent:\n once %+v\ntwice %+v", once, twice)
	}
}

func TestSanitizeTypeClosure(t *testing.T) {
	in := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromTime(time.Now())},
		{Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{
			ir.FromBytes([]byte("x")),
			ir.FromSlice([]*ir.Node{ir.FromPath("rel/path.pkg")}),
		})},
		{Key: ir.FromString("c"), Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("deep"), Val: ir.FromTime(time.Now())},
		})},
	})
	var check func(n *ir.Node)
	check = func(n *ir.Node) {
		if !n.Type.IsSafe() {
			t.Errorf("unsafe node %s survived sanitize", n.Type)
		}
		for _, f := range n.Fields {
			check(f)
		}
		for _, v := range n.Values {
			check(v)
		}
	}
	check(Sanitize(in))
}

func TestSanitizeStructurePreserved(t *testing.T) {
	in := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("z"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{
			ir.FromString("one"), ir.FromBytes(nil), ir.FromBool(false),
		})},
		{Key: ir.FromString("m"), Val: ir.FromTime(time.Now())},
	})
	got := Sanitize(in)
	if len(got.Fields) != 3 {
		t.Fatalf("key count = %d, want 3", len(got.Fields))
	}
	for i, want := range []string{"z", "a", "m"} {
		if got.Fields[i].String != want {
			t.Errorf("key %d = %q, want %q", i, got.Fields[i].String, want)
		}
	}
	arr := ir.Get(got, "a")
	if len(arr.Values) != 3 {
		t.Fatalf("array length = %d, want 3", len(arr.Values))
	}
	if arr.Values[0].String != "one" || arr.Values[2].Type != ir.BoolType {
		t.Error("array element order not preserved")
	}
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	in := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("blob"), Val: ir.FromBytes([]byte{9, 9})},
		{Key: ir.FromString("when"), Val: ir.FromTime(mustDate("2024-01-15T10:30:00Z"))},
	})
	before := in.Hash()
	out := Sanitize(in)
	if in.Hash() != before {
		t.Error("input tree changed")
	}
	// Output must not alias input nodes.
	out.Values[0].String = "clobber"
	if in.Values[0].Type != ir.BytesType || in.Values[0].Bytes[0] != 9 {
		t.Error("output shares nodes with input")
	}
}

func TestSanitizeBytesRoundTrip(t *testing.T) {
	blobs := [][]byte{
		nil,
		{},
		{0},
		{0, 1, 2},
		[]byte("ab"),
		[]byte("any + old & data\x00\xff"),
	}
	for _, b := range blobs {
		got := Sanitize(ir.FromBytes(b))
		dec, err := base64.StdEncoding.DecodeString(got.String)
		if err != nil {
			t.Fatalf("decode %q: %v", got.String, err)
		}
		if string(dec) != string(b) {
			t.Errorf("round trip %v -> %q -> %v", b, got.String, dec)
		}
	}
}

func TestSanitizeTimeZonePolicy(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	in := ir.FromTime(time.Date(2024, 1, 15, 5, 30, 0, 0, est))

	got := Sanitize(in)
	if got.String != "2024-01-15T10:30:00Z" {
		t.Errorf("default policy = %q, want UTC-converted", got.String)
	}

	got = Sanitize(in, KeepZone(true))
	if got.String != "2024-01-15T05:30:00-05:00" {
		t.Errorf("KeepZone = %q, want original offset", got.String)
	}
}

func TestSanitizeDeterministicTime(t *testing.T) {
	in := ir.FromTime(mustDate("2024-06-01T00:00:00+02:00"))
	a := Sanitize(in)
	b := Sanitize(in)
	if a.String != b.String {
		t.Errorf("formatting drifted: %q vs %q", a.String, b.String)
	}
}

func TestSanitizeSubSecondTruncated(t *testing.T) {
	in := ir.FromTime(time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC))
	got := Sanitize(in)
	if got.String != "2024-01-15T10:30:00Z" {
		t.Errorf("got %q, want second precision", got.String)
	}
}

func TestSanitizeUnknownPolicy(t *testing.T) {
	bogus := &ir.Node{Type: ir.Type(99), String: "???"}
	in := ir.FromSlice([]*ir.Node{bogus})

	got := Sanitize(in)
	if got.Values[0].Type != ir.Type(99) {
		t.Errorf("PassUnknown changed node type to %v", got.Values[0].Type)
	}

	got = Sanitize(in, UnknownPolicy(StringifyUnknown))
	if got.Values[0].Type != ir.StringType {
		t.Errorf("StringifyUnknown produced %v, want String", got.Values[0].Type)
	}
}
