package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkginfo-tools/plcat/encode"
	"github.com/pkginfo-tools/plcat/ir"
	"github.com/pkginfo-tools/plcat/sanitize"

	"github.com/scott-cotton/cli"
)

// demoTree builds a package-info tree with every value kind that breaks
// generic yaml emission: dates, raw data and path objects, nested at
// several depths.
func demoTree() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("name"), Val: ir.FromString("SetDisplayResolution")},
		{Key: ir.FromString("version"), Val: ir.FromString("15.6.1")},
		{Key: ir.FromString("catalogs"), Val: ir.FromSlice([]*ir.Node{
			ir.FromString("testing"),
			ir.FromString("production"),
		})},
		{Key: ir.FromString("category"), Val: ir.FromString("Utilities")},
		{Key: ir.FromString("display_name"), Val: ir.FromString("Set Display Resolution")},
		{Key: ir.FromString("installer_item_location"),
			Val: ir.FromString("prefs/curriculum/SetDisplayResolution-15.6.1.pkg")},
		{Key: ir.FromString("installer_item_size"), Val: ir.FromInt(73456)},
		{Key: ir.FromString("install_date"), Val: ir.FromTime(time.Now())},
		{Key: ir.FromString("receipt_data"), Val: ir.FromBytes([]byte("binary_data_here"))},
		{Key: ir.FromString("package_path"), Val: ir.FromPath("/path/to/package.pkg")},
		{Key: ir.FromString("complex_metadata"), Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("creation_date"),
				Val: ir.FromTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))},
			{Key: ir.FromString("binary_info"), Val: ir.FromBytes([]byte("more_binary_data"))},
			{Key: ir.FromString("nested_structure"), Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("timestamp"), Val: ir.FromTime(time.Now())},
				{Key: ir.FromString("data_blob"), Val: ir.FromBytes([]byte("nested_binary"))},
			})},
		})},
	})
}

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		cfg.Demo.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	r := cfg.reporter(cc.Out)
	raw := demoTree()

	r.Section("raw emission of SetDisplayResolution-15.6.1")
	rawErr := encode.Encode(raw, io.Discard, cfg.encOpts()...)
	if rawErr == nil {
		r.OK("tree is already safe, nothing to demonstrate")
		return nil
	}
	if !errors.Is(rawErr, encode.ErrUnsafe) {
		return rawErr
	}
	r.Failf("%v", rawErr)

	safe := sanitize.Sanitize(raw, cfg.sanOpts()...)
	r.Section("value kinds before and after sanitizing")
	r.Diff(kindListing(raw), kindListing(safe))

	r.Section("sanitized emission")
	if err := encode.Encode(safe, cc.Out, cfg.encOpts()...); err != nil {
		r.Failf("%v", err)
		r.Summary()
		return cli.ExitCodeErr(1)
	}
	r.OK("every date, data blob and path emitted as a plain string")
	r.Summary()
	return nil
}

// kindListing renders one "path: Kind" line per leaf, for diffing.
func kindListing(n *ir.Node) string {
	var b strings.Builder
	var walk func(n *ir.Node, path string)
	walk = func(n *ir.Node, path string) {
		switch n.Type {
		case ir.ObjectType:
			for i := range n.Fields {
				walk(n.Values[i], path+"."+n.Fields[i].String)
			}
		case ir.ArrayType:
			for i, v := range n.Values {
				walk(v, fmt.Sprintf("%s[%d]", path, i))
			}
		default:
			fmt.Fprintf(&b, "%s: %s\n", path, n.Type)
		}
	}
	walk(n, "$")
	return b.String()
}
