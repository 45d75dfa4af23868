package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Sanitize bool
	Load     bool
	Scan     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Sanitize = boolEnv("PLCAT_DEBUG_SANITIZE")
	d.Load = boolEnv("PLCAT_DEBUG_LOAD")
	d.Scan = boolEnv("PLCAT_DEBUG_SCAN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Sanitize() bool {
	return d.Sanitize
}
func Load() bool {
	return d.Load
}
func Scan() bool {
	return d.Scan
}
