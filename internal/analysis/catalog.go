// File: internal/analysis/catalog.go
package analysis

import (
	"fmt"
	"regexp"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// CatalogEntry associates one area with the ordered list of shortlog
// prefix patterns that belong to it. Patterns are case-insensitive
// regular expressions matched against the complete normalized prefix,
// never a substring of it.
type CatalogEntry struct {
	Area     schemas.Area
	Patterns []string
}

// rule is one compiled (pattern, area) pair of the flattened catalog.
type rule struct {
	re   *regexp.Regexp
	raw  string
	area schemas.Area
}

// Catalog is the immutable classification table mapping shortlog prefixes
// to areas. It is constructed once at startup and passed in explicitly;
// there is no package-level mutable table.
type Catalog struct {
	areas []schemas.Area
	rules []rule
}

// NewCatalog compiles the entries into a catalog. The flattened table
// keeps entry order, and classification takes the first full match in
// that order, which makes resolution deterministic. Construction fails
// if the same pattern string appears under two different areas, since
// such a catalog could never resolve that prefix unambiguously.
func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	c := &Catalog{}
	owner := make(map[string]schemas.Area)
	for _, e := range entries {
		c.areas = append(c.areas, e.Area)
		for _, p := range e.Patterns {
			if prev, ok := owner[p]; ok && prev != e.Area {
				return nil, fmt.Errorf("pattern %q claimed by both %q and %q", p, prev, e.Area)
			}
			owner[p] = e.Area
			re, err := regexp.Compile(`(?i)\A(?:` + p + `)\z`)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q for area %q: %w", p, e.Area, err)
			}
			c.rules = append(c.rules, rule{re: re, raw: p, area: e.Area})
		}
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables known to be valid.
func MustCatalog(entries []CatalogEntry) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Areas returns the catalog's areas in declaration order.
func (c *Catalog) Areas() []schemas.Area {
	out := make([]schemas.Area, len(c.areas))
	copy(out, c.areas)
	return out
}

// Has reports whether the area is part of the catalog.
func (c *Catalog) Has(area schemas.Area) bool {
	for _, a := range c.areas {
		if a == area {
			return true
		}
	}
	return false
}

// Classify maps a shortlog to its area. The second return value is false
// when the shortlog carries no recognizable area prefix; that is not an
// error, callers collect such commits and report them in bulk.
func (c *Catalog) Classify(shortlog string) (schemas.Area, bool) {
	prefix, ok := areaPrefix(shortlog)
	if !ok {
		return "", false
	}
	for _, r := range c.rules {
		if r.re.MatchString(prefix) {
			return r.area, true
		}
	}
	return "", false
}

// builtinEntries is the default area table. Keep it sorted alphabetically
// by area.
var builtinEntries = []CatalogEntry{
	{"Arches", []string{
		`arch(/.*)?`, `arc(/.*)?`, `arm(/.*)?`, `esp32(/.*)?`,
		`native(/.*)?`, `nios2(/.*)?`, `posix(/.*)?`, `lpc(/.*)?`,
		`riscv32(/.*)?`, `soc(/.*)?`, `x86(/.*)?`, `xtensa(/.*)?`,
	}},
	{"Bluetooth", []string{`bluetooth`}},
	{"Boards", []string{`boards?(/.*)?`}},
	{"Build", []string{
		`build`, `cmake`, `kconfig`, `size_report`, `gen_syscall_header`,
		`gen_isr_tables?`, `ld`, `linker`, `toolchain`,
	}},
	{"Continuous Integration", []string{`ci`, `coverage`, `sanitycheck`, `gitlint`}},
	{"Cryptography", []string{`crypto`, `mbedtls`}},
	{"Documentation", []string{`docs?(/.*)?`, `CONTRIBUTING\.rst`, `doxygen`}},
	{"Device Tree", []string{`dts(/.*)?`, `dt-bindings`, `extract_dts_includes?`}},
	{"Drivers", []string{
		`drivers?(/.*)?`,
		`adc`, `aio`, `clock_control`, `counter`, `crc`,
		`device([.]h)?`, `display`, `dma`, `entropy`, `eth`, `ethernet`,
		`flash`, `gpio`, `grove`, `hid`, `i2c`, `i2s`,
		`interrupt_controller`, `ipm`, `led_strip`, `led`, `netusb`,
		`pci`, `pinmux`, `pwm`, `rtc`, `sensors?(/.*)?`, `serial`,
		`shared_irq`, `spi`, `timer`, `uart`, `uart_pipe`, `usb`,
		`watchdog`,
		// Technically in subsys/ (or parts are), but treated as drivers.
		`console`, `random`, `storage`,
	}},
	{"External", []string{`ext(/.*)?`, `hal`, `stm32cube`}},
	{"Firmware Update", []string{`dfu`, `mgmt`}},
	{"Kernel", []string{`kernel(/.*)?`, `poll`, `mempool`, `syscalls`, `work_q`, `init\.h`}},
	{"Libraries", []string{`libc?`, `json`, `ring_buffer`}},
	{"Maintainers", []string{`CODEOWNERS([.]rst)?`}},
	{"Miscellaneous", []string{`misc`, `release`, `shell`, `printk`, `version`}},
	{"Networking", []string{`net(/.*)?`, `openthread`, `slip`}},
	{"Samples", []string{`samples?(/.*)?`}},
	{"Scripts", []string{
		`scripts?(/.*)?`, `runner`, `gen_syscalls\.py`,
		`gen_syscall_header\.py`, `kconfiglib`,
	}},
	{"Storage", []string{`fs`, `disks?`, `fcb`}},
	{"Testing", []string{`tests?(/.*)?`, `testing`, `unittest`, `ztest`}},
}

// DefaultCatalog returns the built-in area catalog.
func DefaultCatalog() *Catalog {
	return MustCatalog(builtinEntries)
}
