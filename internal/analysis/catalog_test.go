package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

// TestClassify_BuiltinCatalog pins the classifier against a corpus of
// real shortlogs, including ones that must deliberately stay unknown.
func TestClassify_BuiltinCatalog(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	tests := []struct {
		area     schemas.Area // "" means no resolution expected
		shortlog string
	}{
		{"Arches", "ARM: stm32f0: fix syscfg mapping to fix EXTI config"},
		{"Arches", "x86: mmu: kernel: Validate existing APIs"},
		{"Arches", "arch: x86: fix jailhouse build"},
		{"Arches", "arm: implement API to validate user buffer"},
		{"Arches", "xtensa/asm2: Add a _new_thread implementation for asm2/switch"},
		{"Arches", "esp32: Set CPU pointer on app cpu at startup"},
		{"Bluetooth", "Bluetooth: Mesh: Fix typo in Kconfig help message"},
		{"Boards", "boards: nios2: altera_max10: cleanup board documentation"},
		{"Build", "cmake: Fix the dependency between qemu and the elf file"},
		{"Build", "kconfig: 802154: nrf: Fix kconfig"},
		{"Build", "gen_syscall_header: create dummy handler refs"},
		{"Build", `Revert "cmake: add zephyr_cc_option_nocheck"`},
		{"Build", "gen_isr_tables: Minor refactoring"},
		{"Build", "toolchain: organise toolchain/compiler files"},
		{"Continuous Integration", "sanitycheck: Flush stdout in info()"},
		{"Continuous Integration", "ci: verify author identity"},
		{"Continuous Integration", "coverage: build with -O0 to get more information"},
		{"Continuous Integration", "gitlint: do not allow title-only commit messages"},
		{"Cryptography", "crypto: Update TinyCrypt to 0.2.8"},
		{"Cryptography", "mbedtls: Kconfig: Re-organize to enable choosing an mbedtls impl."},
		{"Device Tree", "include: dt-bindings: stm32_pinctrl: Add ports I, J, K"},
		{"Device Tree", "dts/arm: Move i2c2 node inside stm32fxxx dtsi file"},
		{"Drivers", "drivers: serial: stm32: report only unmasked irq"},
		{"Drivers", "flash: stm32l4x: fix build"},
		{"Drivers", "gpio: Introduce mcux igpio shim driver"},
		{"Drivers", "clock_control: Introduce mcux ccm driver"},
		{"Drivers", "drivers/ieee802154_kw41z: Fix interrupt priority"},
		{"Drivers", "usb: netusb: Use lower addresses for default endpoint config"},
		{"Drivers", "device: cleanup header layout"},
		{"Drivers", "device.h: doc: Refactor to keep documentation infront of impl."},
		{"Drivers", "sensors/lsm5dsl: Fix SPI API usage"},
		{"Drivers", "uart_pipe: re-work the RX function to match the API and work with USB."},
		{"Documentation", "doc/dts: Update to reflect new path locations"},
		{"Documentation", "doxygen: ignore misc/util.h"},
		{"External", "ext: hal: altera: Add Altera HAL README file"},
		{"External", "ext/hal: stm32cube: Update STM32F0 README file"},
		{"Firmware Update", "dfu: replace FLASH_ALIGN with FLASH_WRITE_BLOCK_SIZE"},
		{"Firmware Update", "subsys: mgmt: SMP protocol for mcumgr."},
		{"Storage", "disk: delete the GET_DISK_SIZE IOCTL."},
		{"Storage", "subsys: fcb: Check for mutex lock failure when walking FCB"},
		{"Kernel", "kernel: stack: add -fstack-protector-all without checks"},
		{"Kernel", `Revert "kernel: stack: add -fstack-protector-all without checks"`},
		{"Kernel", "poll: k_poll: Document -EINTR return"},
		{"Kernel", "mempool: add assertion for calloc bounds overflow"},
		{"Kernel", "work_q: Correctly clear pending flag in delayed work queue, update docs"},
		{"Kernel", "init.h: Fix english in comment"},
		{"Libraries", "libc: some architectures do not require baremetal libc"},
		{"Libraries", "lib: move ring_buffer from misc/ to lib/"},
		{"Libraries", "ring_buffer: remove broken object_tracing support"},
		{"Maintainers", "CODEOWNERS: misc updates"},
		{"Maintainers", "CODEOWNERS.rst: misc updates"},
		{"Miscellaneous", "printk: Add padding support to string format specifiers"},
		{"Miscellaneous", "version: fix version handling without extra_version set"},
		{"Networking", "net: if: fix ND reachable calculation"},
		{"Networking", "net/ieee802154: Make RAW mode generic"},
		{"Networking", "openthread: Use ccache when enabled"},
		{"Networking", "slip: fix a bug when in non-TAP mode."},
		{"Samples", "samples: echo_server: Test the nrf build in CI"},
		{"Samples", "samples/xtensa-asm2: Unit test for new Xtensa assembly primitives"},
		{"Scripts", "scripts: runner: nrfjprog: remove BOARD environment requirement"},
		{"Scripts", "runner: nrfjprog: Improve error messages"},
		{"Scripts", "gen_syscalls.py: fix include issue"},
		{"Scripts", "kconfiglib: Update to 2259d353426f1"},
		{"Testing", "tests: use cmake to build object benchmarks"},
		{"Testing", "tests/kernel/mem_protect/userspace: test that _k_neg_eagain is in rodata"},
		{"Testing", "unittest: Support EXTRA_*_FLAGS"},

		// Tree-wide change with no particular area.
		{"", "Introduce cmake-based rewrite of KBuild"},
		// Should have been 'boards: mimxrt1050_evk' or so.
		{"", "mimxrt1050_evk"},
		// Should have been 'arm: _setup_new_thread' or so.
		{"", "_setup_new_thread: fix crash on ARM"},
	}

	for _, tt := range tests {
		t.Run(tt.shortlog, func(t *testing.T) {
			area, ok := catalog.Classify(tt.shortlog)
			if tt.area == "" {
				assert.False(t, ok, "expected no area for %q, got %q", tt.shortlog, area)
				return
			}
			require.True(t, ok, "expected area %q for %q", tt.area, tt.shortlog)
			assert.Equal(t, tt.area, area)
		})
	}
}

// Classification is case-insensitive and recursive: a wrapper namespace
// or a revert marker never changes the resolved area.
func TestClassify_NormalizationEquivalences(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	pairs := [][2]string{
		{"ARM: fix timer rollover", "arm: fix timer rollover"},
		{"subsys: net: fix checksum", "net: fix checksum"},
		{"include: net: add missing header", "net: add missing header"},
		{`Revert "net: add foo"`, "net: add foo"},
		{"subsys: include: net: deeply wrapped", "net: deeply wrapped"},
	}
	for _, p := range pairs {
		a1, ok1 := catalog.Classify(p[0])
		a2, ok2 := catalog.Classify(p[1])
		require.True(t, ok1, "no area for %q", p[0])
		require.True(t, ok2, "no area for %q", p[1])
		assert.Equal(t, a2, a1, "%q and %q should resolve identically", p[0], p[1])
	}
}

func TestNewCatalog_RejectsSharedPattern(t *testing.T) {
	t.Parallel()
	_, err := NewCatalog([]CatalogEntry{
		{"Networking", []string{`net(/.*)?`}},
		{"Drivers", []string{`net(/.*)?`}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claimed by both")
}

func TestNewCatalog_RejectsBadPattern(t *testing.T) {
	t.Parallel()
	_, err := NewCatalog([]CatalogEntry{{"Broken", []string{`(`}}})
	require.Error(t, err)
}

func TestCatalog_AreasAndHas(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	areas := catalog.Areas()
	require.NotEmpty(t, areas)
	assert.Equal(t, schemas.Area("Arches"), areas[0], "catalog should keep declaration order")
	assert.True(t, catalog.Has("Networking"))
	assert.False(t, catalog.Has("Nonsense"))
}

// The same pattern string may appear only under one area, but a prefix is
// allowed to match nothing: full-string matching means substrings never
// resolve.
func TestClassify_FullStringMatchOnly(t *testing.T) {
	t.Parallel()
	catalog := DefaultCatalog()

	_, ok := catalog.Classify("network: not a known prefix")
	assert.False(t, ok, `"network" must not substring-match "net"`)
}
