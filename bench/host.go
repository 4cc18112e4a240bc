// SPDX-License-Identifier: MIT

package bench

import (
	"log/slog"
	"runtime"
	"slices"
	"unsafe"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// l1DataBytes is the L1 data cache size assumed when choosing a block edge.
// x/sys/cpu does not expose cache sizes; 32 KiB holds on every mainstream
// x86-64 and arm64 core.
const l1DataBytes = 32 << 10

// Host describes the machine a sweep runs on. It is logged at the start of
// every run so result tables can be matched to their hardware.
type Host struct {
	GOOS      string
	GOARCH    string
	CPUs      int
	MaxProcs  int
	CacheLine int      // bytes
	Features  []string // SIMD extensions relevant to float64 kernels
}

// DescribeHost probes the current machine.
func DescribeHost() Host {
	x86 := map[string]bool{
		"sse2":    cpu.X86.HasSSE2,
		"avx":     cpu.X86.HasAVX,
		"avx2":    cpu.X86.HasAVX2,
		"fma":     cpu.X86.HasFMA,
		"avx512f": cpu.X86.HasAVX512F,
	}
	arm := map[string]bool{
		"asimd": cpu.ARM64.HasASIMD,
		"fphp":  cpu.ARM64.HasFPHP,
		"sve":   cpu.ARM64.HasSVE,
	}
	present := func(_ string, ok bool) bool { return ok }
	features := lo.Keys(lo.PickBy(x86, present), lo.PickBy(arm, present))
	slices.Sort(features)

	return Host{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		MaxProcs:  runtime.GOMAXPROCS(0),
		CacheLine: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Features:  features,
	}
}

// LogValue implements slog.LogValuer.
func (h Host) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("os", h.GOOS),
		slog.String("arch", h.GOARCH),
		slog.Int("cpus", h.CPUs),
		slog.Int("gomaxprocs", h.MaxProcs),
		slog.Int("cache_line", h.CacheLine),
		slog.Any("features", h.Features),
	)
}

// DefaultBlockSize returns the largest block edge, in elements, such that the
// three block×block float64 tiles of one cube fit in L1 and the edge is a
// whole number of cache lines.
func (h Host) DefaultBlockSize() int {
	step := max(h.CacheLine/8, 1)
	block := step
	for 3*(block+step)*(block+step)*8 <= l1DataBytes {
		block += step
	}
	return block
}
