// Package htif is the host-target interface: a memory-mapped word the
// hosting simulator polls to observe guest termination.
package htif

import "github.com/LayerZero-Labs/ZeroOS/mem"

type Htif_t struct {
	m      mem.Mem_i
	tohost uintptr
}

func Mkhtif(m mem.Mem_i, tohost uintptr) *Htif_t {
	return &Htif_t{m: m, tohost: tohost}
}

// Exit reports process termination to the host. The low bit marks the write
// as an exit command; the exit code rides in the upper bits.
func (h *Htif_t) Exit(code int) {
	h.m.Writeu64(h.tohost, uint64(code)<<1|1)
}
