// Package mem is the kernel's window onto guest memory. The trap path needs
// exactly four accesses: the 32-bit futex value check, the 32-bit tid stores
// for clone/set_tid_address, the halfword sniff that sizes a trapped
// instruction, and the 64-bit tohost store. Everything goes through Mem_i so
// the scheduler never dereferences a raw guest address itself.
package mem

import "unsafe"

type Mem_i interface {
	Readu16(addr uintptr) uint16
	Readu32(addr uintptr) uint32
	Writeu32(addr uintptr, v uint32)
	Writeu64(addr uintptr, v uint64)
}

// Physmem_t runs on the real machine, where the kernel and the program share
// one flat physical address space and a guest address is just an address.
type Physmem_t struct {
}

func (pm *Physmem_t) Readu16(addr uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(addr))
}

func (pm *Physmem_t) Readu32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

func (pm *Physmem_t) Writeu32(addr uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(addr)) = v
}

func (pm *Physmem_t) Writeu64(addr uintptr, v uint64) {
	*(*uint64)(unsafe.Pointer(addr)) = v
}
