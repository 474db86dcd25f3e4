package riscv

import "unsafe"

// The trap vector hands the Go handler nothing but the physical address of
// the frame it pushed. These two functions are the only place that address is
// reinterpreted as a typed frame; everything above them works on *Trapframe_t
// or frame values.

// Framecast returns the trap frame whose first slot is at pa.
func Framecast(pa uintptr) *Trapframe_t {
	return (*Trapframe_t)(unsafe.Pointer(pa))
}

// Frameaddr returns the address of tf's first slot, the value the restore
// path expects in a0.
func Frameaddr(tf *Trapframe_t) uintptr {
	return uintptr(unsafe.Pointer(tf))
}
