package kernel

import "github.com/LayerZero-Labs/ZeroOS/riscv"

// Trap is the handler body the trap vector calls with the saved frame. For a
// syscall it advances mepc past the ecall, checkpoints the trapped thread,
// dispatches, and reconciles the frame with whichever thread the dispatch
// left current; the vector then restores the frame verbatim, so any thread
// switch has already happened by rewriting the frame in place. Unhandled
// exceptions end the process with the cause code; interrupts are ignored
// (nothing here enables one).
func (k *Kernel_t) Trap(tf *riscv.Trapframe_t) {
	t := riscv.Decode(tf[riscv.TF_MCAUSE])
	if t.Interrupt {
		return
	}
	switch t.Exc {
	case riscv.EXC_UENVCALL, riscv.EXC_SENVCALL, riscv.EXC_MENVCALL:
		tf[riscv.TF_MEPC] += 4
		k.Sched.Updateframe(tf, tf[riscv.TF_MEPC])
		k.Syscall(tf)
		k.Sched.Finishtrap(tf, &tf[riscv.TF_MEPC])
	case riscv.EXC_BREAKPOINT:
		tf[riscv.TF_MEPC] += k.instrlen(tf[riscv.TF_MEPC])
	default:
		k.host.Exit(int(t.Exc))
	}
}

// instrlen sizes the instruction at pc: the low two bits of the first
// halfword are 11 for a full 4-byte instruction, anything else is a 2-byte
// compressed one.
func (k *Kernel_t) instrlen(pc uintptr) uintptr {
	if k.m.Readu16(pc)&0x3 == 0x3 {
		return 4
	}
	return 2
}

// the assembly vector can only call a package-level function, and passes the
// frame by address
var kern *Kernel_t

func Setkernel(k *Kernel_t) {
	kern = k
}

//export kerneltrap
func Kerneltrap(framepa uintptr) {
	kern.Trap(riscv.Framecast(framepa))
}
