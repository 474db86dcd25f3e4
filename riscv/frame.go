// Package riscv defines the trap frame layout and cause decoding for the
// riscv machine-mode trap path.
//
// The assembly trap vector owns the other half of the contract: on entry it
// pushes a frame on the trapped stack, stores every integer register before
// clobbering it (ra is parked in mscratch so the very first store has a free
// scratch register), copies mepc/mstatus/mcause/mtval out of the CSRs, and
// calls the Go handler with the frame address in a0. On exit it restores the
// CSRs first, then every register from the (possibly rewritten) frame, ending
// with the frame-pointer register itself, and issues mret. Nothing in Go may
// assume more than this: one frame per trap, on the trapped stack, rewritten
// in place to redirect the return.
package riscv

// Frame slot indices. The order must match the assembly save sequence: the 31
// integer registers other than x0, then the four trap CSRs.
const (
	TFREGS = 31

	TF_RA  = 0
	TF_SP  = 1
	TF_GP  = 2
	TF_TP  = 3
	TF_T0  = 4
	TF_T1  = 5
	TF_T2  = 6
	TF_S0  = 7
	TF_S1  = 8
	TF_A0  = 9
	TF_A1  = 10
	TF_A2  = 11
	TF_A3  = 12
	TF_A4  = 13
	TF_A5  = 14
	TF_A6  = 15
	TF_A7  = 16
	TF_S2  = 17
	TF_S3  = 18
	TF_S4  = 19
	TF_S5  = 20
	TF_S6  = 21
	TF_S7  = 22
	TF_S8  = 23
	TF_S9  = 24
	TF_S10 = 25
	TF_S11 = 26
	TF_T3  = 27
	TF_T4  = 28
	TF_T5  = 29
	TF_T6  = 30

	TF_MEPC    = TFREGS
	TF_MSTATUS = TFREGS + 1
	TF_MCAUSE  = TFREGS + 2
	TF_MTVAL   = TFREGS + 3

	// one pad word keeps the frame size a multiple of 16, which the calling
	// convention requires of anything pushed on the stack.
	TFSIZE = TFREGS + 5
)

type Trapframe_t [TFSIZE]uintptr

// Sysno returns the syscall number register (a7).
func (tf *Trapframe_t) Sysno() int {
	return int(tf[TF_A7])
}

// Arg returns syscall argument n (a0-a5); arguments past the fifth read as 0.
func (tf *Trapframe_t) Arg(n int) uintptr {
	if n < 0 || n > 5 {
		return 0
	}
	return tf[TF_A0+n]
}

// Setret stores a syscall result in the return-value register (a0).
func (tf *Trapframe_t) Setret(ret int) {
	tf[TF_A0] = uintptr(ret)
}
