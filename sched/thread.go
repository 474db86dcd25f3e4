package sched

import "github.com/LayerZero-Labs/ZeroOS/defs"
import "github.com/LayerZero-Labs/ZeroOS/riscv"

type Threadstate_t int

const (
	READY Threadstate_t = iota
	RUNNING
	BLOCKED
	EXITED
)

func (ts Threadstate_t) String() string {
	switch ts {
	case READY:
		return "ready"
	case RUNNING:
		return "running"
	case BLOCKED:
		return "blocked"
	case EXITED:
		return "exited"
	}
	return "bad state"
}

// Threadctx_t is the projection of a trap frame the scheduler must preserve
// across a voluntary switch: stack, tls, link and global pointers, plus the
// pending syscall return value. The full frame travels alongside it in the
// TCB; the pair is kept in step by ctxfromframe/ctxtoframe, which are the
// only two places that know which frame slots the projection covers.
type Threadctx_t struct {
	Sp     uintptr
	Tp     uintptr
	Ra     uintptr
	Gp     uintptr
	Retval uintptr
}

func (tc *Threadctx_t) ctxfromframe(tf *riscv.Trapframe_t) {
	tc.Sp = tf[riscv.TF_SP]
	tc.Tp = tf[riscv.TF_TP]
	tc.Ra = tf[riscv.TF_RA]
	tc.Gp = tf[riscv.TF_GP]
	tc.Retval = tf[riscv.TF_A0]
}

func (tc *Threadctx_t) ctxtoframe(tf *riscv.Trapframe_t) {
	tf[riscv.TF_SP] = tc.Sp
	tf[riscv.TF_TP] = tc.Tp
	tf[riscv.TF_RA] = tc.Ra
	tf[riscv.TF_GP] = tc.Gp
	tf[riscv.TF_A0] = tc.Retval
}

// Tcb_t is one thread's bookkeeping record. Tid is immutable after creation.
// Futexaddr is nonzero exactly while the thread is BLOCKED on that address.
type Tcb_t struct {
	Tid           defs.Tid_t
	State         Threadstate_t
	Trapframe     riscv.Trapframe_t
	Ctx           Threadctx_t
	Savedpc       uintptr
	Futexaddr     uintptr
	Clearchildtid uintptr
}
