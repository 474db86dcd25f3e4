package sched

import "github.com/LayerZero-Labs/ZeroOS/riscv"

// Trap entry and exit are stack-local (one frame per trap) while "current
// thread" is global and can move while the syscall body runs. These two
// calls bracket dispatch and reconcile the two: Updateframe checkpoints the
// trapped thread, Finishtrap notices whether dispatch switched threads and,
// if so, rewrites the live frame so the hardware return resumes the new
// thread instead of the one that trapped.

// Updateframe copies the live frame into the current TCB, records pc as its
// resume address, and remembers the TCB as the trap's entry thread. It must
// run before dispatch, and does nothing until a first spawn has populated
// the thread table.
func (s *Sched_t) Updateframe(tf *riscv.Trapframe_t, pc uintptr) {
	if tf == nil || s.nthreads == 0 {
		return
	}
	tcb := s.Current()
	tcb.Trapframe = *tf
	tcb.Ctx.ctxfromframe(&tcb.Trapframe)
	tcb.Savedpc = pc
	s.lasttrap = tcb
}

// Finishtrap runs after dispatch. The entry thread absorbs whatever dispatch
// wrote into the live frame; then, if dispatch moved "current" to a
// different TCB, that TCB's saved context and resume pc overwrite the live
// frame and *pcp, redirecting the trap return. The entry record is cleared
// unconditionally: one Updateframe pairs with exactly one Finishtrap.
func (s *Sched_t) Finishtrap(tf *riscv.Trapframe_t, pcp *uintptr) {
	if tf == nil {
		return
	}

	entry := s.lasttrap
	cur := s.Current()
	switched := entry != nil && cur != entry

	if entry != nil {
		entry.Trapframe = *tf
		entry.Ctx.ctxfromframe(&entry.Trapframe)
		if pcp != nil {
			entry.Savedpc = *pcp
		}
	}

	if switched && cur != nil {
		cur.Ctx.ctxtoframe(&cur.Trapframe)
		*tf = cur.Trapframe
		if pcp != nil {
			*pcp = cur.Savedpc
		}
	}

	s.lasttrap = nil
}
