// Package sched is the cooperative thread scheduler: a fixed table of thread
// control blocks multiplexed over the single hart. Threads run until they
// trap; the only scheduling points are the syscalls that yield, block, spawn
// or exit. All mutation happens inside the trap handler with traps unable to
// nest, so nothing here is locked.
package sched

import "github.com/LayerZero-Labs/ZeroOS/defs"
import "github.com/LayerZero-Labs/ZeroOS/htif"
import "github.com/LayerZero-Labs/ZeroOS/mem"
import "github.com/LayerZero-Labs/ZeroOS/riscv"

// Sched_t owns the thread table. Slots are append-only: an exited thread
// keeps its slot for the life of the process, so a slot index identifies the
// same thread forever and the ready scan just skips the dead.
type Sched_t struct {
	threads  [defs.MAXTHREADS]Tcb_t
	nthreads int
	curidx   int
	nexttid  defs.Tid_t

	// the TCB that was current when the trap fired; set by Updateframe,
	// consumed exactly once by Finishtrap.
	lasttrap *Tcb_t

	m    mem.Mem_i
	host *htif.Htif_t
}

func Mksched(m mem.Mem_i, host *htif.Htif_t) *Sched_t {
	return &Sched_t{nexttid: 1, m: m, host: host}
}

// Current returns the running thread's TCB, or nil before the first spawn
// materializes the thread table.
func (s *Sched_t) Current() *Tcb_t {
	if s.curidx < s.nthreads {
		return &s.threads[s.curidx]
	}
	return nil
}

func (s *Sched_t) Threadcount() int {
	return s.nthreads
}

// Tidor1 treats an uninitialized scheduler as a single implicit main thread.
func (s *Sched_t) Tidor1() int {
	if tcb := s.Current(); tcb != nil {
		return int(tcb.Tid)
	}
	return 1
}

// Bytid returns the TCB with the given tid. Exited threads are still found;
// they never leave the table.
func (s *Sched_t) Bytid(tid defs.Tid_t) *Tcb_t {
	for i := 0; i < s.nthreads; i++ {
		if s.threads[i].Tid == tid {
			return &s.threads[i]
		}
	}
	return nil
}

// findready scans slots start..end then wraps, returning the first READY
// slot. Round-robin order is slot order, full stop: a thread's turn comes
// when the scan reaches its slot, regardless of when it became READY.
func (s *Sched_t) findready(start int) (int, bool) {
	for i := start; i < s.nthreads; i++ {
		if s.threads[i].State == READY {
			return i, true
		}
	}
	for i := 0; i < start; i++ {
		if s.threads[i].State == READY {
			return i, true
		}
	}
	return 0, false
}

// Yield demotes the current thread to READY and promotes the next READY slot
// to RUNNING. With no other runnable thread the current one is reinstated
// and the call is a no-op. The pending return value is zeroed first so a
// yielding thread resumes seeing success.
func (s *Sched_t) Yield() {
	if tcb := s.Current(); tcb != nil {
		tcb.Ctx.Retval = 0
	}
	if s.nthreads == 0 {
		return
	}

	cur := &s.threads[s.curidx]
	if cur.State == RUNNING {
		cur.State = READY
	}

	nidx, ok := s.findready((s.curidx + 1) % s.nthreads)
	if !ok {
		// nobody else to run; take the CPU back
		if cur.State == READY {
			cur.State = RUNNING
		}
		return
	}
	if nidx == s.curidx {
		cur.State = RUNNING
		return
	}
	s.threads[nidx].State = RUNNING
	s.curidx = nidx
}

// Spawnthread creates a thread whose registers are seeded from the parent's
// trap frame, with its own stack and tls and a zero return value, so the
// child wakes up believing it just returned 0 from the spawning syscall. The
// parent's pending return value becomes the child's tid. The very first call
// also materializes the calling context as thread 1.
func (s *Sched_t) Spawnthread(parent *riscv.Trapframe_t, stack, tls, ctidptr, pc uintptr) int {
	if s.nthreads == 0 {
		main := &s.threads[0]
		main.Tid = 1
		main.State = RUNNING
		main.Trapframe = *parent
		main.Ctx.ctxfromframe(&main.Trapframe)
		main.Savedpc = pc
		s.nthreads = 1
		s.curidx = 0
		s.nexttid = 2
	}

	if s.nthreads >= defs.MAXTHREADS {
		return int(-defs.EPERM)
	}

	newtid := s.nexttid
	s.nexttid++
	// the stack pointer must be 16-byte aligned at entry
	stackbase := stack &^ 0xf

	child := &s.threads[s.nthreads]
	s.nthreads++

	*child = Tcb_t{Tid: newtid, State: READY, Savedpc: pc, Clearchildtid: ctidptr}
	child.Trapframe = *parent
	child.Ctx.ctxfromframe(&child.Trapframe)
	child.Ctx.Sp = stackbase
	child.Ctx.Tp = tls
	child.Ctx.Retval = 0
	child.Ctx.ctxtoframe(&child.Trapframe)
	child.Trapframe[riscv.TF_S0] = stackbase

	if parenttcb := s.Current(); parenttcb != nil {
		parenttcb.Ctx.Retval = uintptr(newtid)
	}

	return int(newtid)
}

// Waitaddr is futex wait: block the current thread on addr, but only if the
// 32-bit value there still equals expected. The value check is the race
// window closer, not an error path; callers are expected to retry on
// -EAGAIN. A single-thread process is refused with -EDEADLK since nobody
// could ever wake it.
func (s *Sched_t) Waitaddr(addr uintptr, expected int32) int {
	if int32(s.m.Readu32(addr)) != expected {
		if tcb := s.Current(); tcb != nil {
			ret := -int(defs.EAGAIN)
			tcb.Ctx.Retval = uintptr(ret)
		}
		return -int(defs.EAGAIN)
	}
	if s.nthreads <= 1 {
		if tcb := s.Current(); tcb != nil {
			ret := -int(defs.EDEADLK)
			tcb.Ctx.Retval = uintptr(ret)
		}
		return -int(defs.EDEADLK)
	}

	// the 0 recorded here is what the thread observes when it resumes after
	// a wake, however many traps later that is
	tcb := s.Current()
	tcb.Ctx.Retval = 0
	tcb.State = BLOCKED
	tcb.Futexaddr = addr
	s.Yield()
	return 0
}

// Wakeaddr is futex wake: make READY up to maxcount threads blocked on addr,
// in slot order, and return how many. Slot order is a deliberate tie-break
// (table insertion order), not FIFO by block time.
func (s *Sched_t) Wakeaddr(addr uintptr, maxcount int) int {
	woken := s.wakefutex(addr, maxcount)
	if tcb := s.Current(); tcb != nil {
		tcb.Ctx.Retval = uintptr(woken)
	}
	return woken
}

func (s *Sched_t) wakefutex(addr uintptr, maxcount int) int {
	woken := 0
	for i := 0; i < s.nthreads && woken < maxcount; i++ {
		tcb := &s.threads[i]
		if tcb.State == BLOCKED && tcb.Futexaddr == addr {
			tcb.State = READY
			tcb.Futexaddr = 0
			woken++
		}
	}
	return woken
}

// Settidaddr stores the clear-on-exit address for the current thread and
// returns its tid, per set_tid_address.
func (s *Sched_t) Settidaddr(ctidptr uintptr) int {
	tcb := s.Current()
	if tcb == nil {
		return 0
	}
	tcb.Clearchildtid = ctidptr
	return int(tcb.Tid)
}

// Exitcurrent marks the current thread EXITED and picks the next runnable
// one; the dead thread is never resumed. A nonzero clear_child_tid is zeroed
// and every thread blocked on it is woken, which is the whole join
// mechanism. The main thread exiting ends the process through the host
// interface instead of scheduling.
func (s *Sched_t) Exitcurrent(code int) int {
	tcb := s.Current()
	if tcb == nil {
		s.host.Exit(code)
		return 0
	}

	tcb.State = EXITED
	if ctid := tcb.Clearchildtid; ctid != 0 {
		s.m.Writeu32(ctid, 0)
		s.wakefutex(ctid, s.nthreads)
	}

	if tcb.Tid == 1 {
		s.host.Exit(code)
		return 0
	}

	if nidx, ok := s.findready((s.curidx + 1) % s.nthreads); ok {
		s.threads[nidx].State = RUNNING
		s.curidx = nidx
	}
	return 0
}
