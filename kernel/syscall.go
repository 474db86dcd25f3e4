package kernel

import "fmt"

import "github.com/LayerZero-Labs/ZeroOS/defs"
import "github.com/LayerZero-Labs/ZeroOS/riscv"

// Syscall decodes the trapped frame's syscall number and arguments, runs the
// handler, and stores the result in the frame's return-value register. The
// caller must already have advanced mepc past the ecall and checkpointed the
// frame via Updateframe.
func (k *Kernel_t) Syscall(tf *riscv.Trapframe_t) int {
	sysno := tf.Sysno()
	a0 := tf.Arg(0)
	a1 := tf.Arg(1)
	a2 := tf.Arg(2)
	a3 := tf.Arg(3)
	a4 := tf.Arg(4)

	var ret int
	switch sysno {
	case defs.SYS_CLONE:
		ret = k.sys_clone(tf, a0, a1, a2, a3, a4)
	case defs.SYS_FUTEX:
		ret = k.sys_futex(a0, int(a1), a2)
	case defs.SYS_SCHED_YIELD:
		k.Sched.Yield()
		ret = 0
	case defs.SYS_EXIT, defs.SYS_EXIT_GROUP:
		ret = k.Sched.Exitcurrent(int(a0))
	case defs.SYS_SET_TID_ADDRESS:
		ret = k.Sched.Settidaddr(a0)
	case defs.SYS_GETPID, defs.SYS_GETTID:
		ret = k.Sched.Tidor1()
	default:
		fmt.Printf("unsupported syscall %v\n", sysno)
		ret = int(-defs.ENOSYS)
	}
	tf.Setret(ret)
	return ret
}

// clone(flags, stack, parent_tidptr, tls, child_tidptr). flags are accepted
// as given: this kernel only makes threads, so every clone is CLONE_VM-like
// whatever the caller asked for. The child resumes at the parent's post-
// ecall pc with the parent's registers, its own stack/tls, and a0 = 0.
func (k *Kernel_t) sys_clone(tf *riscv.Trapframe_t, flags, stack, ptidptr, tls, ctidptr uintptr) int {
	ret := k.Sched.Spawnthread(tf, stack, tls, ctidptr, tf[riscv.TF_MEPC])
	if ret > 0 {
		if ptidptr != 0 {
			k.m.Writeu32(ptidptr, uint32(ret))
		}
		if ctidptr != 0 {
			k.m.Writeu32(ctidptr, uint32(ret))
		}
	}
	return ret
}

func (k *Kernel_t) sys_futex(addr uintptr, op int, val uintptr) int {
	switch op &^ defs.FUTEX_PRIVATE_FLAG {
	case defs.FUTEX_WAIT:
		return k.Sched.Waitaddr(addr, int32(val))
	case defs.FUTEX_WAKE:
		return k.Sched.Wakeaddr(addr, int(val))
	}
	return int(-defs.ENOSYS)
}
