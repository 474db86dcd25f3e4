package defs

// riscv64 linux syscall numbers for the calls this kernel handles. the
// scheduler family is the only one implemented here; everything else is
// rejected with -ENOSYS by the dispatcher.
const (
	SYS_EXIT            = 93
	SYS_EXIT_GROUP      = 94
	SYS_SET_TID_ADDRESS = 96
	SYS_FUTEX           = 98
	SYS_SCHED_YIELD     = 124
	SYS_GETPID          = 172
	SYS_GETTID          = 178
	SYS_CLONE           = 220
)

// futex ops. the private flag only widens the op encoding; this kernel has a
// single address space so private and shared futexes are the same thing.
const (
	FUTEX_WAIT         = 0
	FUTEX_WAKE         = 1
	FUTEX_PRIVATE_FLAG = 0x80
)
