// Package kernel ties the trap path together: cause classification, syscall
// dispatch, and the scheduler calls that make traps the only scheduling
// points.
package kernel

import "github.com/LayerZero-Labs/ZeroOS/htif"
import "github.com/LayerZero-Labs/ZeroOS/mem"
import "github.com/LayerZero-Labs/ZeroOS/sched"

type Kernel_t struct {
	Sched *sched.Sched_t
	m     mem.Mem_i
	host  *htif.Htif_t
}

func Mkkernel(m mem.Mem_i, host *htif.Htif_t) *Kernel_t {
	return &Kernel_t{
		Sched: sched.Mksched(m, host),
		m:     m,
		host:  host,
	}
}
