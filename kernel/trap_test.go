package kernel

import "testing"

import "github.com/LayerZero-Labs/ZeroOS/defs"
import "github.com/LayerZero-Labs/ZeroOS/riscv"

func TestKerneltrapEntry(t *testing.T) {
	k, _ := mkkernel()
	Setkernel(k)
	tf := &riscv.Trapframe_t{}
	tf[riscv.TF_MEPC] = 0x1000
	ecall(tf, defs.SYS_GETTID)
	Kerneltrap(riscv.Frameaddr(tf))
	if retof(tf) != 1 {
		t.Errorf("gettid via entry: %v", retof(tf))
	}
	if tf[riscv.TF_MEPC] != 0x1004 {
		t.Errorf("mepc %x", tf[riscv.TF_MEPC])
	}
}
