package riscv

import "math/bits"

// Exc_t values are the hardware exception codes from mcause. EXC_UNKNOWN
// stands in for any code this kernel does not recognize.
type Exc_t int

const (
	EXC_IMISALIGNED Exc_t = 0
	EXC_IACCESS     Exc_t = 1
	EXC_ILLEGAL     Exc_t = 2
	EXC_BREAKPOINT  Exc_t = 3
	EXC_LMISALIGNED Exc_t = 4
	EXC_LACCESS     Exc_t = 5
	EXC_SMISALIGNED Exc_t = 6
	EXC_SACCESS     Exc_t = 7
	EXC_UENVCALL    Exc_t = 8
	EXC_SENVCALL    Exc_t = 9
	EXC_MENVCALL    Exc_t = 11
	EXC_IPGFAULT    Exc_t = 12
	EXC_LPGFAULT    Exc_t = 13
	EXC_SPGFAULT    Exc_t = 15
	EXC_UNKNOWN     Exc_t = -1
)

type Intr_t int

const (
	INTR_SSOFT   Intr_t = 1
	INTR_MSOFT   Intr_t = 3
	INTR_STIMER  Intr_t = 5
	INTR_MTIMER  Intr_t = 7
	INTR_SEXT    Intr_t = 9
	INTR_MEXT    Intr_t = 11
	INTR_UNKNOWN Intr_t = -1
)

// Trap_t is a decoded mcause: Exc is meaningful when Interrupt is false, Intr
// when it is true.
type Trap_t struct {
	Interrupt bool
	Exc       Exc_t
	Intr      Intr_t
}

// Decode classifies a raw mcause value. It is total: every possible bit
// pattern decodes, with unrecognized codes mapping to the unknown variant of
// their category.
func Decode(mcause uintptr) Trap_t {
	ibit := uintptr(1) << (bits.UintSize - 1)
	code := mcause &^ ibit
	if mcause&ibit != 0 {
		intr := INTR_UNKNOWN
		switch Intr_t(code) {
		case INTR_SSOFT, INTR_MSOFT, INTR_STIMER, INTR_MTIMER, INTR_SEXT,
			INTR_MEXT:
			intr = Intr_t(code)
		}
		return Trap_t{Interrupt: true, Intr: intr, Exc: EXC_UNKNOWN}
	}
	exc := EXC_UNKNOWN
	switch Exc_t(code) {
	case EXC_IMISALIGNED, EXC_IACCESS, EXC_ILLEGAL, EXC_BREAKPOINT,
		EXC_LMISALIGNED, EXC_LACCESS, EXC_SMISALIGNED, EXC_SACCESS,
		EXC_UENVCALL, EXC_SENVCALL, EXC_MENVCALL, EXC_IPGFAULT,
		EXC_LPGFAULT, EXC_SPGFAULT:
		exc = Exc_t(code)
	}
	return Trap_t{Exc: exc, Intr: INTR_UNKNOWN}
}
