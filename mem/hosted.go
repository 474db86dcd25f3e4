package mem

// Hostedmem_t is a byte-granular sparse memory for hosted runs, where guest
// addresses must not touch the host address space. Unwritten bytes read as
// zero. Values are little-endian, matching the target.
type Hostedmem_t struct {
	bytes map[uintptr]uint8
}

func Mkhostedmem() *Hostedmem_t {
	return &Hostedmem_t{bytes: make(map[uintptr]uint8)}
}

func (hm *Hostedmem_t) read(addr uintptr, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(hm.bytes[addr+uintptr(i)]) << (8 * uint(i))
	}
	return v
}

func (hm *Hostedmem_t) write(addr uintptr, v uint64, n int) {
	for i := 0; i < n; i++ {
		hm.bytes[addr+uintptr(i)] = uint8(v >> (8 * uint(i)))
	}
}

func (hm *Hostedmem_t) Readu16(addr uintptr) uint16 {
	return uint16(hm.read(addr, 2))
}

func (hm *Hostedmem_t) Readu32(addr uintptr) uint32 {
	return uint32(hm.read(addr, 4))
}

func (hm *Hostedmem_t) Writeu32(addr uintptr, v uint32) {
	hm.write(addr, uint64(v), 4)
}

func (hm *Hostedmem_t) Writeu64(addr uintptr, v uint64) {
	hm.write(addr, v, 8)
}

func (hm *Hostedmem_t) Readu64(addr uintptr) uint64 {
	return hm.read(addr, 8)
}
