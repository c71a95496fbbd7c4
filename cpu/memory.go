package cpu

const (
	MEMORY_SIZE = 256 // Addressable bytes.
)

// Memory is the flat LS-8 address space. Addresses are 8 bits wide, so
// every address computation wraps modulo MEMORY_SIZE.
type Memory [MEMORY_SIZE]uint8

// Read the byte at addr.
func (mem *Memory) Read(addr uint8) uint8 {
	return mem[addr]
}

// Write value to addr.
func (mem *Memory) Write(addr uint8, value uint8) {
	mem[addr] = value
}

// Load copies data into memory starting at addr, wrapping past the top.
func (mem *Memory) Load(addr uint8, data []uint8) {
	for _, value := range data {
		mem[addr] = value
		addr++
	}
}

// Reset zeroes memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
