package crc

// Predefined polynomials in reflected form.
const (
	// IEEE is by far the most common CRC-32 polynomial.
	IEEE = 0xedb88320

	// Castagnoli's polynomial, used in iSCSI and LevelDB.
	Castagnoli = 0x82f63b78

	// Koopman's polynomial.
	Koopman = 0xeb31d82e
)

// Table is a 256-word table for the reflected byte-at-a-time algorithm.
// Tables are never modified after construction.
type Table [256]uint32

// MakeTable builds the table for poly. Two tables built from the same
// polynomial are identical.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	for i := range t {
		v := uint32(i)
		for j := 0; j < 8; j++ {
			if v&1 == 1 {
				v = poly ^ (v >> 1)
			} else {
				v >>= 1
			}
		}
		t[i] = v
	}
	return t
}

func update(register uint32, tab *Table, b []byte) uint32 {
	for _, c := range b {
		register = tab[byte(register)^c] ^ (register >> 8)
	}
	return register
}
