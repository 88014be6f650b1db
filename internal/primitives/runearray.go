package primitives

// RuneArray is the set of rune array types a CopyString can be backed by.
// The array length is the capacity, fixed at compile time.
type RuneArray interface {
	~[1]rune | ~[2]rune | ~[3]rune | ~[4]rune | ~[5]rune | ~[6]rune | ~[7]rune | ~[8]rune |
		~[9]rune | ~[10]rune | ~[11]rune | ~[12]rune | ~[13]rune | ~[14]rune | ~[15]rune | ~[16]rune |
		~[17]rune | ~[18]rune | ~[19]rune | ~[20]rune | ~[21]rune | ~[22]rune | ~[23]rune | ~[24]rune |
		~[25]rune | ~[26]rune | ~[27]rune | ~[28]rune | ~[29]rune | ~[30]rune | ~[31]rune | ~[32]rune |
		~[48]rune | ~[64]rune | ~[80]rune | ~[96]rune | ~[128]rune | ~[255]rune | ~[256]rune |
		~[512]rune | ~[1024]rune
}
