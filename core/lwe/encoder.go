package lwe

// BytesToBits expands each byte of data into 8 bits, most-significant bit
// first. The result has exactly 8*len(data) entries in {0, 1}.
func BytesToBits(data []byte) (bits []uint8) {
	bits = make([]uint8, 8*len(data))
	for i, b := range data {
		for j := 0; j < 8; j++ {
			bits[8*i+j] = (b >> (7 - j)) & 1
		}
	}
	return
}

// BitsToBytes packs bits into bytes, 8 bits per byte with the
// most-significant bit first, mirroring [BytesToBits]. An incomplete
// trailing group is padded with zero bits.
func BitsToBytes(bits []uint8) (data []byte) {
	data = make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			data[i/8] |= 1 << (7 - i%8)
		}
	}
	return
}
