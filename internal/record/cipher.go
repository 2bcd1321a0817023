package record

// XOR returns a[i] ^ b[i] for every i below min(len(a), len(b)).
// The transform is its own inverse: XOR(XOR(s, k), k) == s.
func XOR(a, b []byte) []byte {
	n := min(len(a), len(b))
	out := make([]byte, n)
	for i := range n {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// ExpandKey repeats key until it covers n bytes and truncates the result to
// exactly n bytes. An empty key yields nil.
func ExpandKey(key []byte, n int) []byte {
	if len(key) == 0 || n <= 0 {
		return nil
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = key[i%len(key)]
	}
	return out
}
