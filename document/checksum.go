package document

// ChecksumAlgorithm identifies the hash algorithm behind a Checksum,
// spelled exactly as the SPDX schema does.
type ChecksumAlgorithm string

const (
	SHA1       ChecksumAlgorithm = "SHA1"
	SHA224     ChecksumAlgorithm = "SHA224"
	SHA256     ChecksumAlgorithm = "SHA256"
	SHA384     ChecksumAlgorithm = "SHA384"
	SHA512     ChecksumAlgorithm = "SHA512"
	MD2        ChecksumAlgorithm = "MD2"
	MD4        ChecksumAlgorithm = "MD4"
	MD5        ChecksumAlgorithm = "MD5"
	MD6        ChecksumAlgorithm = "MD6"
	SHA3_256   ChecksumAlgorithm = "SHA3-256"
	SHA3_384   ChecksumAlgorithm = "SHA3-384"
	SHA3_512   ChecksumAlgorithm = "SHA3-512"
	BLAKE2b256 ChecksumAlgorithm = "BLAKE2b-256"
	BLAKE2b384 ChecksumAlgorithm = "BLAKE2b-384"
	BLAKE2b512 ChecksumAlgorithm = "BLAKE2b-512"
	BLAKE3     ChecksumAlgorithm = "BLAKE3"
	ADLER32    ChecksumAlgorithm = "ADLER32"
)

var checksumAlgorithms = map[ChecksumAlgorithm]struct{}{
	SHA1: {}, SHA224: {}, SHA256: {}, SHA384: {}, SHA512: {},
	MD2: {}, MD4: {}, MD5: {}, MD6: {},
	SHA3_256: {}, SHA3_384: {}, SHA3_512: {},
	BLAKE2b256: {}, BLAKE2b384: {}, BLAKE2b512: {},
	BLAKE3: {}, ADLER32: {},
}

// ParseChecksumAlgorithm matches s against the SPDX checksum algorithm
// set. Matching is exact: algorithm names are uppercase on the wire.
func ParseChecksumAlgorithm(s string) (ChecksumAlgorithm, bool) {
	algorithm := ChecksumAlgorithm(s)
	_, ok := checksumAlgorithms[algorithm]
	return algorithm, ok
}

// Checksum is one hash of a file, package or referenced document.
type Checksum struct {
	// Algorithm identifies the hash algorithm.
	Algorithm ChecksumAlgorithm `json:"algorithm" yaml:"algorithm"`

	// Value is the hex digest, lowercased.
	Value string `json:"checksumValue" yaml:"checksumValue"`
}
