package crypto

// AlgorithmRSA represents the RSA encryption algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// DefaultPublicExponent is the fixed public exponent e used during key generation.
// 65537 is prime, small enough for fast encryption and large enough to avoid
// known small-exponent attacks against unpadded use.
const DefaultPublicExponent = 65537

// MinModulusBits is the smallest modulus bit-length the key generator accepts.
// Below this the bit-length split leaves no room for two primes.
const MinModulusBits = 4

// MinPrimeSeparationShift is subtracted from the half modulus length to form
// the 2^(nlen/2-shift) minimum separation bound between the two prime factors.
// Primes closer than that admit Fermat-style factorization shortcuts.
const MinPrimeSeparationShift = 100
