// Package crypto defines the core interfaces, constants and errors for textbook RSA
// key generation and the encrypt/decrypt trapdoor transforms, including the
// arbitrary-precision arithmetic capability set the implementations are built against.
package crypto
