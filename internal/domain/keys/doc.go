// Package keys defines the RSA key material models, their metadata and the
// service contracts for generating keypairs and applying the cipher transforms.
package keys
