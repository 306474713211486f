/*
Package lwe is a pure Go implementation of a toy Learning-With-Errors (Regev)
public-key cryptosystem: key generation, bitwise encryption with noise
injection, and threshold-based decryption over a finite modular ring.
It is intended for teaching and experimentation, not for protecting real data;
the arithmetic is not constant-time and the reference parameters do not meet
any cryptographic hardness target.
*/
package lwe
