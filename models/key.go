package models

type DecryptionKey struct {
	Key    []byte `json:"key"`    // derived key for AES decryption
	IV     []byte `json:"iv"`     // session initialization vector
	Method string `json:"method"` // e.g., "AES-192-CBC"
}
