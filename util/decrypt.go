package util

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// DecryptCBC decrypts AES-CBC ciphertext and strips PKCS#7 padding.
// every length or padding failure is reported as ErrDecryption.
func DecryptCBC(ciphertext []byte, key []byte, iv []byte) ([]byte, error) {
	if !IsValidAESKey(key) {
		return nil, fmt.Errorf("%w: invalid key: expected 16, 24 or 32 bytes, got %d", ErrDecryption, len(key))
	}
	if !IsValidIV(iv) {
		return nil, fmt.Errorf("%w: invalid IV: expected 16 bytes, got %d", ErrDecryption, len(iv))
	}
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: no data to decrypt", ErrDecryption)
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: encrypted data length is not a multiple of block size", ErrDecryption)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create AES cipher: %v", ErrDecryption, err)
	}
	mode := cipher.NewCBCDecrypter(block, iv)
	decryptedData := make([]byte, len(ciphertext))
	mode.CryptBlocks(decryptedData, ciphertext)
	unpaddedData, err := removePKCS7Padding(decryptedData)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to remove padding: %v", ErrDecryption, err)
	}
	return unpaddedData, nil
}

// EncryptCBC pads plaintext with PKCS#7 and encrypts it with AES-CBC.
func EncryptCBC(plaintext []byte, key []byte, iv []byte) ([]byte, error) {
	if !IsValidAESKey(key) {
		return nil, fmt.Errorf("invalid key: expected 16, 24 or 32 bytes, got %d", len(key))
	}
	if !IsValidIV(iv) {
		return nil, fmt.Errorf("invalid IV: expected 16 bytes, got %d", len(iv))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	padded := addPKCS7Padding(plaintext, aes.BlockSize)
	encryptedData := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encryptedData, padded)
	return encryptedData, nil
}

func addPKCS7Padding(data []byte, blockSize int) []byte {
	paddingLength := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+paddingLength)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(paddingLength)}, paddingLength)...)
}

// removes PKCS#7 padding from decrypted data
func removePKCS7Padding(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data is empty")
	}
	paddingLength := int(data[len(data)-1])
	if paddingLength == 0 || paddingLength > aes.BlockSize {
		return nil, fmt.Errorf("invalid padding length: %d", paddingLength)
	}
	if paddingLength > len(data) {
		return nil, fmt.Errorf("padding length (%d) exceeds data length (%d)", paddingLength, len(data))
	}
	for i := len(data) - paddingLength; i < len(data); i++ {
		if data[i] != byte(paddingLength) {
			return nil, fmt.Errorf("invalid padding at position %d", i)
		}
	}
	return data[:len(data)-paddingLength], nil
}

func IsValidAESKey(key []byte) bool {
	switch len(key) {
	case 16, 24, 32:
		return true
	}
	return false
}

func IsValidIV(iv []byte) bool {
	return len(iv) == aes.BlockSize
}

// AESMethod names the cipher selected by the key length.
func AESMethod(key []byte) string {
	return fmt.Sprintf("AES-%d-CBC", len(key)*8)
}
