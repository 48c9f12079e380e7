package util

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrAuth              = &Error{Message: "authorization failed, the session token may be expired"}
	ErrPayloadExtraction = &Error{Message: "player bootstrap payload not found or changed shape"}
	ErrInputFormat       = &Error{Message: "input has an unexpected format"}
	ErrDecryption        = &Error{Message: "decryption failed, wrong key or corrupted ciphertext"}
	ErrManifestParse     = &Error{Message: "decrypted text is not a valid media playlist"}
	ErrIO                = &Error{Message: "failed to write output file"}
	ErrNetwork           = &Error{Message: "network request failed"}
)
