package models

import "fmt"

// Session identifies the protected asset being unlocked.
type Session struct {
	Token    string
	CourseID int64
	VideoID  int64
}

func (s *Session) baseName() string {
	return fmt.Sprintf("%d_%d", s.CourseID, s.VideoID)
}

// KeyFileName returns the name of the plaintext key
// artifact for the given quality.
func (s *Session) KeyFileName(quality string) string {
	return s.baseName() + "_" + quality + ".key"
}

func (s *Session) ManifestFileName(quality string) string {
	return s.baseName() + "_" + quality + ".m3u8"
}

func (s *Session) MasterFileName() string {
	return s.baseName() + ".m3u8"
}
