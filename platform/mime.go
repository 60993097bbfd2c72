//go:build !nomagic
// +build !nomagic

// This requires libmagic, which isn't installed everywhere,
// so this file is not compiled when the flag -tags=nomagic
package platform

import (
	"fmt"
	"github.com/rakyll/magicmime"
	"regexp"
	"sync"
)

var MimeDetectionEnabled = true

// magicMime is the MimeMagic database. We want
// just one copy of this open at a time.
var magicMime *magicmime.Magic

// The underlying libmagic handle is not safe for concurrent use.
var mutex = &sync.Mutex{}

var validMimeType = regexp.MustCompile(`^\w+/[\w\-\.\+]+$`)

func GuessMimeType(absPath string) (mimeType string, err error) {
	mutex.Lock()
	defer mutex.Unlock()
	// Open the Mime Magic DB only once.
	if magicMime == nil {
		magicMime, err = magicmime.New(magicmime.MAGIC_MIME_TYPE)
		if err != nil {
			magicMime = nil
			return "", fmt.Errorf("Error opening MimeMagic database: %v", err)
		}
	}

	// MagicMime sometimes returns an empty string or unprintable
	// characters. Default to application/binary and use the guess
	// only if it looks like a real mime type.
	mimeType = "application/binary"
	guessedType, _ := magicMime.TypeByFile(absPath)
	if guessedType != "" && validMimeType.MatchString(guessedType) {
		mimeType = guessedType
	}
	return mimeType, nil
}
