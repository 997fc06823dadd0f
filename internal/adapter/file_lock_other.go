//go:build !unix

package adapter

import (
	"os"
	"sync"
)

// Without flock only writers inside this process are serialized.
var fileLockMu sync.Mutex

func lockFile(_ *os.File) error {
	fileLockMu.Lock()
	return nil
}

func unlockFile(_ *os.File) error {
	fileLockMu.Unlock()
	return nil
}
