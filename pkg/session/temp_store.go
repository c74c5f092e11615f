package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// MustTempStore returns a Store backed by a file in a temporary
// directory, and a cleanup function to call when the Store is no
// longer used.
func MustTempStore() (Store, func()) {
	dir, err := os.MkdirTemp("", "lunekit.test")
	if err != nil {
		panic(fmt.Sprintf("failed to make temp dir: %v", err))
	}
	st, err := NewStore(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		panic(fmt.Sprintf("failed to create Store instance: %v", err))
	}
	return st, func() {
		st.Close()
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir:", err)
		}
	}
}
