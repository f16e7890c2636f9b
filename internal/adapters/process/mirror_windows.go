//go:build windows

package process

import "os"

func raise(os.Signal) {}
