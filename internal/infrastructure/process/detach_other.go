//go:build !unix

package process

import "os/exec"

func detach(cmd *exec.Cmd) {}
