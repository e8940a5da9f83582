//go:build tools
// +build tools

package jobsets

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
