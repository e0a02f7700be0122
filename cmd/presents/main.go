// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command presents drives an ordered concurrent set with a populator, a
// retirer and an observer and reports whether every present was
// accounted for. It exits with status 1 when one was not.
package main

import (
	"os"

	"code.hybscloud.com/oset/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
