// SPDX-License-Identifier: MPL-2.0

package main

import cmd "jdkprobe/cmd/jdkprobe"

func main() {
	cmd.Execute()
}
