// SPDX-License-Identifier: MPL-2.0

package main

import cmd "vintage-cli/cmd/vintage"

func main() {
	cmd.Execute()
}
