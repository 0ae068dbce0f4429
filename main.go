/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/stackscout/stackscout/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.Root()); err != nil {
		os.Exit(1)
	}
}
