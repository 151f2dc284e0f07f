package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/slist/internal/menu"
)

func main() {
	cli.Main(context.Background(), menu.Command{})
}
