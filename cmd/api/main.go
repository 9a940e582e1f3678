package main

import (
	"go.uber.org/fx"

	appfx "github.com/ronaldorededigital/confin/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
