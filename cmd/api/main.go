package main

import (
	appfx "Fluxo/internal/fx"

	"go.uber.org/fx"
)

// @title Fluxo API
// @version 1.0
// @description API de controle financeiro pessoal e de pequenos negócios.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @BasePath /api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
