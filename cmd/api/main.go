package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title PawStars API
// @version 1.0
// @description Fortuna diaria y compatibilidad perro-dueño con proveedor de completion y fallback determinístico.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	serve := newServeCmd(&configPath)

	root := &cobra.Command{
		Use:           "pawstars-api",
		Short:         "PawStars HTTP API (fortuna y compatibilidad)",
		SilenceUsage:  true,
		SilenceErrors: false,
		// sin subcomando => serve
		RunE: serve.RunE,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "archivo YAML de configuración (opcional)")

	root.AddCommand(serve)
	root.AddCommand(newZodiacCmd())
	return root
}
