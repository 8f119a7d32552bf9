// Command cldrgen compiles a directory of locale data files into a Go
// source file: a locale table with one dispatch arm per known locale.
//
// Typical use, regenerating the table shipped with the cldr package:
//
//	cldrgen --data data/locales --out pkg/cldr/locales_gen.go
//
// Duplicate locale names in the data directory abort generation with a
// non-zero exit; corrupt data must never produce an artifact.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/localekit/localekit/pkg/cldr"
	"github.com/localekit/localekit/pkg/cldr/codegen"
	"github.com/localekit/localekit/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataDir  string
		outFile  string
		pkgName  string
		funcName string
	)

	cmd := &cobra.Command{
		Use:           "cldrgen",
		Short:         "Compile locale data files into a Go locale table",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			entries, err := cldr.LoadEntries(os.DirFS(dataDir))
			if err != nil {
				return fmt.Errorf("load locale data from %s: %w", dataDir, err)
			}

			src, err := codegen.Generate(entries, codegen.Options{
				PackageName: pkgName,
				FuncName:    funcName,
			})
			if err != nil {
				return fmt.Errorf("generate locale table: %w", err)
			}

			if err := os.WriteFile(outFile, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outFile, err)
			}

			log.Info("locale table generated",
				slog.Int("locales", len(entries)),
				slog.String("out", outFile),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "data/locales", "directory containing locale data files")
	cmd.Flags().StringVar(&outFile, "out", "locales_gen.go", "path of the generated file")
	cmd.Flags().StringVar(&pkgName, "package", "cldr", "package name of the generated file")
	cmd.Flags().StringVar(&funcName, "func", "DefaultTable", "name of the generated table constructor")

	return cmd
}
