package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"dog-registry/internal/domain/dogs"
	"dog-registry/internal/platform/config"
	"dog-registry/internal/platform/logger"
)

var newExample = strings.Trim(`
  dogs new --name Rex --breed Corgi
  dogs new --name "" --strict
  DOGS_STRICT=true dogs new --breed Poodle
`, "\n")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(cfg.LoggerOptions())

	if err := newRootCmd(cfg, log, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, log logger.Logger, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "dogs",
		Short:        "Build and validate dog records",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.AddCommand(newDogCmd(cfg, log), newBreedsCmd())
	return root
}

func newDogCmd(cfg config.Config, log logger.Logger) *cobra.Command {
	var (
		name   string
		breed  string
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "new",
		Short:   "Build a dog record (defaults: Fido, Pug)",
		Example: newExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := dogs.ModeLenient
			if strict {
				mode = dogs.ModeStrict
			}
			svc := dogs.NewService(mode, log)

			d, err := svc.Create(createInput(cmd.Flags(), name, breed))
			if err != nil {
				return err
			}

			if asJSON {
				b, err := json.Marshal(d)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", dogs.DefaultName, "dog name (1-25 characters)")
	cmd.Flags().StringVar(&breed, "breed", string(dogs.DefaultBreed), "approved breed")
	cmd.Flags().BoolVar(&strict, "strict", cfg.Strict, "fail on invalid input instead of discarding it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}

// Solo los flags enviados cuentan; el resto usa el default del dominio.
func createInput(fs *pflag.FlagSet, name, breed string) dogs.CreateInput {
	var in dogs.CreateInput
	if fs.Changed("name") {
		in.Name = &name
	}
	if fs.Changed("breed") {
		in.Breed = &breed
	}
	return in
}

func newBreedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "List approved breeds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, b := range dogs.Breeds() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
		},
	}
}
