package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayreloc/instance"
)

func newGenerateCmd() *cobra.Command {
	var (
		stacks, tiers int
		seed          int64
		output        string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random full bay",
		Long: `Generate writes a bay of --stacks stacks, each --tiers high, holding
blocks 1..stacks*tiers in uniformly random positions.

    $ bayreloc generate -m 6 --tiers 4 -o data/bay6x4.dat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			in, err := instance.Generate(stacks, tiers, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer f.Close()
				w = f
			}
			if err = instance.Write(w, in); err != nil {
				return err
			}
			log.WithFields(log.Fields{"stacks": stacks, "tiers": tiers, "seed": seed}).
				Debugf("random bay of size %d x %d generated", stacks, tiers)
			return nil
		},
	}

	cmd.Flags().IntVarP(&stacks, "stacks", "m", 3, "number of stacks")
	cmd.Flags().IntVar(&tiers, "tiers", 3, "blocks per stack")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
