package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dlpno/config"
	"github.com/katalvlaran/dlpno/coupling"
	"github.com/katalvlaran/dlpno/energy"
	"github.com/katalvlaran/dlpno/layout"
	"github.com/katalvlaran/dlpno/orbital"
	"github.com/katalvlaran/dlpno/pairs"
	"github.com/katalvlaran/dlpno/refdata"
)

var (
	screenThreshold  float64
	screenWorkers    int
	screenMoleculeID string
	screenMatrix     bool
	screenManifest   string
)

var screenCmd = &cobra.Command{
	Use:   "screen <molecules.json>",
	Short: "Screen the occupied pairs of a stored molecule by coupling strength",
	Long: `screen loads one molecule record from a dataset file, evaluates the
coupling strength C(i,j) of every occupied pair, and retains the pairs
at or above the threshold. Retained pairs print with their canonical
artifact keys so the output lines up with cache directories on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().Float64Var(&screenThreshold, "threshold", config.DefaultCutPairs, "retention cutoff on C(i,j) (Hartree)")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 1, "parallel pair evaluations")
	screenCmd.Flags().StringVar(&screenMoleculeID, "molecule", "", "molecule id inside the dataset (default: first record)")
	screenCmd.Flags().BoolVar(&screenMatrix, "matrix", false, "print the full coupling matrix")
	screenCmd.Flags().StringVar(&screenManifest, "manifest", "", "directory receiving the run manifest")
	rootCmd.AddCommand(screenCmd)
}

func pickMolecule(d *refdata.Dataset, id string) (*refdata.Molecule, error) {
	if id == "" {
		return &d.Molecules[0], nil
	}
	for k := range d.Molecules {
		if d.Molecules[k].ID == id {
			return &d.Molecules[k], nil
		}
	}

	return nil, fmt.Errorf("molecule %q not in dataset", id)
}

func runScreen(cmd *cobra.Command, args []string) error {
	dataset, err := refdata.Load(args[0])
	if err != nil {
		return err
	}
	mol, err := pickMolecule(dataset, screenMoleculeID)
	if err != nil {
		return err
	}
	ints, err := mol.Tensor()
	if err != nil {
		return err
	}
	space, err := orbital.Canonical(mol.NOcc, len(mol.Energies)-mol.NOcc)
	if err != nil {
		return err
	}

	threshold := cfg.ScreeningThreshold()
	if cmd.Flags().Changed("threshold") {
		threshold = screenThreshold
	}
	workers := cfg.Workers()
	if cmd.Flags().Changed("workers") {
		workers = screenWorkers
	}

	logger.Info().
		Str("molecule", mol.ID).
		Str("basis", mol.Basis).
		Int("n_occ", space.NOcc()).
		Int("n_virt", space.NVirt()).
		Float64("threshold", threshold).
		Int("workers", workers).
		Msg("screening occupied pairs")

	opts := pairs.BuildOptions{Ctx: cmd.Context(), Workers: workers}
	set, cov, err := pairs.Build(mol.Energies, ints, mol.NOcc, threshold, &opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "retained %d of %d pairs (%.1f%%)\n", cov.Retained, cov.Candidates, 100*cov.Fraction)
	for _, p := range set {
		c, err := coupling.Evaluate(mol.Energies, ints, mol.NOcc, p.I, p.J)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  C = %.12e\n", layout.PairKey(p.I, p.J), c)
	}

	if screenMatrix {
		m, err := coupling.Matrix(mol.Energies, ints, mol.NOcc)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%.8e\n", mat.Formatted(m, mat.Squeeze()))
	}

	if screenManifest != "" {
		t, err := cfg.Thresholds()
		if err != nil {
			return err
		}
		m := layout.NewManifest(energy.StagePairs, mol.ID, mol.Basis, t)
		path := filepath.Join(screenManifest, "manifest.yaml")
		if err := layout.WriteManifest(path, m); err != nil {
			return err
		}
		logger.Info().Str("run_key", m.RunKey).Str("path", path).Msg("run manifest written")
	}

	return nil
}
