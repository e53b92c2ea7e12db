package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/overseerhq/releasever/pkg/releasever"
)

var (
	flagSetDry  bool
	flagBumpDry bool
)

// buildOptions assembles library options from the persistent flags.
func buildOptions(dryRun bool) (releasever.Options, error) {
	opts := releasever.Options{
		Root:   flagRoot,
		DryRun: dryRun,
		Logger: logger,
	}
	if flagConfig != "" {
		targets, err := releasever.LoadTargets(flagConfig)
		if err != nil {
			return opts, err
		}
		opts.Targets = targets
	}
	return opts, nil
}

var nextCmd = &cobra.Command{
	Use:   "next <current> <major|minor|patch>",
	Short: "Print the next version for a bump kind",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		next, err := releasever.Next(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(next)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <version>",
	Short: "Write a version into every manifest target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(flagSetDry)
		if err != nil {
			return err
		}
		meta, err := releasever.Set(args[0], opts)
		if err != nil {
			return err
		}
		printFiles(meta, flagSetDry)
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the version declared by the primary manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(false)
		if err != nil {
			return err
		}
		current, err := releasever.Current(opts)
		if err != nil {
			return err
		}
		fmt.Println(current)
		return nil
	},
}

var bumpCmd = &cobra.Command{
	Use:   "bump <major|minor|patch>",
	Short: "Bump the current version and write it into every manifest target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(flagBumpDry)
		if err != nil {
			return err
		}
		meta, err := releasever.BumpCurrent(args[0], opts)
		if err != nil {
			return err
		}
		fmt.Printf("Old Version: %s\n", meta.OldVersion)
		fmt.Printf("New Version: %s\n", meta.NewVersion)
		printFiles(meta, flagBumpDry)
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&flagSetDry, "dry", false, "Verify every manifest without writing any of them")
	bumpCmd.Flags().BoolVar(&flagBumpDry, "dry", false, "Verify every manifest without writing any of them")
}

func printFiles(meta releasever.Meta, dryRun bool) {
	if len(meta.UpdatedFiles) == 0 {
		return
	}
	if dryRun {
		fmt.Println("Files that would be updated:")
	} else {
		fmt.Println("Files updated:")
	}
	for _, f := range meta.UpdatedFiles {
		fmt.Printf("  %s\n", f)
	}
}
