package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alanpx/listsort/algorithm"
	"github.com/alanpx/listsort/config"
	"github.com/alanpx/listsort/gen"
)

type app struct {
	conf *config.Config
	gen  *gen.Generator
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{}
	v := config.New()
	var confPath string

	root := &cobra.Command{
		Use:          "listsort",
		Short:        "Sort and search singly linked lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(v, confPath)
			if err != nil {
				return err
			}
			if conf.Debug {
				algorithm.Debug = 1
			}
			g, err := gen.New(conf.Seed, conf.Min, conf.Max)
			if err != nil {
				return err
			}
			a.conf, a.gen = conf, g
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.StringVar(&confPath, "config", "", "config file (default ./listsort.yaml)")
	flags.Bool("debug", false, "log algorithm steps to stderr")
	flags.Uint64("seed", 0, "random seed, 0 for time based")
	v.BindPFlag("debug", flags.Lookup("debug"))
	v.BindPFlag("seed", flags.Lookup("seed"))

	root.AddCommand(a.sortCmd(), a.searchCmd(), a.analyzeCmd(), a.menuCmd())
	return root
}

func (a *app) sortCmd() *cobra.Command {
	var algo string
	var n int
	var show bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort n random values",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := algorithm.ParseSortAlgorithm(algo)
			if err != nil {
				return err
			}
			list, err := a.gen.List(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if show {
				fmt.Fprintln(out, list)
			}
			var elapsed time.Duration
			list, elapsed = timedSort(list, alg)
			if show {
				fmt.Fprintln(out, list)
			}
			fmt.Fprintf(out, "%s sort of %d values completed in %s ms\n", alg, n, millis(elapsed))
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "quick", "quick, merge or selection")
	cmd.Flags().IntVarP(&n, "count", "n", 20, "number of values")
	cmd.Flags().BoolVar(&show, "print", true, "print the list before and after")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var algo string
	var n int
	var target int64
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a sorted list of n random values",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := algorithm.ParseSearchAlgorithm(algo)
			if err != nil {
				return err
			}
			list, err := a.gen.List(n)
			if err != nil {
				return err
			}
			list = algorithm.Sort(list, algorithm.MergeSort)
			found, elapsed := timedSearch(list, target, alg)
			reportSearch(cmd.OutOrStdout(), alg, target, found, elapsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "binary", "binary or exponential")
	cmd.Flags().IntVarP(&n, "count", "n", 20, "number of values")
	cmd.Flags().Int64Var(&target, "target", 0, "value to look for")
	return cmd
}

func (a *app) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Time every algorithm over the configured sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := analyze(a.gen, a.conf.Sizes)
			if err != nil {
				return err
			}
			printAnalysis(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMenu(cmd.InOrStdin(), cmd.OutOrStdout(), a.gen, a.conf.Sizes)
			return m.run()
		},
	}
}

func reportSearch(w io.Writer, alg algorithm.SearchAlgorithm, target int64, found bool, elapsed time.Duration) {
	if found {
		fmt.Fprintf(w, "Value %d found.\n", target)
	} else {
		fmt.Fprintf(w, "Value %d not found.\n", target)
	}
	fmt.Fprintf(w, "%s search completed in %s ms\n", alg, millis(elapsed))
}
