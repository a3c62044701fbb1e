package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"doctor-directory/cmd/bootstrap"
	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "doctor-directory",
		Short: "Browse, filter and book doctors from the published directory",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the .env config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(searchCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the directory API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New(*configPath)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			// Run the application
			app.Run()
			return nil
		},
	}
}

type searchOptions struct {
	query       string
	search      string
	mode        string
	specialties []string
	sort        string
	suggest     bool
}

func searchCmd(configPath *string) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fetch the directory once and print the filtered doctors",
		Example: `  doctor-directory search --mode "Video Consult" --sort fees
  doctor-directory search --query "specialties=Dentist,Dermatologist&sort=experience"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(logrus.WarnLevel)

			state, err := opts.filterState()
			if err != nil {
				return err
			}

			catalog := bootstrap.NewCatalog(cfg, log)
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Source.Timeout)
			defer cancel()
			if err := catalog.Load(ctx); err != nil {
				return fmt.Errorf("failed to load doctor information: %w", err)
			}

			doctors := catalog.Snapshot().Doctors
			out := cmd.OutOrStdout()
			if opts.suggest {
				for _, name := range filter.NameSuggestions(doctors, state.SearchTerm) {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			return printDoctors(out, filter.FilterDoctors(doctors, state), state)
		},
	}

	cmd.Flags().StringVar(&opts.query, "query", "", "URL query string (search, mode, specialties, sort)")
	cmd.Flags().StringVar(&opts.search, "search", "", "case-insensitive name search")
	cmd.Flags().StringVar(&opts.mode, "mode", "", `consultation mode: "Video Consult" or "In Clinic"`)
	cmd.Flags().StringArrayVar(&opts.specialties, "specialty", nil, "specialty to include (repeatable)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort by fees or experience")
	cmd.Flags().BoolVar(&opts.suggest, "suggest", false, "print name suggestions for --search instead")

	return cmd
}

// filterState starts from --query and applies the individual flags on top
func (o *searchOptions) filterState() (entity.FilterState, error) {
	state, err := filter.ParseQuery(o.query)
	if err != nil {
		return state, err
	}

	actions := make([]filter.Action, 0, len(o.specialties)+3)
	if o.search != "" {
		actions = append(actions, filter.Action{Type: filter.ActionSetSearch, Value: o.search})
	}
	if o.mode != "" && entity.ConsultationMode(o.mode) != state.ConsultationMode {
		actions = append(actions, filter.Action{Type: filter.ActionToggleMode, Value: o.mode})
	}
	for _, s := range o.specialties {
		if !state.HasSpecialty(s) {
			actions = append(actions, filter.Action{Type: filter.ActionToggleSpecialty, Value: s})
		}
	}
	if o.sort != "" && entity.SortOption(o.sort) != state.SortBy {
		actions = append(actions, filter.Action{Type: filter.ActionToggleSort, Value: o.sort})
	}

	for _, action := range actions {
		if state, err = filter.Reduce(state, action); err != nil {
			return state, fmt.Errorf("%s %q: %w", action.Type, action.Value, err)
		}
	}
	return state, nil
}

func printDoctors(out io.Writer, doctors []entity.Doctor, state entity.FilterState) error {
	if len(doctors) == 0 {
		fmt.Fprintln(out, "No doctors match the selected filters. Reset them with --query \"\".")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIALITIES\tFEES\tEXPERIENCE\tMODES")
	for _, d := range doctors {
		var modes []string
		if d.VideoConsult {
			modes = append(modes, string(entity.ConsultationModeVideo))
		}
		if d.InClinic {
			modes = append(modes, string(entity.ConsultationModeClinic))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Name, strings.Join(d.SpecialtyNames(), ", "), d.Fees, d.Experience, strings.Join(modes, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d %s found", len(doctors), pluralize(len(doctors), "doctor", "doctors"))
	if q := filter.EncodeQuery(state); q != "" {
		fmt.Fprintf(out, " (?%s)", q)
	}
	fmt.Fprintln(out)
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
