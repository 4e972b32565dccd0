package commands

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/macropower/pcdgen/pkg/paths"
	"github.com/macropower/pcdgen/pkg/pcd"
	"github.com/macropower/pcdgen/pkg/pcdgen"
)

func addGenerateFlags(cmd *cobra.Command, args *GenerateArgs) {
	cmd.Flags().StringVarP(args.lang, "lang", "l", "",
		fmt.Sprintf("Language for which to generate %v", pcdgen.Languages()))
	must(cmd.MarkFlagRequired("lang"))
	must(cmd.RegisterFlagCompletionFunc("lang", completeLanguages))

	cmd.Flags().StringSliceVarP(args.groups, "groups", "g", nil,
		"Groups to include in the generated file, comma or space separated; if not provided, include all groups")
	must(cmd.RegisterFlagCompletionFunc("groups", completeGroups(args.database)))

	cmd.Flags().StringVarP(args.filename, "filename", "f", "", "Name of the generated output file")
	must(cmd.MarkFlagRequired("filename"))
	must(cmd.MarkFlagFilename("filename"))

	addDatabaseFlag(cmd, args.database)
}

func addDatabaseFlag(cmd *cobra.Command, database *string) {
	cmd.Flags().StringVarP(database, "database", "d", "",
		fmt.Sprintf("Path to the constants database (default: closest %s)", paths.DatabaseFile))
	must(cmd.MarkFlagFilename("database", "yaml", "yml"))
}

// runGenerate generates the constants file. Positional arguments are only
// accepted after --groups, as additional group names (`--groups a b`).
func runGenerate(cc *cobra.Command, args *GenerateArgs, pArgs []string) error {
	if len(pArgs) > 0 && !cc.Flags().Changed("groups") {
		return fmt.Errorf("%w: unexpected arguments %q", ErrInvalidArgument, pArgs)
	}

	groups := append(slices.Clone(args.GetGroups()), pArgs...)

	// Reject unknown languages before touching the database or the output.
	if _, err := pcdgen.LookupDialect(args.GetLang()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	db, err := loadDatabase(args.GetDatabase())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	err = pcdgen.GenerateFile(args.GetFilename(), db, args.GetLang(), groups)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	return nil
}

// loadDatabase loads the database at path, or the closest database to the
// working directory if path is empty.
func loadDatabase(path string) (*pcd.Database, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}

		path, err = paths.FindDatabase(wd)
		if err != nil {
			return nil, fmt.Errorf("find database: %w", err)
		}

		slog.Debug("using discovered database", slog.String("path", path))
	}

	db, err := pcd.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}

	return db, nil
}

func completeLanguages(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return pcdgen.Languages(), cobra.ShellCompDirectiveNoFileComp
}

func completeGroups(database *string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		db, err := loadDatabase(*database)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return db.GroupNames(), cobra.ShellCompDirectiveNoFileComp
	}
}

// GenerateArgs holds the arguments for generating a constants file.
type GenerateArgs struct {
	lang     *string
	groups   *[]string
	filename *string
	database *string
	*RootArgs
}

// NewGenerateArgs creates a new [GenerateArgs].
func NewGenerateArgs(args *RootArgs) *GenerateArgs {
	return &GenerateArgs{
		lang:     new(string),
		groups:   new([]string),
		filename: new(string),
		database: new(string),
		RootArgs: args,
	}
}

func (a *GenerateArgs) GetLang() string {
	return *a.lang
}

func (a *GenerateArgs) GetGroups() []string {
	return *a.groups
}

func (a *GenerateArgs) GetFilename() string {
	return *a.filename
}

func (a *GenerateArgs) GetDatabase() string {
	return *a.database
}
