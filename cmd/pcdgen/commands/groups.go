package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewGroupsCmd returns the groups command.
func NewGroupsCmd(arg *RootArgs) *cobra.Command {
	args := NewGroupsArgs(arg)

	cmd := &cobra.Command{
		Use:          "groups",
		Short:        "List the groups in the constants database",
		Long:         "List the groups in the constants database, in database order, with the number of constants in each.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, _ []string) error {
			db, err := loadDatabase(args.GetDatabase())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cc.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range db.Groups {
				fmt.Fprintf(tw, "%s\t%d\n", g.Name, len(g.Entries))
			}

			if err := tw.Flush(); err != nil {
				return fmt.Errorf("write groups: %w", err)
			}

			return nil
		},
	}

	addDatabaseFlag(cmd, args.database)

	return cmd
}

// GroupsArgs holds the arguments for the groups command.
type GroupsArgs struct {
	database *string
	*RootArgs
}

// NewGroupsArgs creates a new [GroupsArgs].
func NewGroupsArgs(args *RootArgs) *GroupsArgs {
	return &GroupsArgs{
		database: new(string),
		RootArgs: args,
	}
}

func (a *GroupsArgs) GetDatabase() string {
	return *a.database
}
