package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listsMembers bool

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show discovered star lists",
	Long: `Scrapes your stars page and prints the star lists (categories)
in discovery order. With --members, each list's member repositories are
enumerated and counted as well.`,
	RunE: runLists,
}

func init() {
	listsCmd.Flags().BoolVar(&listsMembers, "members", false, "enumerate list members")
	rootCmd.AddCommand(listsCmd)
}

func runLists(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	inspector := listInspector
	if inspector == nil {
		gen, err := buildGenerator()
		if err != nil {
			return err
		}
		inspector = gen
	}

	lists, members, err := inspector.Lists(ctx, listsMembers)
	if err != nil {
		return fmt.Errorf("discover lists: %w", err)
	}

	if len(lists) == 0 {
		cmd.Println("No star lists found.")
		return nil
	}

	for _, list := range lists {
		if listsMembers {
			cmd.Printf("%s\t%s\t%d repos\n", list.Slug, list.Name, len(members[list.Slug]))
		} else {
			cmd.Printf("%s\t%s\n", list.Slug, list.Name)
		}
	}
	return nil
}
