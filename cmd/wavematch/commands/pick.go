package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/treeindex"
)

// NewPickCommand builds the "pick" subcommand: an anchor-picker that
// fuzzy-matches a surname query down to a short list of candidate persons,
// for a human to read off the person id compare needs.
func NewPickCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "pick <tree.ged> <surname-query>",
		Short: "List candidate anchor persons by approximate surname match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			treeFile, query := args[0], args[1]

			tree, err := loadTree(treeFile)
			if err != nil {
				return fmt.Errorf("tree: %w", err)
			}

			surnames := tree.SearchByApproximateSurname(query, limit)
			if len(surnames) == 0 {
				fmt.Println("No matching surnames found.")
				return nil
			}

			for _, surname := range surnames {
				ids := tree.PersonsBySurnameBucket(surname)
				sort.Strings(ids)
				for _, id := range ids {
					printCandidate(tree, id)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of matching surname buckets to show")

	return cmd
}

func printCandidate(tree *treeindex.Tree, id string) {
	p, ok := tree.Persons[id]
	if !ok {
		return
	}
	name := fmt.Sprintf("%s %s", p.FirstName, p.LastName)
	birth := "unknown birth"
	if p.BirthDate != nil {
		birth = "b. " + p.BirthDate.String()
	}
	fmt.Printf("%-12s %-30s %s (%s)\n", id, name, birth, genderLabel(p.Gender))
}

func genderLabel(g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return "M"
	case domain.GenderFemale:
		return "F"
	default:
		return "U"
	}
}
