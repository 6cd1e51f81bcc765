package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// modelInfo describes one generator model for listings and the picker.
type modelInfo struct {
	Name        string
	Description string
	Hint        string
}

// models lists the available generator models in display order.
var models = []modelInfo{
	{
		Name:        pipeline.ModelRandom,
		Description: "Erdős–Rényi style growth with a target mean degree",
		Hint:        "graphgen generate -m random -n 500 --avg-degree 6",
	},
	{
		Name:        pipeline.ModelFull,
		Description: "Complete graph, every node connected to every other",
		Hint:        "graphgen generate -m full -n 20",
	},
	{
		Name:        pipeline.ModelGrid,
		Description: "Square grid grown ring by ring, with pinned coordinates",
		Hint:        "graphgen generate -m grid -n 10 -f png",
	},
}

// modelsCommand creates the models command for listing generator models.
func (c *CLI) modelsCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the available generator models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				return runModelPicker()
			}
			for _, m := range models {
				printKeyValue(m.Name, m.Description)
				printDetail("%s", m.Hint)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose a model interactively")

	return cmd
}

// runModelPicker runs the interactive model selector and prints a suggested
// command for the chosen model.
func runModelPicker() error {
	final, err := tea.NewProgram(newModelListModel(models)).Run()
	if err != nil {
		return fmt.Errorf("model picker: %w", err)
	}

	m, ok := final.(modelListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	printSuccess("Selected %s", m.Selected.Name)
	printNewline()
	printNextStep("Generate", m.Selected.Hint)
	return nil
}
