package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/bornholm/cocomo/internal/cocomo"
	"github.com/bornholm/cocomo/internal/format"
	"github.com/bornholm/cocomo/internal/store"
	"github.com/spf13/cobra"
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project file management commands",
	Long:  `Manage project files holding the size, class and attribute ratings of an estimate.`,
}

// projectNewCmd represents the project new command
var projectNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new project",
	Long:  `Create a new project file with the given name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		output, _ := cmd.Flags().GetString("output")
		description, _ := cmd.Flags().GetString("description")
		sloc, _ := cmd.Flags().GetInt("sloc")
		classFlag, _ := cmd.Flags().GetString("class")

		if sloc < 0 {
			return fmt.Errorf("%w: SLOC must not be negative", cocomo.ErrInvalidArgument)
		}

		if output == "" {
			safeName := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
			output = safeName + store.ProjectFileSuffix
		}

		if _, err := os.Stat(output); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("file '%s' already exists, use --force to overwrite", output)
			}
		}

		s := getStore()

		config, err := s.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		class := config.GetDefaultClass()
		if classFlag != "" {
			class, err = cocomo.ParseClass(classFlag)
			if err != nil {
				return err
			}
		}

		project, err := s.CreateProject(output, name)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		project.Description = description
		project.SetSLOC(sloc)
		project.SetClass(class)

		if err := s.SaveProject(output, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created project '%s' at %s\n", name, output)
		return nil
	},
}

// projectUpdateCmd represents the project update command
var projectUpdateCmd = &cobra.Command{
	Use:   "update <file>",
	Short: "Update a project",
	Long:  `Update the label, size or class of a project.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		s := getStore()

		project, err := s.LoadProject(file)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}

		if cmd.Flags().Changed("label") {
			project.Label, _ = cmd.Flags().GetString("label")
		}
		if cmd.Flags().Changed("description") {
			project.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("sloc") {
			sloc, _ := cmd.Flags().GetInt("sloc")
			if sloc < 0 {
				return fmt.Errorf("%w: SLOC must not be negative", cocomo.ErrInvalidArgument)
			}
			project.SetSLOC(sloc)
		}
		if cmd.Flags().Changed("class") {
			classFlag, _ := cmd.Flags().GetString("class")
			class, err := cocomo.ParseClass(classFlag)
			if err != nil {
				return err
			}
			project.SetClass(class)
		}

		if err := s.SaveProject(file, project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Project %s updated\n", project.ID)
		return nil
	},
}

// projectSetCmd represents the project set command
var projectSetCmd = &cobra.Command{
	Use:   "set <file> <attribute> <rating>",
	Short: "Rate an attribute",
	Long:  `Set the rating of one of the 15 attributes (VL, L, N, H, VH, XH or very-low ... extra-high).`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, attr, rating := args[0], args[1], args[2]
		s := getStore()

		project, err := s.LoadProject(file)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}

		if err := project.SetRating(attr, rating); err != nil {
			return err
		}

		if err := s.SaveProject(file, project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Attribute %s set to %s\n", attr, project.Ratings[attr])
		return nil
	},
}

// projectUnsetCmd represents the project unset command
var projectUnsetCmd = &cobra.Command{
	Use:   "unset <file> <attribute>",
	Short: "Reset an attribute to nominal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, attr := args[0], args[1]
		s := getStore()

		project, err := s.LoadProject(file)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}

		if _, ok := project.Ratings[attr]; !ok {
			return fmt.Errorf("attribute '%s' is not rated", attr)
		}
		project.ClearRating(attr)

		if err := s.SaveProject(file, project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Attribute %s reset to nominal\n", attr)
		return nil
	},
}

// projectViewCmd represents the project view command
var projectViewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Estimate a project",
	Long:  `Estimate a project and print it in various formats (text, markdown, json, yaml).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		s := getStore()

		project, err := s.LoadProject(file)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}

		config, err := s.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyPrecision(cmd, config)

		estimator, result, err := project.Estimate(config.EstimatorOptions()...)
		if err != nil {
			return fmt.Errorf("failed to estimate project '%s': %w", project.Label, err)
		}

		formatter, err := format.New(outputFormat(cmd, config), config)
		if err != nil {
			return err
		}

		out, err := formatter.Format(format.Report{
			Label:     project.Label,
			SLOC:      project.SLOC,
			Estimator: estimator,
			Result:    result,
		})
		if err != nil {
			return fmt.Errorf("failed to format estimate: %w", err)
		}

		return writeOutput(cmd, out)
	},
}

// projectListCmd represents the project list command
var projectListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List project files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		files, err := getStore().ListProjects(dir)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(files) == 0 {
			fmt.Fprintln(w, "No projects found.")
			return nil
		}

		for _, f := range files {
			fmt.Fprintln(w, f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectSetCmd)
	projectCmd.AddCommand(projectUnsetCmd)
	projectCmd.AddCommand(projectViewCmd)
	projectCmd.AddCommand(projectListCmd)

	// project new flags
	projectNewCmd.Flags().StringP("output", "o", "", "Output file path (default: <name>"+store.ProjectFileSuffix+")")
	projectNewCmd.Flags().StringP("description", "d", "", "Project description")
	projectNewCmd.Flags().Int("sloc", 0, "Source lines of code")
	projectNewCmd.Flags().String("class", "", "Project class: O, S, E or full name (default: from configuration)")
	projectNewCmd.Flags().BoolP("force", "f", false, "Force overwrite existing file")

	// project update flags
	projectUpdateCmd.Flags().StringP("label", "l", "", "New project label")
	projectUpdateCmd.Flags().StringP("description", "d", "", "New project description")
	projectUpdateCmd.Flags().Int("sloc", 0, "New source lines of code")
	projectUpdateCmd.Flags().String("class", "", "New project class")

	// project view flags
	projectViewCmd.Flags().StringP("format", "f", "text", "Output format (text, markdown, json, yaml)")
	projectViewCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	projectViewCmd.Flags().Int("precision", -1, "Decimals in output, -1 for full precision (default: from configuration)")
}
