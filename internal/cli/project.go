package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/assistant"
	"github.com/Abhinav6284/Planora/internal/gateway"
	"github.com/Abhinav6284/Planora/internal/model"
)

func addProject(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectList(cmd, a)
	addProjectAdd(cmd, a)
	addProjectGenerate(cmd, a)
	addProjectRm(cmd, a)

	topLevel.AddCommand(cmd)
}

func addProjectList(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			renderProjects(a.store.Projects())
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addProjectAdd(parent *cobra.Command, a *app) {
	var desc string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			project, err := a.store.CreateProject(cmd.Context(), model.Project{
				Name:        strings.Join(args, " "),
				Description: desc,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %d: %s\n", project.ID, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "project description")

	parent.AddCommand(cmd)
}

func addProjectGenerate(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Have the assistant draft a project from a prompt",
		Args:  cobra.MinimumNArgs(1),
		Example: `
planora project generate a mobile app for tracking workouts
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			prompt := strings.Join(args, " ")

			var gen gateway.GeneratedProject
			if a.local {
				p := assistant.New(time.Now().UnixNano()).GenerateProject(prompt)
				gen = gateway.GeneratedProject{Name: p.Name, Description: p.Description}
			} else {
				var err error
				gen, err = a.client.GenerateProject(cmd.Context(), prompt)
				if err != nil {
					return err
				}
			}
			project, err := a.store.CreateProject(cmd.Context(), model.Project{
				Name:        gen.Name,
				Description: gen.Description,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %d: %s\n", project.ID, project.Name)
			fmt.Fprintln(cmd.OutOrStdout(), project.Description)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addProjectRm(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			if err := a.store.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %d\n", id)
			return nil
		},
	}
	parent.AddCommand(cmd)
}
