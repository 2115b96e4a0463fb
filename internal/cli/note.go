package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/filter"
	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

func addNote(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteList(cmd, a)
	addNoteAdd(cmd, a)
	addNoteEdit(cmd, a)
	addNoteRm(cmd, a)

	topLevel.AddCommand(cmd)
}

func addNoteList(parent *cobra.Command, a *app) {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			renderNotes(filter.Notes(a.store.Notes(), search))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match against title and content")

	parent.AddCommand(cmd)
}

func addNoteAdd(parent *cobra.Command, a *app) {
	var title string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a note",
		Args:  cobra.MinimumNArgs(1),
		Example: `
planora note add --title "Standup" blocked on the API review
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			note, err := a.store.CreateNote(cmd.Context(), model.Note{
				Title:   title,
				Content: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created note %d: %s\n", note.ID, note.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title (default: Untitled Note)")

	parent.AddCommand(cmd)
}

func addNoteEdit(parent *cobra.Command, a *app) {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a note's title or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch := store.NotePatch{}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") {
				patch.Content = &content
			}
			if patch.Title == nil && patch.Content == nil {
				return fmt.Errorf("nothing to change: pass --title or --content")
			}

			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			note, err := a.store.UpdateNote(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %d: %s\n", note.ID, note.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new content")

	parent.AddCommand(cmd)
}

func addNoteRm(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			if err := a.store.DeleteNote(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %d\n", id)
			return nil
		},
	}
	parent.AddCommand(cmd)
}
