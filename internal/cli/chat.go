package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/assistant"
	"github.com/Abhinav6284/Planora/internal/model"
)

func addChat(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the roadmap assistant",
		Long:  "With a message argument, sends it and prints the reply. Without one, starts an interactive session; end it with an empty line or EOF.",
		Example: `
planora chat how should I plan the next sprint?
planora chat
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}

			var local *assistant.Generator
			if a.local {
				local = assistant.New(time.Now().UnixNano())
			}

			send := func(msg string) error {
				a.store.AppendMessage(model.ChatMessage{Text: msg, Origin: model.OriginUser})
				var reply string
				if local != nil {
					reply = local.Reply(msg)
				} else {
					var err error
					reply, err = a.client.Chat(cmd.Context(), msg)
					if err != nil {
						return err
					}
				}
				a.store.AppendMessage(model.ChatMessage{Text: reply, Origin: model.OriginAssistant})
				fmt.Fprintf(color.Output, "%s %s\n", color.CyanString("assistant:"), reply)
				return nil
			}

			if len(args) > 0 {
				return send(strings.Join(args, " "))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(color.Output, color.GreenString("you: "))
				if !scanner.Scan() {
					fmt.Fprintln(cmd.OutOrStdout())
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					return nil
				}
				if err := send(line); err != nil {
					return err
				}
			}
		},
	}
	topLevel.AddCommand(cmd)
}
