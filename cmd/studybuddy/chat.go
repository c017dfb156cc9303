package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"study-buddy/backend/internal/client"
	"study-buddy/backend/internal/model"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with the AI tutor",
	Long: `Chat with the AI tutor. The reply is printed as it streams in.

With a message argument a single turn is sent. Without one, every line read
from stdin is sent as a new turn until EOF. Ctrl-C stops the current reply.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		printer := &streamPrinter{out: cmd.OutOrStdout()}
		conv := newClient().NewConversation(printer.update)

		if len(args) > 0 {
			return runTurn(ctx, conv, printer, strings.Join(args, " "))
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := runTurn(ctx, conv, printer, line); err != nil {
				return err
			}
			if ctx.Err() != nil {
				return nil
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// runTurn sends text and blocks until the reply is complete. Stream failures
// are already shown as the fallback reply, so only cancellation is quiet and
// other errors are reported on stderr.
func runTurn(ctx context.Context, conv *client.Conversation, printer *streamPrinter, text string) error {
	turn, err := conv.Send(ctx, text)
	if err != nil {
		return err
	}
	err = turn.Wait()
	printer.endTurn()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return nil
}

// streamPrinter writes the newly arrived part of the assistant reply.
type streamPrinter struct {
	out io.Writer

	mu      sync.Mutex
	count   int
	printed int
}

func (p *streamPrinter) update(messages []model.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(messages) == 0 {
		return
	}
	last := messages[len(messages)-1]
	if last.Role != model.RoleAssistant {
		p.count = len(messages)
		p.printed = 0
		return
	}
	if len(messages) != p.count {
		if p.printed > 0 {
			fmt.Fprintln(p.out)
		}
		p.count = len(messages)
		p.printed = 0
	}
	if len(last.Content) > p.printed {
		fmt.Fprint(p.out, last.Content[p.printed:])
		p.printed = len(last.Content)
	}
}

func (p *streamPrinter) endTurn() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.printed > 0 {
		fmt.Fprintln(p.out)
	}
	p.printed = 0
}
