package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shandysiswandi/sentinel/internal/app"
)

const usage = `usage:
  sentinel                                 run the service
  sentinel verify-mail                     check the SMTP transport, exit 0 when usable
  sentinel issue-token <subject> [scope..] print a service token
`

func main() {
	if len(os.Args) > 1 {
		os.Exit(runCommand(os.Args[1], os.Args[2:]))
	}

	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}

func runCommand(name string, args []string) int {
	switch name {
	case "verify-mail":
		application := app.NewCommand()
		defer application.Stop(context.Background())

		if !application.VerifyMail(context.Background()) {
			return 1
		}
		return 0

	case "issue-token":
		if len(args) == 0 {
			fmt.Fprint(os.Stderr, usage)
			return 2
		}

		application := app.NewCommand()
		defer application.Stop(context.Background())

		token, err := application.IssueToken(args[0], args[1:]...)
		if err != nil {
			slog.Error("failed to issue token", "error", err)
			return 1
		}
		fmt.Println(token)
		return 0

	default:
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
}
