package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genieiq/cli/cmd"
	"github.com/genieiq/cli/constants"
	"github.com/genieiq/cli/controller"
	"github.com/genieiq/cli/entity"
)

var rootCmd = &cobra.Command{
	Use:           "genie",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "🧞 GenieIQ. Configure and deploy workspace apps.",
	Long:          "Interact with 🧞 GenieIQ workspace apps via CLI \n\n Configure database connections and redeploy apps. Docs: https://docs.genieiq.dev",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		err := fn(ctx, req)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		return nil
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the workspace",
		RunE:  contextualize(handler.Login, handler.Panic),
	}
	loginCmd.Flags().String("host", "", "Workspace URL")
	loginCmd.Flags().String("token", "", "API token")
	rootCmd.AddCommand(loginCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Logout of the workspace",
		RunE:  contextualize(handler.Logout, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged in user",
		RunE:  contextualize(handler.Whoami, handler.Panic),
	})

	configureCmd := &cobra.Command{
		Use:   "configure",
		Short: "Set the app's database connection and redeploy it",
		RunE:  contextualize(handler.Configure, handler.Panic),
	}
	configureCmd.Flags().String("app", "", "App name (defaults to the linked app)")
	configureCmd.Flags().String("db-host", "", "Lakebase host")
	configureCmd.Flags().String("db-port", controller.DefaultDatabasePort, "Lakebase port")
	configureCmd.Flags().String("db-name", "genieiq", "Lakebase database name")
	configureCmd.Flags().String("db-user", "", "Lakebase user")
	configureCmd.Flags().String("db-password", "", "Lakebase password (prompted when omitted)")
	configureCmd.Flags().String("env-file", "", "Read DB_* values from a dotenv file instead of flags")
	configureCmd.Flags().Bool("detach", false, "Don't wait for the deployment to finish")
	configureCmd.Flags().Duration("interval", controller.DefaultPollInterval, "Status poll interval")
	configureCmd.Flags().Int("max-attempts", 0, "Give up after this many status checks (0 = wait forever)")
	rootCmd.AddCommand(configureCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the app and its latest deployment",
		RunE:  contextualize(handler.Status, handler.Panic),
	}
	statusCmd.Flags().String("app", "", "App name (defaults to the linked app)")
	rootCmd.AddCommand(statusCmd)

	variablesCmd := &cobra.Command{
		Use:   "variables",
		Short: "Show the app's environment variables",
		RunE:  contextualize(handler.Variables, handler.Panic),
	}
	variablesCmd.Flags().String("app", "", "App name (defaults to the linked app)")
	rootCmd.AddCommand(variablesCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "link [app]",
		Short: "Link a workspace app to this directory",
		RunE:  contextualize(handler.Link, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "unlink",
		Short: "Unlink the app from this directory",
		RunE:  contextualize(handler.Unlink, handler.Panic),
	})

	openCmd := &cobra.Command{
		Use:   "open [shortcut]",
		Short: "Open the app (or a docs shortcut) in the browser",
		RunE:  contextualize(handler.Open, handler.Panic),
	}
	openCmd.Flags().String("app", "", "App name (defaults to the linked app)")
	rootCmd.AddCommand(openCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of the genie CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"genie --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		}
		os.Exit(1)
	}
}
