package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/qj0r9j0vc2/slack-unsend/internal/app"
	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/entity"
	slackUseCase "github.com/qj0r9j0vc2/slack-unsend/internal/usecase/slack"
)

const defaultConfigPath = "config/config.yaml"

var errInvalidLink = errors.New(slackUseCase.ReplyInvalidLink)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "slack-unsend",
		Short: "Slash command webhook that deletes a Slack message by its link",
		Long: `slack-unsend serves a Slack slash command. Paste a message link after the
command and the bot deletes that message with chat.delete, then answers
with an ephemeral reply only the caller can see.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", envOr("CONFIG_PATH", defaultConfigPath),
		"path to the YAML config file (env CONFIG_PATH)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the slash command webhook server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	})
	rootCmd.AddCommand(newParseLinkCmd())

	return rootCmd
}

func newParseLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-link <link>",
		Short: "Print the channel and timestamp a message link points to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := entity.ParseMessageLink(args[0])
			if !ok {
				return errInvalidLink
			}
			fmt.Fprintf(cmd.OutOrStdout(), "channel: %s\nts: %s\n", ref.ChannelID, ref.Timestamp)
			return nil
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	application, err := app.New(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := application.Start(ctx)
	if err := application.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
