package cmd

import (
	"fmt"

	"akplayer/config"
	"akplayer/core"
	"akplayer/models"
	"akplayer/util"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	session := &models.Session{}

	command := &cobra.Command{
		Use:           "akplayer",
		Short:         "Recover the HLS playlists and keys of a secure player video",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := util.NewHTTPClient(config.Env.HTTPTimeout)
			masterFile, err := core.Run(cmd.Context(), client, config.Env, session)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), masterFile)
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVar(&session.Token, "token", "", "session authorization token")
	flags.Int64Var(&session.CourseID, "course", 0, "course id")
	flags.Int64Var(&session.VideoID, "video", 0, "video id")
	for _, name := range []string{"token", "course", "video"} {
		command.MarkFlagRequired(name)
	}
	return command
}
