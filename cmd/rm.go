package cmd

import (
	"fmt"
	"strconv"

	"minired-cli/api"
	"minired-cli/auth"
	"minired-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm [post-id]",
	Short: "Eliminar un post propio",
	Args:  cobra.ExactArgs(1),
	Run:   rm,
}

func rm(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("ID de post inválido: %s", args[0])
	}

	auth.MustResolveAuth()

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error al cargar el post: %v", apiErr.Msg)
	}

	if post == nil {
		fmt.Println("🤷‍♂️ Post no encontrado")
		return
	}

	confirmed, err := term.ConfirmYesNo("¿Estás seguro de eliminar este post?")
	if err != nil {
		term.OutputErrorAndExit("Error al confirmar: %v", err)
	}

	if !confirmed {
		return
	}

	term.StartSpinner("")
	apiErr = api.Client.DeletePost(postId)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Msg != "" {
			term.OutputErrorAndExit("%s", apiErr.Msg)
		}
		term.OutputErrorAndExit("Error al eliminar post")
	}

	color.New(color.Bold, term.ColorHiGreen).Println("🗑️  Post eliminado")
}
