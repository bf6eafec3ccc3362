package cmd

import (
	"fmt"

	"minired-cli/api"
	"minired-cli/auth"
	shared "minired-cli/shared"
	"minired-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Crear un nuevo post",
	Run:   newPost,
}

func newPost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	title, err := term.GetRequiredUserStringInput("Título:")
	if err != nil {
		term.OutputErrorAndExit("Error al leer el título: %v", err)
	}

	content, err := term.GetRequiredUserStringInput("Contenido:")
	if err != nil {
		term.OutputErrorAndExit("Error al leer el contenido: %v", err)
	}

	term.StartSpinner("")
	post, apiErr := api.Client.CreatePost(shared.CreatePostRequest{
		Title:   title,
		Content: content,
	})
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Msg != "" {
			term.OutputErrorAndExit("%s", apiErr.Msg)
		}
		term.OutputErrorAndExit("Error al crear post")
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Post publicado")
	fmt.Printf("minired show %d\n", post.ID)
}
