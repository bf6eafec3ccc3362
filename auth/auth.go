package auth

import (
	"fmt"

	shared "minired-cli/shared"
	"minired-cli/term"

	"github.com/fatih/color"
)

const (
	signInLabel   = "Iniciar Sesión"
	registerLabel = "Registrarse"
)

// MustResolveAuth makes sure there's a signed-in user before a mutating
// command runs, prompting for login or registration if needed. Sessions live
// only in memory, so one-shot commands go through this on every invocation.
func MustResolveAuth() {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	if Current != nil {
		return
	}

	if err := promptAuth(); err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}
}

func promptAuth() error {
	selected, err := term.SelectFromList("¿Ya tienes cuenta?", []string{signInLabel, registerLabel})
	if err != nil {
		return fmt.Errorf("error selecting auth mode: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Email:")
	if err != nil {
		return fmt.Errorf("error getting email: %v", err)
	}

	var username string
	if selected == registerLabel {
		username, err = term.GetRequiredUserStringInput("Username:")
		if err != nil {
			return fmt.Errorf("error getting username: %v", err)
		}
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error getting password: %v", err)
	}

	term.StartSpinner("")
	var user *shared.User
	var apiErr *shared.ApiError
	if selected == registerLabel {
		user, apiErr = Register(email, username, password)
	} else {
		user, apiErr = SignIn(email, password)
	}
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("%s", apiErr.Msg)
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Hola, @%s\n", user.Username)

	return nil
}
