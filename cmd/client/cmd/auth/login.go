package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"murojaat/cmd/client/cmd/output"
	"murojaat/cmd/client/cmd/types"
	"murojaat/internal/app/client"
	"murojaat/internal/domain/session"
)

var (
	loginName     string
	passwordStdin bool
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти под активной ролью",
	Long: `Аутентификация на сервере под ролью из --role или конфигурации.

Токен и профиль сохраняются под ключами этой роли, сессии других ролей не трогаются.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		fmt.Fprintf(out, "=== Вход (%s) ===\n", app.Role().Name)

		login := loginName
		if login == "" {
			fmt.Fprint(out, "Login: ")
			line, err := in.ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("ошибка чтения логина: %w", err)
			}
			login = strings.TrimSpace(line)
		}

		password, err := readPassword(cmd, in)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		sess, err := app.Login(ctx, session.Credentials{Login: login, Password: password})
		if err != nil {
			return output.Failure(cmd.ErrOrStderr(), err)
		}

		output.Success(out, client.OpLogin)
		if sess.Identity != nil {
			fmt.Fprintf(out, "Пользователь: %s\n", sess.Identity.DisplayName())
		}
		return nil
	},
}

// readPassword читает пароль без эха с терминала или строкой из stdin
func readPassword(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	if !passwordStdin && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Parol: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		return string(password), nil
	}

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	LoginCmd.Flags().StringVarP(&loginName, "login", "l", "", "логин (username для admin)")
	LoginCmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "читать пароль из stdin")
}
