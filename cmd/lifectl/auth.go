package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/lifedash/internal/apiclient"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newLoginCmd(flags *rootFlags) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			if username == "" {
				return errors.New("--username is required")
			}
			if password == "" {
				// read from stdin, e.g. piped from a password manager
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			token, err := a.api.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			a.cfg.Token = token
			if err := a.cfg.save(a.cfgPath); err != nil {
				return err
			}
			a.printf("%s\n", okStyle.Render("logged in as "+username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password, read from stdin when empty")
	return cmd
}

func newLogoutCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			if a.cfg.Token == "" {
				a.printf("not logged in\n")
				return nil
			}
			// the token is dropped locally even when the server already forgot it
			if err := a.api.Logout(cmd.Context()); err != nil && !errors.Is(err, apiclient.ErrUnauthorized) {
				log.Warnf("logout: %s", err)
			}
			a.cfg.Token = ""
			if err := a.cfg.save(a.cfgPath); err != nil {
				return err
			}
			a.printf("%s\n", okStyle.Render("logged out"))
			return nil
		},
	}
}
