package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

func runLogin(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "login")
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Password; read from stdin when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*email) == "" {
		return errors.New("-email is required")
	}
	if *password == "" {
		pw, err := readLine(cc, "Password: ")
		if err != nil {
			return err
		}
		*password = pw
	}

	res := cc.Session.Login(cc.Ctx, strings.TrimSpace(*email), *password)
	if !res.Success {
		return errors.New(res.Error)
	}
	return printWelcome(cc)
}

func runRegister(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "register")
	var reg domain.Registration
	var role string
	fs.StringVar(&reg.Name, "name", "", "Full name (required)")
	fs.StringVar(&reg.Email, "email", "", "Account email (required)")
	fs.StringVar(&reg.Password, "password", "", "Password, at least 6 characters (required)")
	fs.StringVar(&reg.ConfirmPassword, "confirm", "", "Password again; defaults to -password")
	fs.StringVar(&role, "role", string(domain.RoleStudent), "student, employer or admin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if reg.ConfirmPassword == "" {
		reg.ConfirmPassword = reg.Password
	}
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Role = domain.Role(role)

	if err := cc.Validate.Registration(reg); err != nil {
		return err
	}
	res := cc.Session.Register(cc.Ctx, reg)
	if !res.Success {
		return errors.New(res.Error)
	}
	return printWelcome(cc)
}

func runLogout(cc *commandContext, _ []string) error {
	cc.Session.Logout(cc.Ctx)
	_, err := fmt.Fprintln(cc.Out, "Logged out")
	return err
}

func runWhoami(cc *commandContext, _ []string) error {
	u := cc.Session.User()
	_, err := fmt.Fprintf(cc.Out, "%s <%s>\nrole: %s\nid: %d\n", u.DisplayName(), u.Email, u.Role, u.ID)
	return err
}

func printWelcome(cc *commandContext) error {
	u := cc.Session.User()
	_, err := fmt.Fprintf(cc.Out, "Logged in as %s (%s)\n", u.DisplayName(), u.Role)
	return err
}

func readLine(cc *commandContext, prompt string) (string, error) {
	fmt.Fprint(cc.Out, prompt)
	line, err := bufio.NewReader(cc.In).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
