package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/campushire/recruit-portal/internal/core/ports"
)

func runLogin(app *appContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, path, err := app.accounts.Login(app.ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
	fmt.Printf("dashboard: %s\n", path)
	return nil
}

func runRegister(app *appContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "STUDENT", "account role: STUDENT, COMPANY, or ADMIN")
	companyName := fs.String("company", "", "company name (COMPANY role, defaults to -name)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err := app.accounts.Register(app.ctx, ports.RegisterInput{
		Name:        *name,
		Email:       *email,
		Password:    *password,
		Role:        *role,
		CompanyName: *companyName,
	})
	if err != nil {
		return err
	}
	fmt.Println("account created; run `recruitctl login` to sign in")
	return nil
}

func runLogout(app *appContext, _ []string) error {
	app.session.Logout(app.ctx)
	fmt.Println("logged out")
	return nil
}

func runWhoami(app *appContext, _ []string) error {
	if app.session.Credential() == "" {
		fmt.Println("not logged in")
		return nil
	}

	identity, ok := app.session.Identity()
	if !ok {
		fmt.Println("credential present but identity unresolved")
		return nil
	}
	fmt.Printf("%s <%s>\nrole: %s\n", identity.Name, identity.Email, identity.Role)
	if info, ok := app.session.InspectToken(); ok && !info.ExpiresAt.IsZero() {
		fmt.Printf("token expires: %s\n", info.ExpiresAt.Format("2006-01-02 15:04 MST"))
	}
	return nil
}

func runProfile(app *appContext, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	currentPassword := fs.String("current-password", "", "current password (for password change)")
	newPassword := fs.String("new-password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app); err != nil {
		return err
	}

	user, err := app.accounts.UpdateProfile(app.ctx, ports.ProfileUpdateInput{
		Name:            *name,
		Email:           *email,
		CurrentPassword: *currentPassword,
		NewPassword:     *newPassword,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "profile updated: %s <%s>\n", user.Name, user.Email)
	return nil
}
