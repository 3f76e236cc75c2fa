package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ipms/internal/client/table"
	"github.com/dmitrijs2005/ipms/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and stores the token pair on success.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.console())
	if err != nil {
		return err
	}

	password, err := getPassword(a.console())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	me, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "username", userName, "error", err)
		a.sayErr(err)
		return err
	}

	a.log.Info(ctx, "login successful", "username", userName)
	if me.Role != "" {
		a.sayOK("Logged in as " + me.Username + " (" + me.Role + ").")
	} else {
		a.sayOK("Logged in as " + me.Username + ".")
	}
	return nil
}

// Logout drops the stored tokens. Pages opened afterwards redirect to login.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.sayErr(err)
		return err
	}
	a.say("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	id, err := a.authService.WhoAmI(ctx)
	if errors.Is(err, common.ErrNoSession) {
		a.say("Not logged in.")
		return err
	}

	a.say("Username:   %s", id.Username)
	if id.Claims.UserID != "" {
		a.say("User ID:    %s", id.Claims.UserID)
	}
	if !id.Claims.ExpiresAt.IsZero() {
		a.say("Expires:    %s", table.FormatTime(id.Claims.ExpiresAt))
	}
	if err != nil {
		a.sayErr(err)
		return err
	}
	a.say("Email:      %s", id.Me.Email)
	a.say("Role:       %s", id.Me.Role)
	return nil
}
