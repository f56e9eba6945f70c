package main

import (
	"fmt"
	"time"
)

// login authenticates against the API and persists the session token for
// subsequent invocations.
func (cli *commandLine) login(email, pwd string) error {
	token, err := cli.usrSvc.Login(email, pwd)
	if err != nil {
		return err
	}
	cli.session.SetToken(token)
	if err := saveTokenFunc(token); err != nil {
		return err
	}
	if exp := cli.session.ExpiresAt(); !exp.IsZero() {
		fmt.Printf("logged in; session expires at %s\n", exp.Format(time.RFC3339))
	} else {
		fmt.Println("logged in")
	}
	return nil
}
