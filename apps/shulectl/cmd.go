package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/grading"
	"github.com/shulehub/shule/core/school"
	"github.com/shulehub/shule/core/subscription"
	"github.com/shulehub/shule/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	saveTokenFunc    = saveToken         // mockable
	writeFileFunc    = os.WriteFile      // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	session *core.Session
	usrSvc  *user.Service
	schSvc  *school.Service
	subsSvc *subscription.Service
	gradSvc *grading.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL - authenticate and store the session token")
	fmt.Println("  schools [-activate ID | -deactivate ID] - list schools, or toggle one")
	fmt.Println("  renewsubs -months N - renew all expired subscriptions")
	fmt.Println("  exportgrades -section ID [-format FORMAT] [-out PATH] - export a section's grades")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The account's email. The password will be prompted next.")

	schoolsCmd := flag.NewFlagSet("schools", flag.ExitOnError)
	schoolsActivate := schoolsCmd.String("activate", "", "Activate the school with this ID.")
	schoolsDeactivate := schoolsCmd.String("deactivate", "", "Deactivate the school with this ID.")

	renewSubsCmd := flag.NewFlagSet("renewsubs", flag.ExitOnError)
	renewSubsMonths := renewSubsCmd.Int("months", 12, "The number of months to extend each subscription by.")

	exportGradesCmd := flag.NewFlagSet("exportgrades", flag.ExitOnError)
	exportGradesSection := exportGradesCmd.String("section", "", "The section ID to export grades for.")
	exportGradesFormat := exportGradesCmd.String("format", "csv", "The export format (csv or xlsx).")
	exportGradesOut := exportGradesCmd.String("out", "", "The destination file. Defaults to the server-provided name.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	case "schools":
		if err := schoolsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *schoolsActivate != "" && *schoolsDeactivate != "" {
			schoolsCmd.Usage()
			return errHelp
		}
		if *schoolsActivate != "" {
			return cli.setSchoolActive(*schoolsActivate, true)
		}
		if *schoolsDeactivate != "" {
			return cli.setSchoolActive(*schoolsDeactivate, false)
		}
		return cli.listSchools()
	case "renewsubs":
		if err := renewSubsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.renewExpired(*renewSubsMonths)
	case "exportgrades":
		if err := exportGradesCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportGradesSection == "" {
			exportGradesCmd.Usage()
			return errHelp
		}
		return cli.exportGrades(*exportGradesSection, *exportGradesFormat, *exportGradesOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
