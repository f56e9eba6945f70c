package main

import (
	"fmt"
	"time"

	"github.com/shulehub/shule/core/school"
	"github.com/shulehub/shule/core/subscription"
)

func (cli *commandLine) setSchoolActive(id string, active bool) error {
	var sch school.School
	var err error
	if active {
		sch, err = cli.schSvc.Activate(id)
	} else {
		sch, err = cli.schSvc.Deactivate(id)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s) active=%t\n", sch.Name, sch.ID, sch.IsActive)
	return nil
}

func (cli *commandLine) listSchools() error {
	schools, count, err := cli.schSvc.List(school.QueryFilter{})
	if err != nil {
		return err
	}
	now := time.Now()
	fmt.Printf("%d school(s)\n", count)
	for _, sch := range schools {
		subStatus := "-"
		if sch.Subscription != nil {
			subStatus = subscription.StatusAt(*sch.Subscription, now)
		}
		fmt.Printf("%s  %-40s  %-25s  active=%-5t  subscription=%s\n",
			sch.ID, sch.Name, sch.Subdomain, sch.IsActive, subStatus)
	}
	return nil
}
