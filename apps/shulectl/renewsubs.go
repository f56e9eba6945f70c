package main

import (
	"fmt"

	"github.com/shulehub/shule/core/subscription"
)

// renewExpired renews every expired subscription by the given number of
// months. Failed renewals are reported and skipped, never retried.
func (cli *commandLine) renewExpired(months int) error {
	subs, count, err := cli.subsSvc.ListExpired(subscription.QueryFilter{})
	if err != nil {
		return err
	}
	fmt.Printf("%d expired subscription(s)\n", count)

	var failed int
	for _, sub := range subs {
		if _, err := cli.subsSvc.Renew(sub.ID, subscription.Renew{Months: months}); err != nil {
			fmt.Printf("failed to renew %s (school %s): %s\n", sub.ID, sub.SchoolID, err)
			failed++
			continue
		}
		fmt.Printf("renewed %s (school %s) by %d month(s)\n", sub.ID, sub.SchoolID, months)
	}
	if failed > 0 {
		return fmt.Errorf("%d renewal(s) failed", failed)
	}
	return nil
}
