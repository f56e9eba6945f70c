package main

import (
	"fmt"
)

// exportGrades downloads a section's grade export and saves it to disk.
func (cli *commandLine) exportGrades(sectionID, format, dest string) error {
	f, err := cli.gradSvc.Export(sectionID, format)
	if err != nil {
		return err
	}
	if dest == "" {
		dest = f.Name
	}
	if err := writeFileFunc(dest, f.Data, 0644); err != nil {
		return err
	}
	fmt.Printf("saved %s (%d bytes)\n", dest, len(f.Data))
	return nil
}
