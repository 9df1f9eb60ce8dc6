package main

import (
	"fmt"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

func runDepartment(cc *commandContext, _ []string) error {
	dep, err := cc.Depts.Mine(cc.Ctx)
	if err != nil {
		return err
	}
	if dep == nil {
		_, err := fmt.Fprintln(cc.Out, "No department yet. Create one with: jobboard department-save -name ...")
		return err
	}
	return printDepartment(cc.Out, dep)
}

func runDepartmentSave(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "department-save")
	var in domain.DepartmentInput
	fs.StringVar(&in.Name, "name", "", "Department name (required)")
	fs.StringVar(&in.Office, "office", "", "Office or room")
	fs.StringVar(&in.Phone, "phone", "", "Mobile phone, e.g. +7 912 345 67 89")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dep, err := cc.Depts.Save(cc.Ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, "Department saved")
	return printDepartment(cc.Out, dep)
}

func runDepartmentDelete(cc *commandContext, _ []string) error {
	deleted, err := cc.Depts.Delete(cc.Ctx)
	if err != nil {
		return err
	}
	msg := "No department to delete"
	if deleted {
		msg = "Department deleted"
	}
	_, err = fmt.Fprintln(cc.Out, msg)
	return err
}
