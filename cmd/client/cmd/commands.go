package cmd

import (
	"murojaat/cmd/client/cmd/auth"
	"murojaat/cmd/client/cmd/employee"
	"murojaat/cmd/client/cmd/image"
	"murojaat/cmd/client/cmd/record"
	"murojaat/cmd/client/cmd/sync"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.CreateCmd)
	record.RecordCmd.AddCommand(record.UpdateCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)
	record.RecordCmd.AddCommand(record.StatsCmd)
	record.RecordCmd.AddCommand(record.ExportCmd)

	rootCmd.AddCommand(image.ImageCmd)
	image.ImageCmd.AddCommand(image.ListCmd)
	image.ImageCmd.AddCommand(image.ShowCmd)
	image.ImageCmd.AddCommand(image.UploadCmd)
	image.ImageCmd.AddCommand(image.DeleteCmd)

	rootCmd.AddCommand(employee.EmployeeCmd)
	employee.EmployeeCmd.AddCommand(employee.ListCmd)
	employee.EmployeeCmd.AddCommand(employee.CreateCmd)
	employee.EmployeeCmd.AddCommand(employee.UpdateCmd)
	employee.EmployeeCmd.AddCommand(employee.DeleteCmd)

	rootCmd.AddCommand(sync.SyncCmd)
}
