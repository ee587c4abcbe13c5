package employee

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"murojaat/internal/domain/employee"
)

// EmployeeCmd - справочник сотрудников
var EmployeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Справочник сотрудников",
	Long:  `Учётные записи сотрудников. Пароли скрыты, пока не передан --show-passwords.`,
}

var showPasswords bool

func printEmployees(tw *tabwriter.Writer, list []employee.Credential) {
	if len(list) == 0 {
		fmt.Fprintln(tw, "Xodimlar yo'q")
		return
	}
	fmt.Fprintln(tw, "ID\tIsm\tLogin\tParol")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Login, c.Password)
	}
}

// visible скрывает пароли, если не просили показать
func visible(list []employee.Credential) []employee.Credential {
	if showPasswords {
		return list
	}
	out := make([]employee.Credential, len(list))
	for i, c := range list {
		out[i] = c.Masked()
	}
	return out
}

func init() {
	EmployeeCmd.PersistentFlags().BoolVar(&showPasswords, "show-passwords", false, "показывать пароли сотрудников")
}
