package record

import (
	"github.com/spf13/cobra"
)

// RecordCmd - родительская команда для всех операций с обращениями
var RecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Управление обращениями",
	Long:  `Просмотр, фильтрация, создание, изменение, удаление и выгрузка обращений.`,
}
