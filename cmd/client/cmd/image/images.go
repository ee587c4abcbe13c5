package image

import (
	"github.com/spf13/cobra"
)

// ImageCmd - изображения, прикреплённые к обращению
var ImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Изображения обращений",
}
