package cmd

import (
	"fmt"
	"log"
	"os"

	"timesheet/config"
	"timesheet/database"
	"timesheet/export"
	"timesheet/models"

	"github.com/spf13/cobra"
)

var (
	exportEngineer string
	exportWeek     int
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one engineer's week as CSV without running the server",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportEngineer, "engineer", "", "Engineer username")
	exportCmd.Flags().IntVar(&exportWeek, "week", 0, "ISO week number (1-52)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
	exportCmd.MarkFlagRequired("engineer")
	exportCmd.MarkFlagRequired("week")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportWeek < 1 || exportWeek > 52 {
		return fmt.Errorf("week must be between 1 and 52, got %d", exportWeek)
	}

	cfg := config.Load()
	if err := database.Init(cfg.DatabaseURL); err != nil {
		return err
	}

	var engineer models.Engineer
	if err := database.GetDB().Where("username = ?", exportEngineer).First(&engineer).Error; err != nil {
		return fmt.Errorf("engineer %q not found: %w", exportEngineer, err)
	}

	var entries []models.TimesheetEntry
	if err := database.GetDB().
		Where("engineer_id = ? AND week = ?", engineer.ID, exportWeek).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return err
	}

	doc := export.CSV(entries, exportWeek)
	if exportOut == "" {
		fmt.Println(doc)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(doc), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", exportOut, err)
	}
	log.Printf("Wrote %d entries (%s) to %s", len(entries), export.Filename(engineer.DisplayName(), exportWeek), exportOut)
	return nil
}
