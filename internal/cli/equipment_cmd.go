package cli

import (
	"fmt"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/spf13/cobra"
)

func newEquipmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "Show or edit the week's equipment sheet",
	}
	cmd.AddCommand(newEquipmentShowCmd(app), newEquipmentEditCmd(app))
	return cmd
}

func newEquipmentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the equipment needed in the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Weeks.Open(cmd.Context())
			if err != nil {
				return err
			}
			printEquipment(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newEquipmentEditCmd(app *App) *cobra.Command {
	var (
		day    weekdayValue
		period int
		name   string
		qty    string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Override the equipment line of one lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !day.set {
				return fmt.Errorf("--day is required")
			}
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("qty") {
				return fmt.Errorf("nothing to change, pass --name or --qty")
			}
			view, err := app.Weeks.EditEquipment(cmd.Context(), service.EquipmentEdit{
				Day:      day.day,
				Period:   period,
				Name:     optionalString(flags, "name", name),
				Quantity: optionalString(flags, "qty", qty),
			})
			if err != nil {
				return err
			}
			printEquipment(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().Var(&day, "day", "Day of the lesson (Thứ 2 .. Thứ 7)")
	cmd.Flags().IntVar(&period, "period", 0, fmt.Sprintf("Period of the lesson (1-%d)", domain.MaxPeriod))
	cmd.Flags().StringVar(&name, "name", "", "Equipment name")
	cmd.Flags().StringVar(&qty, "qty", "", "Quantity")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}
