package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/infra/auth"
	"loyalty/internal/infra/persistence/postgres"
	"loyalty/internal/usecase"
	"loyalty/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "loyaltyctl",
		Short:         "Operator tooling for the loyalty platform",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(createStaffCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB

			return withApp(cmd.Context(), func(ctx context.Context) error {
				started := time.Now()
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", util.FormatDuration(time.Since(started)))

				return nil
			}, &db)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert reference products, dealers, staff and sample barcodes",
		Long: `Insert reference data. Rows that already exist are left untouched,
so the command can be run repeatedly.

Staff logins created: admin / admin123 and staff01 / staff123.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var deps seedDeps

			return withApp(cmd.Context(), func(ctx context.Context) error {
				started := time.Now()
				report, err := newSeeder(deps, cmd.OutOrStdout()).Run(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s in %s\n", report, util.FormatDuration(time.Since(started)))

				return nil
			}, &deps)
		},
	}
}

func createStaffCmd() *cobra.Command {
	var (
		username string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:     "create-staff",
		Short:   "Create an ADMIN or STAFF operator account",
		Example: `  loyaltyctl create-staff --username cashier02 --password s3cret99 --role STAFF`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed := entity.Role(strings.ToUpper(role))
			if !parsed.IsStaffSide() {
				return errors.Errorf("role must be ADMIN or STAFF, got %q", role)
			}

			var authUC usecase.AuthUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				staff, err := authUC.CreateStaffUser(ctx, &usecase.CreateStaffInput{
					Username: username,
					Password: password,
					Role:     parsed,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", staff.Role, staff.Username, staff.ID)

				return nil
			}, &authUC)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "login name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "initial password")
	cmd.Flags().StringVarP(&role, "role", "r", entity.RoleStaff.String(), "ADMIN or STAFF")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password, read from stdin when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}

			hash, err := auth.NewBcryptHasher(cfg).Hash(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)

			return nil
		},
	}
}

func passwordArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "failed to read password from stdin")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is empty")
	}

	return password, nil
}
